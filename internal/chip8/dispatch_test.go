package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// execOpcode writes the opcode at PC and executes it with a single tick.
func execOpcode(t *testing.T, m *Machine, op uint16) error {
	t.Helper()
	m.Memory[m.PC] = byte(op >> 8)
	m.Memory[m.PC+1] = byte(op)
	return m.Tick()
}

//nolint:funlen // test functions can be long
func TestInstructions(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		setup  func(m *Machine)
		check  func(t *testing.T, m *Machine)
	}{
		{
			name:   "CLS",
			opcode: 0x00E0,
			setup: func(m *Machine) {
				m.Display[0] = 1
				m.Display[DisplaySize-1] = 1
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, [DisplaySize]byte{}, m.Display)
				assert.True(t, m.Drawn())
			},
		},
		{
			name:   "RET",
			opcode: 0x00EE,
			setup: func(m *Machine) {
				m.Stack[0] = 0x345
				m.SP = 1
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x345), m.PC)
				assert.Equal(t, uint8(0), m.SP)
			},
		},
		{
			name:   "JP addr",
			opcode: 0x1ABC,
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0xABC), m.PC)
			},
		},
		{
			name:   "CALL addr",
			opcode: 0x2456,
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x456), m.PC)
				assert.Equal(t, uint8(1), m.SP)
				assert.Equal(t, uint16(0x202), m.Stack[0])
			},
		},
		{
			name:   "SE Vx, byte taken",
			opcode: 0x3342,
			setup:  func(m *Machine) { m.V[3] = 0x42 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x204), m.PC)
			},
		},
		{
			name:   "SE Vx, byte not taken",
			opcode: 0x3342,
			setup:  func(m *Machine) { m.V[3] = 0x41 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x202), m.PC)
			},
		},
		{
			name:   "SNE Vx, byte taken",
			opcode: 0x4342,
			setup:  func(m *Machine) { m.V[3] = 0x41 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x204), m.PC)
			},
		},
		{
			name:   "SNE Vx, byte not taken",
			opcode: 0x4342,
			setup:  func(m *Machine) { m.V[3] = 0x42 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x202), m.PC)
			},
		},
		{
			name:   "SE Vx, Vy taken",
			opcode: 0x5120,
			setup: func(m *Machine) {
				m.V[1] = 9
				m.V[2] = 9
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x204), m.PC)
			},
		},
		{
			name:   "SE Vx, Vy not taken",
			opcode: 0x5120,
			setup:  func(m *Machine) { m.V[1] = 9 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x202), m.PC)
			},
		},
		{
			name:   "LD Vx, byte",
			opcode: 0x6A7F,
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x7F), m.V[0xA])
			},
		},
		{
			name:   "ADD Vx, byte wraps without flag",
			opcode: 0x7510,
			setup:  func(m *Machine) { m.V[5] = 0xF8 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x08), m.V[5])
				assert.Equal(t, uint8(0), m.V[FlagRegister])
			},
		},
		{
			name:   "LD Vx, Vy",
			opcode: 0x8120,
			setup:  func(m *Machine) { m.V[2] = 0x33 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x33), m.V[1])
			},
		},
		{
			name:   "OR Vx, Vy",
			opcode: 0x8121,
			setup: func(m *Machine) {
				m.V[1] = 0xF0
				m.V[2] = 0x0C
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0xFC), m.V[1])
			},
		},
		{
			name:   "AND Vx, Vy",
			opcode: 0x8122,
			setup: func(m *Machine) {
				m.V[1] = 0xF0
				m.V[2] = 0x3C
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x30), m.V[1])
			},
		},
		{
			name:   "XOR Vx, Vy",
			opcode: 0x8123,
			setup: func(m *Machine) {
				m.V[1] = 0xF0
				m.V[2] = 0x3C
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0xCC), m.V[1])
			},
		},
		{
			name:   "ADD Vx, Vy with carry",
			opcode: 0x8124,
			setup: func(m *Machine) {
				m.V[1] = 0xFF
				m.V[2] = 0x02
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x01), m.V[1])
				assert.Equal(t, uint8(1), m.V[FlagRegister])
			},
		},
		{
			name:   "ADD Vx, Vy without carry",
			opcode: 0x8124,
			setup: func(m *Machine) {
				m.V[1] = 0xFD
				m.V[2] = 0x02
				m.V[FlagRegister] = 1
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0xFF), m.V[1])
				assert.Equal(t, uint8(0), m.V[FlagRegister])
			},
		},
		{
			name:   "SUB Vx, Vy without borrow",
			opcode: 0x8125,
			setup: func(m *Machine) {
				m.V[1] = 0x10
				m.V[2] = 0x01
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x0F), m.V[1])
				assert.Equal(t, uint8(1), m.V[FlagRegister])
			},
		},
		{
			name:   "SUB Vx, Vy equal values",
			opcode: 0x8125,
			setup: func(m *Machine) {
				m.V[1] = 0x10
				m.V[2] = 0x10
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0), m.V[1])
				assert.Equal(t, uint8(0), m.V[FlagRegister])
			},
		},
		{
			name:   "SUB Vx, Vy with borrow",
			opcode: 0x8125,
			setup: func(m *Machine) {
				m.V[1] = 0x01
				m.V[2] = 0x02
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0xFF), m.V[1])
				assert.Equal(t, uint8(0), m.V[FlagRegister])
			},
		},
		{
			name:   "SHR Vx ignores Vy",
			opcode: 0x8126,
			setup: func(m *Machine) {
				m.V[1] = 0x05
				m.V[2] = 0x80
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x02), m.V[1])
				assert.Equal(t, uint8(1), m.V[FlagRegister])
			},
		},
		{
			name:   "SUBN Vx, Vy",
			opcode: 0x8127,
			setup: func(m *Machine) {
				m.V[1] = 0x01
				m.V[2] = 0x10
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x0F), m.V[1])
				assert.Equal(t, uint8(1), m.V[FlagRegister])
			},
		},
		{
			name:   "SUBN Vx, Vy with borrow",
			opcode: 0x8127,
			setup: func(m *Machine) {
				m.V[1] = 0x10
				m.V[2] = 0x01
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0xF1), m.V[1])
				assert.Equal(t, uint8(0), m.V[FlagRegister])
			},
		},
		{
			name:   "SHL Vx",
			opcode: 0x812E,
			setup:  func(m *Machine) { m.V[1] = 0x81 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x02), m.V[1])
				assert.Equal(t, uint8(1), m.V[FlagRegister])
			},
		},
		{
			name:   "flag wins over result in VF",
			opcode: 0x8F14,
			setup: func(m *Machine) {
				m.V[FlagRegister] = 0x80
				m.V[1] = 0x10
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0), m.V[FlagRegister])
			},
		},
		{
			name:   "SNE Vx, Vy taken",
			opcode: 0x9120,
			setup:  func(m *Machine) { m.V[1] = 1 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x204), m.PC)
			},
		},
		{
			name:   "SNE Vx, Vy not taken",
			opcode: 0x9120,
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x202), m.PC)
			},
		},
		{
			name:   "LD I, addr",
			opcode: 0xA123,
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x123), m.I)
			},
		},
		{
			name:   "JP V0, addr",
			opcode: 0xB300,
			setup:  func(m *Machine) { m.V[0] = 0x22 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x322), m.PC)
			},
		},
		{
			name:   "RND Vx, byte",
			opcode: 0xC40F,
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x0F), m.V[4])
			},
		},
		{
			name:   "SKP Vx pressed",
			opcode: 0xE29E,
			setup: func(m *Machine) {
				m.V[2] = 0xB
				m.Keys[0xB] = true
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x204), m.PC)
			},
		},
		{
			name:   "SKP Vx released",
			opcode: 0xE29E,
			setup:  func(m *Machine) { m.V[2] = 0xB },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x202), m.PC)
			},
		},
		{
			name:   "SKNP Vx released",
			opcode: 0xE2A1,
			setup:  func(m *Machine) { m.V[2] = 0xB },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x204), m.PC)
			},
		},
		{
			name:   "SKNP Vx with key index past keypad",
			opcode: 0xE2A1,
			setup:  func(m *Machine) { m.V[2] = 0x1B },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x204), m.PC)
			},
		},
		{
			name:   "LD Vx, DT",
			opcode: 0xF307,
			setup:  func(m *Machine) { m.DT = 0x20 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x20), m.V[3])
				assert.Equal(t, uint8(0x1F), m.DT)
			},
		},
		{
			name:   "LD Vx, K",
			opcode: 0xF50A,
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, RunState{Mode: AwaitingKey, Register: 5}, m.RunState())
			},
		},
		{
			name:   "LD DT, Vx",
			opcode: 0xF315,
			setup:  func(m *Machine) { m.V[3] = 0x30 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x2F), m.DT)
			},
		},
		{
			name:   "LD ST, Vx",
			opcode: 0xF318,
			setup:  func(m *Machine) { m.V[3] = 0x30 },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint8(0x2F), m.ST)
			},
		},
		{
			name:   "ADD I, Vx without clamp",
			opcode: 0xF31E,
			setup: func(m *Machine) {
				m.I = 0xFFE
				m.V[3] = 0x05
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(0x1003), m.I)
				assert.Equal(t, uint8(0), m.V[FlagRegister])
			},
		},
		{
			name:   "LD F, Vx",
			opcode: 0xF329,
			setup:  func(m *Machine) { m.V[3] = 0xA },
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, uint16(50), m.I)
				assert.Equal(t, DefaultFont[50], m.Memory[m.I])
			},
		},
		{
			name:   "LD B, Vx",
			opcode: 0xF333,
			setup: func(m *Machine) {
				m.V[3] = 254
				m.I = 0x300
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, byte(2), m.Memory[0x300])
				assert.Equal(t, byte(5), m.Memory[0x301])
				assert.Equal(t, byte(4), m.Memory[0x302])
				assert.Equal(t, uint16(0x300), m.I)
			},
		},
		{
			name:   "LD [I], Vx",
			opcode: 0xF255,
			setup: func(m *Machine) {
				m.V[0], m.V[1], m.V[2], m.V[3] = 1, 2, 3, 4
				m.I = 0x400
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, [4]byte{1, 2, 3, 0}, [4]byte(m.Memory[0x400:0x404]))
				assert.Equal(t, uint16(0x400), m.I)
			},
		},
		{
			name:   "LD Vx, [I]",
			opcode: 0xF265,
			setup: func(m *Machine) {
				copy(m.Memory[0x400:], []byte{7, 8, 9, 10})
				m.I = 0x400
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, [4]uint8{7, 8, 9, 0}, [4]uint8(m.V[:4]))
				assert.Equal(t, uint16(0x400), m.I)
			},
		},
		{
			name:   "LD [I], Vx up to last address",
			opcode: 0xF155,
			setup: func(m *Machine) {
				m.V[0], m.V[1] = 0xAA, 0xBB
				m.I = MemorySize - 2
			},
			check: func(t *testing.T, m *Machine) {
				assert.Equal(t, byte(0xAA), m.Memory[MemorySize-2])
				assert.Equal(t, byte(0xBB), m.Memory[MemorySize-1])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			assert.NoError(t, execOpcode(t, m, tt.opcode))
			tt.check(t, m)
		})
	}
}

func TestInstructionErrors(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		setup  func(m *Machine)
		err    error
	}{
		{"SYS addr", 0x0123, nil, ErrUnknownOpcode},
		{"zero opcode", 0x0000, nil, ErrUnknownOpcode},
		{"5xy1", 0x5121, nil, ErrUnknownOpcode},
		{"8xy8", 0x8128, nil, ErrUnknownOpcode},
		{"9xyF", 0x912F, nil, ErrUnknownOpcode},
		{"Ex00", 0xE100, nil, ErrUnknownOpcode},
		{"FxFF", 0xF1FF, nil, ErrUnknownOpcode},
		{"RET with empty stack", 0x00EE, nil, ErrStackUnderflow},
		{"CALL with full stack", 0x2300, func(m *Machine) { m.SP = StackSize }, ErrStackOverflow},
		{"DRW past memory end", 0xD125, func(m *Machine) { m.I = MemorySize - 4 }, ErrOutOfBounds},
		{"LD B, Vx past memory end", 0xF133, func(m *Machine) { m.I = MemorySize - 2 }, ErrOutOfBounds},
		{"LD [I], Vx past memory end", 0xF355, func(m *Machine) { m.I = MemorySize - 3 }, ErrOutOfBounds},
		{"LD Vx, [I] with I past memory end", 0xF065, func(m *Machine) { m.I = 0x1003 }, ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			err := execOpcode(t, m, tt.opcode)
			assert.True(t, errors.Is(err, tt.err))

			var opErr *OpcodeError
			assert.True(t, errors.As(err, &opErr))
			assert.Equal(t, tt.opcode, opErr.Opcode)
			assert.Equal(t, uint16(ProgramStart), opErr.Address)
			assert.Equal(t, uint16(ProgramStart), m.PC)

			// the failing instruction is fetched again
			assert.True(t, errors.Is(m.Tick(), tt.err))
			assert.Equal(t, uint16(ProgramStart), m.PC)
		})
	}
}

func TestAddByteWraparound(t *testing.T) {
	for _, start := range []uint8{0, 1, 0x7F, 0x80, 0xFE, 0xFF} {
		for _, nn := range []uint8{0, 1, 0x10, 0x80, 0xFF} {
			m := newTestMachine(t)
			m.V[7] = start
			assert.NoError(t, execOpcode(t, m, 0x7700|uint16(nn)))
			assert.Equal(t, uint8((int(start)+int(nn))%256), m.V[7])
		}
	}
}

func TestArithmeticFlags(t *testing.T) {
	values := []uint8{0, 1, 0x7F, 0x80, 0xFE, 0xFF}
	for _, vx := range values {
		for _, vy := range values {
			m := newTestMachine(t)
			m.V[1], m.V[2] = vx, vy
			assert.NoError(t, execOpcode(t, m, 0x8124))
			assert.Equal(t, boolToFlag(int(vx)+int(vy) > 255), m.V[FlagRegister])

			m = newTestMachine(t)
			m.V[1], m.V[2] = vx, vy
			assert.NoError(t, execOpcode(t, m, 0x8125))
			assert.Equal(t, boolToFlag(vx > vy), m.V[FlagRegister])
			assert.Equal(t, uint8((int(vx)-int(vy)+256)%256), m.V[1])
		}
	}
}

func TestDraw(t *testing.T) {
	m := newTestMachine(t)
	m.I = 0x300
	m.Memory[0x300] = 0b1100_0001
	m.Memory[0x301] = 0b1000_0000
	m.V[1], m.V[2] = 10, 5

	assert.NoError(t, execOpcode(t, m, 0xD122))
	assert.Equal(t, uint8(0), m.V[FlagRegister])
	assert.True(t, m.Drawn())
	assert.True(t, m.Pixel(10, 5))
	assert.True(t, m.Pixel(11, 5))
	assert.False(t, m.Pixel(12, 5))
	assert.True(t, m.Pixel(17, 5))
	assert.True(t, m.Pixel(10, 6))
	assert.False(t, m.Pixel(11, 6))
}

func TestDrawWraps(t *testing.T) {
	m := newTestMachine(t)
	m.I = 0x300
	m.Memory[0x300] = 0xFF
	m.Memory[0x301] = 0xFF
	m.V[1], m.V[2] = 60, 31

	assert.NoError(t, execOpcode(t, m, 0xD122))
	for _, x := range []int{60, 61, 62, 63, 0, 1, 2, 3} {
		assert.True(t, m.Display[x+31*DisplayWidth] == 1)
		assert.True(t, m.Display[x] == 1)
	}
	assert.False(t, m.Pixel(4, 0))
	assert.False(t, m.Pixel(59, 31))
}

func TestDrawTwiceRestoresFramebuffer(t *testing.T) {
	m := newTestMachine(t)
	m.Display[20+10*DisplayWidth] = 1
	before := m.Framebuffer()

	// LD F, V0 sprite for digit 8, drawn twice at (V1, V2)
	m.V[0], m.V[1], m.V[2] = 8, 18, 8
	assert.NoError(t, execOpcode(t, m, 0xF029))
	assert.NoError(t, execOpcode(t, m, 0xD125))
	assert.Equal(t, uint8(1), m.V[FlagRegister])
	assert.True(t, m.Framebuffer() != before)

	assert.NoError(t, execOpcode(t, m, 0xD125))
	assert.Equal(t, uint8(1), m.V[FlagRegister])
	assert.Equal(t, before, m.Framebuffer())
}

func TestDrawZeroRowsIgnoresIndex(t *testing.T) {
	m := newTestMachine(t)
	m.I = MemorySize + 5
	m.V[FlagRegister] = 1

	assert.NoError(t, execOpcode(t, m, 0xD120))
	assert.Equal(t, uint8(0), m.V[FlagRegister])
	assert.True(t, m.Drawn())
	assert.Equal(t, [DisplaySize]byte{}, m.Display)
	assert.Equal(t, uint16(ProgramStart+2), m.PC)
}

func TestDrawZeroSpriteAfterClear(t *testing.T) {
	m := newTestMachine(t)
	m.Display[100] = 1
	m.I = 0x300
	m.V[1], m.V[2] = 33, 17

	assert.NoError(t, execOpcode(t, m, 0x00E0))
	assert.NoError(t, execOpcode(t, m, 0xD12F))
	assert.Equal(t, [DisplaySize]byte{}, m.Display)
	assert.Equal(t, uint8(0), m.V[FlagRegister])
}

func TestCallReturnRoundTrip(t *testing.T) {
	// 0x200: CALL 0x300
	// 0x202: LD V0, 1
	// 0x300: RET
	m := newTestMachine(t, 0x23, 0x00, 0x60, 0x01)
	m.Memory[0x300] = 0x00
	m.Memory[0x301] = 0xEE

	assert.NoError(t, m.Tick())
	assert.Equal(t, uint16(0x300), m.PC)
	assert.NoError(t, m.Tick())
	assert.Equal(t, uint16(0x202), m.PC)
	assert.Equal(t, uint8(0), m.SP)
	assert.NoError(t, m.Tick())
	assert.Equal(t, uint8(1), m.V[0])
}

func TestNestedCalls(t *testing.T) {
	m := newTestMachine(t)
	// every subroutine calls the next one
	for i := range StackSize + 1 {
		address := ProgramStart + i*opcodeSize
		target := address + opcodeSize
		m.Memory[address] = 0x20 | byte(target>>8)
		m.Memory[address+1] = byte(target)
	}

	for range StackSize {
		assert.NoError(t, m.Tick())
	}
	assert.Equal(t, uint8(StackSize), m.SP)

	err := m.Tick()
	assert.True(t, errors.Is(err, ErrStackOverflow))
}
