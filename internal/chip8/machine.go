package chip8

import (
	"fmt"
)

// Machine contains the complete state of a CHIP-8 virtual machine.
// The exported fields are the CPU visible state, instructions access them
// directly.
type Machine struct {
	V  [RegisterCount]uint8 // general purpose registers V0-VF
	I  uint16               // index register
	PC uint16               // program counter

	SP    uint8 // index of the next free stack slot
	Stack [StackSize]uint16

	DT uint8 // delay timer
	ST uint8 // sound timer

	Memory  [MemorySize]byte
	Display [DisplaySize]byte // one byte per pixel, index x + y*DisplayWidth
	Keys    [KeyCount]bool

	cfg   Config
	state RunState
	drawn bool
}

// New returns a new machine that is reset and ready to load a program.
// Unset fields of the config are replaced by defaults.
func New(cfg Config) *Machine {
	m := &Machine{
		cfg: cfg.withDefaults(),
	}
	m.Reset()
	return m
}

// Reset reinitializes all state, regardless of the current run state.
// Memory is cleared except for the font at the start of memory.
func (m *Machine) Reset() {
	m.V = [RegisterCount]uint8{}
	m.I = 0
	m.PC = ProgramStart
	m.SP = 0
	m.Stack = [StackSize]uint16{}
	m.DT = 0
	m.ST = 0
	m.Memory = [MemorySize]byte{}
	copy(m.Memory[:], m.cfg.Font[:])
	m.Display = [DisplaySize]byte{}
	m.Keys = [KeyCount]bool{}
	m.state = running
	m.drawn = false
}

// Load copies the program into memory at ProgramStart. Other state is not
// changed, Load is intended to be called after Reset.
// A program larger than MaxProgramSize is rejected without modifying memory.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("program size %d exceeds available memory of %d bytes: %w",
			len(program), MaxProgramSize, ErrOutOfBounds)
	}
	copy(m.Memory[ProgramStart:], program)
	return nil
}

// SetKey records the state of a key. A key press while a "wait for key"
// instruction is pending stores the key index in the target register and
// resumes execution.
func (m *Machine) SetKey(index int, down bool) error {
	if index < 0 || index >= KeyCount {
		return fmt.Errorf("key index %d: %w", index, ErrInvalidKey)
	}

	m.Keys[index] = down
	if down && m.state.Paused() {
		m.V[m.state.Register] = uint8(index)
		m.state = running
	}
	return nil
}

// Tick executes up to the configured number of instructions and decrements
// the timers afterwards. It does nothing while execution is paused.
// On error the program counter points to the failing instruction and the
// timers are not decremented, so every following tick fails the same way
// until the machine is reset.
func (m *Machine) Tick() error {
	if m.state.Paused() {
		return nil
	}

	m.drawn = false
	for range m.cfg.InstructionsPerTick {
		if err := m.step(); err != nil {
			return err
		}
		if m.state.Paused() {
			break
		}
	}

	if m.DT > 0 {
		m.DT--
	}
	if m.ST > 0 {
		m.ST--
	}
	return nil
}

// step fetches, decodes and executes a single instruction.
func (m *Machine) step() error {
	if m.PC >= MemorySize {
		return fmt.Errorf("fetching at address %04X: %w", m.PC, ErrProgramCounterOutOfRange)
	}

	address := m.PC
	opcode := m.fetch()
	m.PC += opcodeSize
	return m.execute(address, opcode)
}

// fetch reads the instruction word at PC, high byte first. The low byte of an
// instruction at the last memory address wraps around to address 0.
func (m *Machine) fetch() uint16 {
	hi := m.Memory[m.PC]
	lo := m.Memory[(m.PC+1)&(MemorySize-1)]
	return uint16(hi)<<8 | uint16(lo)
}

// RunState returns the current run state.
func (m *Machine) RunState() RunState {
	return m.state
}

// Drawn returns whether the last tick modified the framebuffer.
func (m *Machine) Drawn() bool {
	return m.drawn
}

// Pixel returns whether the pixel at the given coordinates is lit.
// Coordinates wrap around the display edges.
func (m *Machine) Pixel(x, y int) bool {
	x = ((x % DisplayWidth) + DisplayWidth) % DisplayWidth
	y = ((y % DisplayHeight) + DisplayHeight) % DisplayHeight
	return m.Display[x+y*DisplayWidth] != 0
}

// Framebuffer returns a copy of the display content.
func (m *Machine) Framebuffer() [DisplaySize]byte {
	return m.Display
}

// SoundActive returns whether a tone should be playing.
func (m *Machine) SoundActive() bool {
	return m.ST > 0
}

// InstructionsPerTick returns the configured instruction budget of a tick.
func (m *Machine) InstructionsPerTick() int {
	return m.cfg.InstructionsPerTick
}
