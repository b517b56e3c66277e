package chip8

import "fmt"

// opcode is a 16-bit instruction word with accessors for its bit fields.
type opcode uint16

// group returns the top nibble that selects the instruction handler.
func (o opcode) group() uint8 { return uint8(o >> 12) }

// x returns the register index in bits 8-11.
func (o opcode) x() uint8 { return uint8(o>>8) & 0xF }

// y returns the register index in bits 4-7.
func (o opcode) y() uint8 { return uint8(o>>4) & 0xF }

// n returns the nibble in bits 0-3.
func (o opcode) n() uint8 { return uint8(o) & 0xF }

// nn returns the byte in bits 0-7.
func (o opcode) nn() uint8 { return uint8(o) }

// nnn returns the address in bits 0-11.
func (o opcode) nnn() uint16 { return uint16(o) & 0x0FFF }

// next is the program counter selected by an instruction. If set is false
// the program counter keeps the default increment applied during fetch.
type next struct {
	pc  uint16
	set bool
}

// advance continues with the instruction following the executed one.
var advance = next{}

// jumpTo continues execution at the given address.
func jumpTo(pc uint16) next {
	return next{pc: pc, set: true}
}

// skipIf skips the following instruction if the condition is true.
// The program counter already points to the following instruction.
func skipIf(m *Machine, condition bool) next {
	if condition {
		return jumpTo(m.PC + opcodeSize)
	}
	return advance
}

// handler executes an instruction of one opcode group.
type handler func(m *Machine, op opcode) (next, error)

// handlers maps the top nibble of an opcode to its instruction group.
// The groups 0x0, 0x8, 0xE and 0xF decode their instruction from the lower
// bits of the opcode.
var handlers = [16]handler{
	0x0: execSystem,
	0x1: execJump,
	0x2: execCall,
	0x3: execSkipEqualByte,
	0x4: execSkipNotEqualByte,
	0x5: execSkipEqualRegister,
	0x6: execLoadByte,
	0x7: execAddByte,
	0x8: execArithmetic,
	0x9: execSkipNotEqualRegister,
	0xA: execLoadIndex,
	0xB: execJumpOffset,
	0xC: execRandom,
	0xD: execDraw,
	0xE: execKeySkip,
	0xF: execMisc,
}

// execute runs the instruction fetched from the given address and applies
// the resulting program counter. A failing instruction resets the program
// counter to its own address, so that the next tick fails the same way.
func (m *Machine) execute(address, raw uint16) error {
	op := opcode(raw)
	h := handlers[op.group()]
	if h == nil {
		m.PC = address
		return &OpcodeError{Opcode: raw, Address: address, Err: ErrUnknownOpcode}
	}

	nxt, err := h(m, op)
	if err != nil {
		m.PC = address
		return &OpcodeError{Opcode: raw, Address: address, Err: err}
	}
	if nxt.set {
		m.PC = nxt.pc
	}
	return nil
}

// checkMemoryRange returns an error if size bytes starting at I do not fit
// into memory.
func checkMemoryRange(m *Machine, size int) error {
	if int(m.I)+size > MemorySize {
		return fmt.Errorf("accessing %d bytes at address %04X: %w", size, m.I, ErrOutOfBounds)
	}
	return nil
}
