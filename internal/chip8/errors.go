package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrProgramCounterOutOfRange is returned when an instruction is fetched
	// from an address outside of memory.
	ErrProgramCounterOutOfRange = errors.New("program counter out of range")
	// ErrUnknownOpcode is returned for opcodes without instruction semantics.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrOutOfBounds is returned for a program that does not fit into memory
	// and for memory accesses through I past the end of memory.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrStackOverflow is returned by a call with all stack slots in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned by a return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrInvalidKey is returned for key indices outside of the keypad.
	ErrInvalidKey = errors.New("invalid key")
)

// OpcodeError describes a failure while executing an instruction.
type OpcodeError struct {
	Opcode  uint16 // raw instruction word
	Address uint16 // address the instruction was fetched from
	Err     error
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("opcode %04X at address %03X: %s", e.Opcode, e.Address, e.Err)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}

