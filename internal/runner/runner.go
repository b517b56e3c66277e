// Package runner drives the virtual machine execution.
package runner

import (
	"errors"
	"fmt"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/mnemonic"
	"github.com/retroenv/retrogolib/log"
)

var errNoProgram = errors.New("no program loaded")

// Runner owns a machine and schedules its ticks. After the first failing
// tick the runner halts until the program is restarted.
type Runner struct {
	logger  *log.Logger
	machine *chip8.Machine

	program []byte
	ticks   int
	err     error
}

// New creates a new runner for the machine.
func New(logger *log.Logger, machine *chip8.Machine) *Runner {
	return &Runner{
		logger:  logger,
		machine: machine,
	}
}

// Machine returns the driven machine.
func (r *Runner) Machine() *chip8.Machine {
	return r.machine
}

// Start resets the machine and loads the program.
func (r *Runner) Start(program []byte) error {
	r.machine.Reset()
	if err := r.machine.Load(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	r.program = program
	r.ticks = 0
	r.err = nil

	r.logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Int("instructions_per_tick", r.machine.InstructionsPerTick()))
	return nil
}

// Restart resets the machine and loads the last started program again.
func (r *Runner) Restart() error {
	if r.program == nil {
		return errNoProgram
	}
	return r.Start(r.program)
}

// Step executes a single tick. Once a tick failed, Step returns the same
// error without executing anything.
func (r *Runner) Step() error {
	if r.err != nil {
		return r.err
	}

	if err := r.machine.Tick(); err != nil {
		r.err = fmt.Errorf("tick %d: %w", r.ticks, err)
		r.reportFault(err)
		return r.err
	}
	r.ticks++
	return nil
}

// Halted returns whether execution stopped due to an error.
func (r *Runner) Halted() bool {
	return r.err != nil
}

// Err returns the error that halted execution.
func (r *Runner) Err() error {
	return r.err
}

// Ticks returns the number of successfully executed ticks since start.
func (r *Runner) Ticks() int {
	return r.ticks
}

// reportFault logs the failing instruction.
func (r *Runner) reportFault(err error) {
	var opErr *chip8.OpcodeError
	if !errors.As(err, &opErr) {
		r.logger.Error("Execution halted",
			log.Err(err),
			log.Hex("pc", r.machine.PC),
			log.Int("tick", r.ticks))
		return
	}

	r.logger.Error("Execution halted",
		log.Err(opErr.Err),
		log.Hex("address", opErr.Address),
		log.Hex("opcode", opErr.Opcode),
		log.String("instruction", mnemonic.Format(opErr.Opcode)),
		log.Int("tick", r.ticks))
}
