package chip8

import "fmt"

// RunMode is the execution mode of a machine.
type RunMode uint8

const (
	// Running executes instructions on every tick.
	Running RunMode = iota
	// AwaitingKey pauses execution until a key is pressed.
	AwaitingKey
)

func (m RunMode) String() string {
	switch m {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	default:
		return fmt.Sprintf("RunMode(%d)", uint8(m))
	}
}

// RunState is the execution state of a machine.
// Register is only set in AwaitingKey mode and names the register that
// receives the index of the next pressed key.
type RunState struct {
	Mode     RunMode
	Register uint8
}

// running is the run state of a machine that executes instructions.
var running = RunState{Mode: Running}

// awaitingKey returns the run state of a paused "wait for key" instruction.
func awaitingKey(register uint8) RunState {
	return RunState{Mode: AwaitingKey, Register: register}
}

// Paused returns whether execution is suspended.
func (s RunState) Paused() bool {
	return s.Mode == AwaitingKey
}

func (s RunState) String() string {
	if s.Mode == AwaitingKey {
		return fmt.Sprintf("%s V%X", s.Mode, s.Register)
	}
	return s.Mode.String()
}
