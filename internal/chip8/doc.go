// Package chip8 implements the CHIP-8 virtual machine execution engine.
//
// # Machine State
//
// A Machine owns every piece of CPU visible state:
//   - 16 general purpose 8-bit registers V0-VF, VF doubles as flag register
//   - the 16-bit index register I and the program counter PC
//   - 4KB of memory, the built-in hex font lives at 0x000-0x04F
//   - a 16 slot call stack with stack pointer SP
//   - the delay and sound timers
//   - a 64x32 monochrome framebuffer
//   - a 16 key keyboard snapshot
//   - the run state, either Running or awaiting a key press
//
// # Execution
//
// The embedding driver calls Tick at a fixed rate. Each tick executes up to
// Config.InstructionsPerTick instructions and then decrements both timers.
// The "wait for key" instruction pauses execution until SetKey reports a key
// press, ticks are no-ops while paused.
//
// # Usage Example
//
//	m := chip8.New(chip8.DefaultConfig())
//	if err := m.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if err := m.Tick(); err != nil {
//			return fmt.Errorf("executing program: %w", err)
//		}
//	}
//
// The package is not safe for concurrent use, callers have to serialize
// SetKey and Tick.
package chip8
