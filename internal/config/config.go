// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineConfig creates the virtual machine configuration from the program options.
func MachineConfig(opts options.Program) chip8.Config {
	cfg := chip8.DefaultConfig()
	if opts.InstructionsPerTick > 0 {
		cfg.InstructionsPerTick = opts.InstructionsPerTick
	}
	if opts.Seed != 0 {
		cfg.Random = chip8.SeededRandom(opts.Seed)
	}
	return cfg
}
