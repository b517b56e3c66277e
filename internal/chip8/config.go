package chip8

import (
	"math/rand/v2"
)

// RandomSource returns a random byte for the Cxnn instruction.
type RandomSource func() byte

// Config contains the tunable settings of a machine.
type Config struct {
	// InstructionsPerTick is the maximum number of instructions that a
	// single Tick executes.
	InstructionsPerTick int

	// Font is copied to the start of memory on every reset. A zero value
	// selects DefaultFont.
	Font [FontSize]byte

	// Random is the byte source of the Cxnn instruction. A nil value
	// selects the math/rand/v2 global generator.
	Random RandomSource
}

// DefaultConfig returns a config with the default settings.
func DefaultConfig() Config {
	return Config{
		InstructionsPerTick: DefaultInstructionsPerTick,
		Font:                DefaultFont,
		Random:              globalRandom,
	}
}

// SeededRandom returns a deterministic byte source for the given seed.
func SeededRandom(seed uint64) RandomSource {
	rnd := rand.New(rand.NewPCG(seed, seed))
	return func() byte {
		return byte(rnd.UintN(256))
	}
}

// withDefaults returns the config with unset fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.InstructionsPerTick <= 0 {
		c.InstructionsPerTick = DefaultInstructionsPerTick
	}
	if c.Font == ([FontSize]byte{}) {
		c.Font = DefaultFont
	}
	if c.Random == nil {
		c.Random = globalRandom
	}
	return c
}

func globalRandom() byte {
	return byte(rand.UintN(256))
}
