// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	PNG    string `flag:"png" usage:"write the final framebuffer as PNG file (headless mode)"`
	Expect string `flag:"expect" usage:"expected CRC32 of the final framebuffer in hex (headless mode)"`
}

// Flags contains behavior options.
type Flags struct {
	Headless bool   `flag:"headless" usage:"run without a window"`
	Ticks    int    `flag:"ticks" usage:"number of ticks to run in headless mode" default:"600"`
	Seed     uint64 `flag:"seed" usage:"seed for the random number instruction, 0 selects a random seed"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Machine contains the virtual machine options.
type Machine struct {
	InstructionsPerTick int `flag:"ipt" usage:"instructions executed per tick" default:"10"`
	TicksPerSecond      int `flag:"tps" usage:"ticks per second" default:"60"`
}

// Frontend contains window, input and audio options.
type Frontend struct {
	Scale  int    `flag:"scale" usage:"window scale factor" default:"10"`
	Keys   string `flag:"keys" usage:"host keys of the logical keys 0-F" default:"X123QWEASDZC4RFV"`
	Mute   bool   `flag:"mute" usage:"disable the buzzer"`
	Tone   int    `flag:"tone" usage:"buzzer tone frequency in Hz" default:"440"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Machine
	Frontend
}
