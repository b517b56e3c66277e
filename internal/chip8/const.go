package chip8

// CHIP-8 memory layout constants.
//
//	0x000-0x04F: built-in font sprites (16 glyphs x 5 bytes)
//	0x050-0x1FF: unused interpreter area
//	0x200-0xFFF: program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the memory address where programs are loaded and
	// execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontSize is the size of the built-in font in bytes.
	FontSize = 80

	// FontGlyphSize is the number of bytes, and rows, of one font glyph.
	FontGlyphSize = 5
)

const (
	// RegisterCount is the number of general purpose registers.
	RegisterCount = 16

	// StackSize is the number of call stack slots.
	StackSize = 16

	// KeyCount is the number of keys on the keypad.
	KeyCount = 16

	// FlagRegister is the index of the register VF that receives carry,
	// borrow, shift and collision flags.
	FlagRegister = 0xF
)

// Display dimensions.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
	DisplaySize   = DisplayWidth * DisplayHeight
)

// DefaultInstructionsPerTick is the number of instructions executed per tick
// if no other value is configured.
const DefaultInstructionsPerTick = 10

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// DefaultFont contains the hexadecimal digit sprites 0-F.
var DefaultFont = [FontSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
