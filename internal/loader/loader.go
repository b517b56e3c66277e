// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

var errEmptyROM = errors.New("ROM file is empty")

// knownExtensions contains the file extensions commonly used for CHIP-8 ROMs.
var knownExtensions = []string{".ch8", ".c8", ".rom"}

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the ROM file and validates that it fits into the program space.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if !hasKnownExtension(path) {
		l.logger.Warn("Unexpected file extension for a CHIP-8 ROM",
			log.String("file", path))
	}

	return Read(file)
}

// Read reads a ROM image from the reader.
func Read(reader io.Reader) ([]byte, error) {
	// read one byte past the limit to detect oversized images
	data, err := io.ReadAll(io.LimitReader(reader, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, errEmptyROM
	case len(data) > chip8.MaxProgramSize:
		return nil, fmt.Errorf("ROM exceeds %d bytes of program space: %w", chip8.MaxProgramSize, chip8.ErrOutOfBounds)
	}
	return data, nil
}

// hasKnownExtension determines whether the file uses a CHIP-8 ROM extension.
func hasKnownExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, known := range knownExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
