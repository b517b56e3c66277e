package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/retrogolib/log"
)

var errChecksumMismatch = errors.New("framebuffer checksum mismatch")

// HeadlessOptions controls a run without a window.
type HeadlessOptions struct {
	Ticks  int    // number of ticks to execute
	PNG    string // optional file to write the final framebuffer to
	Expect string // optional expected framebuffer CRC32 in hex
}

// RunHeadless executes the given number of ticks as fast as possible and
// reports the final framebuffer. It stops early when the context is canceled.
func (r *Runner) RunHeadless(ctx context.Context, opts HeadlessOptions) error {
	for range opts.Ticks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("running headless: %w", err)
		}
		if err := r.Step(); err != nil {
			return err
		}
	}

	fb := r.machine.Framebuffer()
	checksum := display.Checksum(&fb)
	r.logger.Info("Headless run finished",
		log.Int("ticks", r.ticks),
		log.String("framebuffer_crc32", fmt.Sprintf("%08x", checksum)),
		log.String("run_state", r.machine.RunState().String()))

	if opts.PNG != "" {
		if err := writePNG(opts.PNG, &fb); err != nil {
			return err
		}
		r.logger.Info("Framebuffer written", log.String("file", opts.PNG))
	}

	if opts.Expect != "" {
		want, err := parseChecksum(opts.Expect)
		if err != nil {
			return err
		}
		if checksum != want {
			return fmt.Errorf("%w: got %08x, want %08x", errChecksumMismatch, checksum, want)
		}
	}
	return nil
}

// parseChecksum parses a CRC32 in hex notation with optional 0x prefix.
// Leading zeros may be omitted.
func parseChecksum(s string) (uint32, error) {
	digits := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing expected checksum '%s': %w", s, err)
	}
	return uint32(value), nil
}

func writePNG(path string, fb *display.Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}

	if err := display.WritePNG(file, fb, display.DefaultPalette, 4); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	return nil
}
