// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/keypad"
	"github.com/retroenv/chip8vm/internal/options"
)

var errInvalidOption = errors.New("invalid option")

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8vm [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks the option values for consistency
func validateOptions(opts options.Program) error {
	switch {
	case opts.InstructionsPerTick <= 0:
		return fmt.Errorf("%w: instructions per tick must be positive", errInvalidOption)
	case opts.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks per second must be positive", errInvalidOption)
	case opts.Headless && opts.Ticks <= 0:
		return fmt.Errorf("%w: number of ticks must be positive", errInvalidOption)
	case !opts.Headless && (opts.PNG != "" || opts.Expect != ""):
		return fmt.Errorf("%w: -png and -expect require -headless", errInvalidOption)
	}

	if _, err := keypad.ParseLayout(opts.Keys); err != nil {
		return fmt.Errorf("%w: %w", errInvalidOption, err)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.PNG, "png", "", "write the final framebuffer as PNG file (headless mode)")
	flags.StringVar(&opts.Expect, "expect", "", "expected CRC32 of the final framebuffer in hex (headless mode)")

	flags.BoolVar(&opts.Headless, "headless", false, "run without a window")
	flags.IntVar(&opts.Ticks, "ticks", 600, "number of ticks to run in headless mode")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number instruction, 0 selects a random seed")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.IntVar(&opts.InstructionsPerTick, "ipt", 10, "instructions executed per tick")
	flags.IntVar(&opts.TicksPerSecond, "tps", 60, "ticks per second")

	flags.IntVar(&opts.Scale, "scale", 10, "window scale factor")
	flags.StringVar(&opts.Keys, "keys", keypad.DefaultLayout, "host keys of the logical keys 0-F")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the buzzer")
	flags.IntVar(&opts.Tone, "tone", 440, "buzzer tone frequency in Hz")
}
