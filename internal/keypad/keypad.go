// Package keypad translates host key states into CHIP-8 key events.
package keypad

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/retrogolib/set"
)

// DefaultLayout maps the COSMAC VIP hex keypad to the left side of a QWERTY
// keyboard. The character at position i is the host key of logical key i.
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
const DefaultLayout = "X123QWEASDZC4RFV"

var errInvalidLayout = errors.New("invalid keypad layout")

// Layout maps every logical key index to a host key character.
type Layout [chip8.KeyCount]rune

// ParseLayout parses a layout string of one letter or digit per logical key.
func ParseLayout(s string) (Layout, error) {
	var layout Layout
	runes := []rune(strings.ToUpper(s))
	if len(runes) != chip8.KeyCount {
		return layout, fmt.Errorf("%w: expected %d keys but got %d", errInvalidLayout, chip8.KeyCount, len(runes))
	}

	used := set.New[rune]()
	for i, r := range runes {
		if !unicode.IsDigit(r) && (r < 'A' || r > 'Z') {
			return layout, fmt.Errorf("%w: unsupported key '%c'", errInvalidLayout, r)
		}
		if used.Contains(r) {
			return layout, fmt.Errorf("%w: key '%c' assigned twice", errInvalidLayout, r)
		}
		used.Add(r)
		layout[i] = r
	}
	return layout, nil
}

// Held returns the set of logical keys whose host key is held down.
func (l Layout) Held(isDown func(r rune) bool) set.Set[int] {
	held := set.New[int]()
	for index, r := range l {
		if isDown(r) {
			held.Add(index)
		}
	}
	return held
}

// KeySetter receives key state changes.
type KeySetter interface {
	SetKey(index int, down bool) error
}

// Tracker remembers the held keys between frames and reports only changes,
// so that a held key results in a single key press event.
type Tracker struct {
	held set.Set[int]
}

// NewTracker returns a tracker with all keys released.
func NewTracker() *Tracker {
	return &Tracker{
		held: set.New[int](),
	}
}

// Update reports every key that changed its state since the last update.
func (t *Tracker) Update(held set.Set[int], target KeySetter) error {
	for index := range chip8.KeyCount {
		was := t.held.Contains(index)
		is := held.Contains(index)
		if was == is {
			continue
		}
		if err := target.SetKey(index, is); err != nil {
			return fmt.Errorf("setting key %X: %w", index, err)
		}
	}
	t.held = held
	return nil
}

// Reset marks all keys as released without reporting events.
func (t *Tracker) Reset() {
	t.held = set.New[int]()
}
