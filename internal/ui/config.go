// Package ui implements the windowed frontend based on ebiten.
package ui

import (
	"github.com/retroenv/chip8vm/internal/beeper"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/keypad"
)

// Config contains window, input and audio related settings.
type Config struct {
	Title          string          // window title
	Scale          int             // integer upscaling factor
	TicksPerSecond int             // machine ticks per second
	Layout         keypad.Layout   // host keys of the logical keys
	Palette        display.Palette // pixel colors
	Mute           bool            // disable the buzzer
	Tone           int             // buzzer frequency in Hz
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "chip8vm"
	}
	if c.Scale <= 0 {
		c.Scale = 10
	}
	if c.TicksPerSecond <= 0 {
		c.TicksPerSecond = 60
	}
	if c.Layout == (keypad.Layout{}) {
		c.Layout, _ = keypad.ParseLayout(keypad.DefaultLayout)
	}
	if c.Palette == (display.Palette{}) {
		c.Palette = display.DefaultPalette
	}
	if c.Tone <= 0 {
		c.Tone = beeper.DefaultFrequency
	}
}
