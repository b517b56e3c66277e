// Package beeper generates the CHIP-8 buzzer tone as PCM stream.
package beeper

import (
	"encoding/binary"
	"sync/atomic"
)

// Default tone settings.
const (
	DefaultSampleRate = 48000
	DefaultFrequency  = 440
	DefaultVolume     = 0x1800
)

// frameSize is the size of one stereo frame of 16-bit samples.
const frameSize = 4

// Beeper implements io.Reader by producing a square wave as 16-bit little
// endian stereo frames while the tone is active, and silence otherwise.
// SetActive may be called concurrently with Read.
type Beeper struct {
	period int
	volume int16
	phase  int

	active atomic.Bool
}

// New returns a beeper for the given sample rate and tone frequency.
func New(sampleRate, frequency int) *Beeper {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	period := max(sampleRate/frequency, 2)

	return &Beeper{
		period: period,
		volume: DefaultVolume,
	}
}

// SetActive switches the tone on or off.
func (b *Beeper) SetActive(active bool) {
	b.active.Store(active)
}

// Active returns whether the tone is on.
func (b *Beeper) Active() bool {
	return b.active.Load()
}

func (b *Beeper) Read(p []byte) (int, error) {
	// a buffer smaller than a frame is filled with silence to never return 0 bytes
	if len(p) < frameSize {
		clear(p)
		return len(p), nil
	}

	on := b.active.Load()
	frames := len(p) / frameSize
	half := b.period / 2

	for i := range frames {
		var sample int16
		if on {
			sample = b.volume
			if b.phase >= half {
				sample = -b.volume
			}
		}
		b.phase = (b.phase + 1) % b.period

		binary.LittleEndian.PutUint16(p[i*frameSize:], uint16(sample))
		binary.LittleEndian.PutUint16(p[i*frameSize+2:], uint16(sample))
	}
	return frames * frameSize, nil
}
