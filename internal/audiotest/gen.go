// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds deterministic sources and sinks shared by
// the package tests: waveform generators on the read side and a
// collecting sink on the write side.
package audiotest

import (
	"io"
	"math"
)

// GenSource produces frames from a generator function.  It implements
// the audio.Source interface (without importing it to avoid cycles).
// Every channel of a frame carries the same generated value.
type GenSource struct {
	rate     int
	channels int
	frames   int
	pos      int
	gen      func(frame int) float32
}

// NewGenSource returns a source that produces the given number of
// frames, each generated by gen from its frame index.
func NewGenSource(sampleRate, channels, frames int, gen func(frame int) float32) *GenSource {
	return &GenSource{
		rate:     sampleRate,
		channels: channels,
		frames:   frames,
		gen:      gen,
	}
}

// NewSilentSource returns a source of all-zero frames.
func NewSilentSource(sampleRate, channels, frames int) *GenSource {
	return NewGenSource(sampleRate, channels, frames, func(int) float32 { return 0 })
}

// NewConstantSource returns a source where every sample holds value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *GenSource {
	return NewGenSource(sampleRate, channels, frames, func(int) float32 { return value })
}

// NewSineSource returns a source producing a full-scale sine wave at
// the given frequency.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *GenSource {
	step := 2 * math.Pi * frequency / float64(sampleRate)
	return NewGenSource(sampleRate, channels, frames, func(frame int) float32 {
		return float32(math.Sin(step * float64(frame)))
	})
}

func (g *GenSource) SampleRate() int { return g.rate }
func (g *GenSource) Channels() int   { return g.channels }
func (g *GenSource) BufSize() int    { return 4096 }
func (g *GenSource) Close() error    { return nil }

// ReadSamples fills dst with whole frames.  io.EOF accompanies the
// final batch of samples, the way file decoders report exhaustion.
func (g *GenSource) ReadSamples(dst []float32) (int, error) {
	remaining := g.frames - g.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := len(dst) / g.channels
	if frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		v := g.gen(g.pos + f)
		for ch := 0; ch < g.channels; ch++ {
			dst[f*g.channels+ch] = v
		}
	}
	g.pos += frames

	n := frames * g.channels
	if g.pos >= g.frames {
		return n, io.EOF
	}
	return n, nil
}
