// SPDX-License-Identifier: EPL-2.0

package host

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/circuithost/audio"
	"github.com/ik5/circuithost/circuit"
)

// Defaults for a harness run, matching the values circuit authors tune
// against.
const (
	DefaultSampleRate = 48000
	DefaultBufferSize = 256
	DefaultOversample = 8
)

// Assignment is one name=value control setting applied after Init.
type Assignment struct {
	Name  string
	Value float64
}

// ParseAssignment parses a "name=value" string into an Assignment.
func ParseAssignment(s string) (Assignment, error) {
	name, value, found := strings.Cut(s, "=")
	if !found || name == "" {
		return Assignment{}, fmt.Errorf("%w: %q", ErrBadAssignment, s)
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Assignment{}, fmt.Errorf("%w: %q", ErrBadAssignment, s)
	}

	return Assignment{Name: name, Value: v}, nil
}

// Config carries the settings of one harness run.
type Config struct {
	// SampleRate is the rate the caller asked for.  The stream's own
	// rate always wins when the circuit is initialized; this value is
	// reported, not enforced.
	SampleRate int
	// BufferSize in frames per Process call.
	BufferSize int
	// Oversample sub-steps per output sample, >= 1.
	Oversample int

	// Params are applied in order after Init, when the circuit
	// exposes the SetParameter capability.
	Params []Assignment

	// Verbose enables per-buffer progress reporting through Logf.
	Verbose bool

	// Logf receives progress output when Verbose is set.  nil means
	// silent.
	Logf func(format string, args ...any)
}

// DefaultConfig returns a Config with the default run settings.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		BufferSize: DefaultBufferSize,
		Oversample: DefaultOversample,
	}
}

// WithDefaults returns a copy of c with unset run settings replaced by
// the package defaults.  Run applies it internally; callers that
// report the effective settings should apply it first.
func (c Config) WithDefaults() Config {
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.Oversample < 1 {
		c.Oversample = DefaultOversample
	}
	return c
}

// Stats aggregates the counters of one completed run.
type Stats struct {
	// Frames processed (per channel).
	Frames int64
	// Buffers is the number of Process calls issued.
	Buffers int

	// AudioDuration is the length of the processed audio.
	AudioDuration time.Duration
	// ProcessingTime is the time spent inside Process calls.
	ProcessingTime time.Duration

	// RealTimeRatio is AudioDuration / ProcessingTime (higher is
	// faster than real time).
	RealTimeRatio float64
	// LoadPercent is the share of real time spent processing.
	LoadPercent float64
	// LatencyMs is the buffer latency implied by the buffer size at
	// the stream rate.
	LatencyMs float64
}

// Run drives src through the circuit module into sink until the source
// is exhausted.
//
// The circuit is initialized at the stream's sample rate with the
// configured buffer size and oversampling factor, optional parameter
// assignments are applied, and then input is pumped through Process one
// buffer at a time.  Output mirrors the input format exactly: same
// sample rate, same channel count.  The instance is cleaned up exactly
// once on every path after a successful Init.
//
// On a stream error the run aborts; partial output may already have
// been written to sink.
func Run(mod *circuit.Module, src audio.Source, sink audio.Sink, cfg Config) (Stats, error) {
	var stats Stats

	if err := mod.Validate(); err != nil {
		return stats, err
	}

	cfg = cfg.WithDefaults()

	sampleRate := src.SampleRate()
	channels := src.Channels()

	ctx := mod.Init(sampleRate, cfg.BufferSize, cfg.Oversample)
	if ctx == nil {
		return stats, ErrInitFailed
	}
	defer mod.Cleanup(ctx)

	// Parameter setting is an optional capability; skip silently when
	// the circuit does not expose it.
	if mod.SetParameter != nil {
		for _, p := range cfg.Params {
			mod.SetParameter(ctx, p.Name, p.Value)
		}
	}

	bufferSamples := cfg.BufferSize * channels
	input := make([]float32, bufferSamples)
	output := make([]float32, bufferSamples)

	for {
		n, err := src.ReadSamples(input)
		if n > 0 {
			// Whole frames only; a trailing partial frame is dropped.
			frames := n / channels
			if frames > 0 {
				samples := frames * channels

				start := time.Now()
				mod.Process(ctx, input[:samples], output[:samples], frames, channels)
				stats.ProcessingTime += time.Since(start)
				stats.Buffers++

				if werr := sink.WriteSamples(output[:samples]); werr != nil {
					return stats, fmt.Errorf("writing output: %w", werr)
				}
				stats.Frames += int64(frames)

				if cfg.Verbose && cfg.Logf != nil && stats.Buffers%100 == 0 {
					cfg.Logf("  Processed %d frames...", stats.Frames)
				}
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("reading input: %w", err)
		}
	}

	stats.AudioDuration = time.Duration(float64(stats.Frames) / float64(sampleRate) * float64(time.Second))
	stats.LatencyMs = float64(cfg.BufferSize) / float64(sampleRate) * 1000.0

	procSecs := stats.ProcessingTime.Seconds()
	audioSecs := stats.AudioDuration.Seconds()
	if procSecs > 0 {
		stats.RealTimeRatio = audioSecs / procSecs
	}
	if audioSecs > 0 {
		stats.LoadPercent = (procSecs / audioSecs) * 100.0
	}

	return stats, nil
}
