// SPDX-License-Identifier: EPL-2.0

package host

import (
	"errors"
	"testing"

	"github.com/ik5/circuithost/circuit"
	"github.com/ik5/circuithost/circuits/tube"
	"github.com/ik5/circuithost/internal/audiotest"
)

// passthroughModule returns a minimal module that copies input to
// output and records its lifecycle calls.
func passthroughModule(initCalls, cleanupCalls *int) *circuit.Module {
	return &circuit.Module{
		Init: func(sampleRate, bufferSize, oversample int) *circuit.Context {
			*initCalls++
			return &circuit.Context{
				State:      struct{}{},
				SampleRate: sampleRate,
				BufferSize: bufferSize,
				Oversample: oversample,
			}
		},
		Process: func(ctx *circuit.Context, input, output []float32, numSamples, numChannels int) {
			copy(output, input[:numSamples*numChannels])
		},
		Cleanup: func(ctx *circuit.Context) {
			*cleanupCalls++
		},
	}
}

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	a, err := ParseAssignment("Gain=0.75")
	if err != nil {
		t.Fatalf("ParseAssignment(Gain=0.75) error = %v", err)
	}
	if a.Name != "Gain" || a.Value != 0.75 {
		t.Errorf("ParseAssignment(Gain=0.75) = %+v", a)
	}

	for _, bad := range []string{"Gain", "=0.5", "Gain=loud", ""} {
		if _, err := ParseAssignment(bad); !errors.Is(err, ErrBadAssignment) {
			t.Errorf("ParseAssignment(%q) error = %v, want ErrBadAssignment", bad, err)
		}
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	got := Config{}.WithDefaults()
	if got.SampleRate != DefaultSampleRate {
		t.Errorf("SampleRate = %d, want %d", got.SampleRate, DefaultSampleRate)
	}
	if got.BufferSize != DefaultBufferSize {
		t.Errorf("BufferSize = %d, want %d", got.BufferSize, DefaultBufferSize)
	}
	if got.Oversample != DefaultOversample {
		t.Errorf("Oversample = %d, want %d", got.Oversample, DefaultOversample)
	}

	// Out-of-range values are replaced, valid ones kept.
	got = Config{SampleRate: 8000, BufferSize: -1, Oversample: 4}.WithDefaults()
	if got.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", got.SampleRate)
	}
	if got.BufferSize != DefaultBufferSize {
		t.Errorf("BufferSize = %d, want %d", got.BufferSize, DefaultBufferSize)
	}
	if got.Oversample != 4 {
		t.Errorf("Oversample = %d, want 4", got.Oversample)
	}
}

func TestRun_Passthrough(t *testing.T) {
	t.Parallel()

	const frames = 1000
	var inits, cleanups int
	mod := passthroughModule(&inits, &cleanups)

	src := audiotest.NewConstantSource(48000, 2, frames, 0.25)
	sink := &audiotest.CollectSink{}

	stats, err := Run(mod, src, sink, Config{BufferSize: 256, Oversample: 1})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.Frames != frames {
		t.Errorf("Frames = %d, want %d", stats.Frames, frames)
	}
	if got := len(sink.Samples); got != frames*2 {
		t.Errorf("sink received %d samples, want %d", got, frames*2)
	}
	for i, v := range sink.Samples {
		if v != 0.25 {
			t.Fatalf("sink.Samples[%d] = %v, want 0.25", i, v)
		}
	}

	// 1000 frames at buffer size 256: 3 full buffers + 1 partial
	if stats.Buffers != 4 {
		t.Errorf("Buffers = %d, want 4", stats.Buffers)
	}
	if inits != 1 || cleanups != 1 {
		t.Errorf("lifecycle: %d inits, %d cleanups, want 1/1", inits, cleanups)
	}

	wantAudio := float64(frames) / 48000.0
	if got := stats.AudioDuration.Seconds(); got < wantAudio*0.999 || got > wantAudio*1.001 {
		t.Errorf("AudioDuration = %v, want ~%vs", stats.AudioDuration, wantAudio)
	}
}

func TestRun_MissingMandatoryCapability(t *testing.T) {
	t.Parallel()

	var inits, cleanups int
	mod := passthroughModule(&inits, &cleanups)
	mod.Process = nil

	src := audiotest.NewSilentSource(48000, 1, 10)
	sink := &audiotest.CollectSink{}

	_, err := Run(mod, src, sink, DefaultConfig())
	if !errors.Is(err, circuit.ErrMissingProcess) {
		t.Fatalf("Run() error = %v, want ErrMissingProcess", err)
	}
	if inits != 0 {
		t.Error("Init was called despite failed validation")
	}
}

func TestRun_InitFailure(t *testing.T) {
	t.Parallel()

	var cleanups int
	mod := &circuit.Module{
		Init:    func(sampleRate, bufferSize, oversample int) *circuit.Context { return nil },
		Process: func(ctx *circuit.Context, input, output []float32, numSamples, numChannels int) {},
		Cleanup: func(ctx *circuit.Context) { cleanups++ },
	}

	src := audiotest.NewSilentSource(48000, 1, 10)
	sink := &audiotest.CollectSink{}

	_, err := Run(mod, src, sink, DefaultConfig())
	if !errors.Is(err, ErrInitFailed) {
		t.Fatalf("Run() error = %v, want ErrInitFailed", err)
	}
	if cleanups != 0 {
		t.Error("Cleanup was called for an instance that never existed")
	}
}

func TestRun_AppliesParameters(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(48000, 1, 500, 0.8)
	sink := &audiotest.CollectSink{}

	cfg := Config{
		BufferSize: 128,
		Oversample: 1,
		Params:     []Assignment{{Name: "Volume", Value: 0.0}},
	}

	if _, err := Run(tube.Module(), src, sink, cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Volume 0 silences the makeup stage; nothing excites the filter
	// so the whole render is exactly zero.
	for i, v := range sink.Samples {
		if v != 0 {
			t.Fatalf("sink.Samples[%d] = %v, want 0 with Volume=0", i, v)
		}
	}
}

func TestRun_ParametersSkippedWithoutCapability(t *testing.T) {
	t.Parallel()

	var inits, cleanups int
	mod := passthroughModule(&inits, &cleanups)
	// No SetParameter capability; assignments must be skipped silently.

	src := audiotest.NewSilentSource(48000, 1, 100)
	sink := &audiotest.CollectSink{}

	cfg := Config{
		BufferSize: 64,
		Oversample: 1,
		Params:     []Assignment{{Name: "Gain", Value: 0.9}},
	}

	if _, err := Run(mod, src, sink, cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRun_WriteErrorAborts(t *testing.T) {
	t.Parallel()

	var inits, cleanups int
	mod := passthroughModule(&inits, &cleanups)

	src := audiotest.NewSilentSource(48000, 1, 1000)
	failure := errors.New("disk full")
	sink := &audiotest.CollectSink{FailWith: failure}

	_, err := Run(mod, src, sink, Config{BufferSize: 64, Oversample: 1})
	if !errors.Is(err, failure) {
		t.Fatalf("Run() error = %v, want wrapped disk full", err)
	}
	if cleanups != 1 {
		t.Errorf("cleanups = %d, want 1 (instance released on the error path)", cleanups)
	}
}

func TestRun_DefaultsApplied(t *testing.T) {
	t.Parallel()

	var ctxSeen *circuit.Context
	mod := &circuit.Module{
		Init: func(sampleRate, bufferSize, oversample int) *circuit.Context {
			ctxSeen = &circuit.Context{
				State:      struct{}{},
				SampleRate: sampleRate,
				BufferSize: bufferSize,
				Oversample: oversample,
			}
			return ctxSeen
		},
		Process: func(ctx *circuit.Context, input, output []float32, numSamples, numChannels int) {},
		Cleanup: func(ctx *circuit.Context) {},
	}

	src := audiotest.NewSilentSource(44100, 1, 10)
	sink := &audiotest.CollectSink{}

	// Zero config: buffer size and oversample fall back to defaults,
	// the sample rate comes from the stream.
	if _, err := Run(mod, src, sink, Config{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if ctxSeen.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100 (stream rate wins)", ctxSeen.SampleRate)
	}
	if ctxSeen.BufferSize != DefaultBufferSize {
		t.Errorf("BufferSize = %d, want %d", ctxSeen.BufferSize, DefaultBufferSize)
	}
	if ctxSeen.Oversample != DefaultOversample {
		t.Errorf("Oversample = %d, want %d", ctxSeen.Oversample, DefaultOversample)
	}
}
