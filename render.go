// SPDX-License-Identifier: EPL-2.0

package circuithost

import (
	"fmt"

	"github.com/ik5/circuithost/audio"
	"github.com/ik5/circuithost/circuit"
	"github.com/ik5/circuithost/host"
)

// bufferSink collects written samples in memory.
type bufferSink struct {
	samples []float32
}

func (b *bufferSink) WriteSamples(src []float32) error {
	b.samples = append(b.samples, src...)
	return nil
}

func (b *bufferSink) Close() error { return nil }

// Render is a high-level convenience function that runs an entire
// audio source through a circuit module and collects the processed
// interleaved samples in memory.
//
// It is the offline counterpart of host.Run: the same validation,
// lifecycle and processing loop, but with an in-memory sink instead of
// a file.  The returned slice preserves the source's channel
// interleaving and sample rate.
//
// Parameters:
//   - mod: The circuit module to run; Init, Process and Cleanup must
//     be present
//   - src: The audio source to process (implements audio.Source)
//   - cfg: Run settings; zero values fall back to the host defaults
//
// Note: This loads the whole output into memory.  For long streams,
// use host.Run with a file-backed sink instead.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	samples, err := circuithost.Render(tube.Module(), src, host.DefaultConfig())
//	if err != nil {
//	    // Handle error
//	}
//	// samples now holds the processed stream
func Render(mod *circuit.Module, src audio.Source, cfg host.Config) ([]float32, error) {
	sink := &bufferSink{}

	if _, err := host.Run(mod, src, sink, cfg); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return sink.samples, nil
}
