// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream primitives the host harness is
// built on.
//
// This package contains the building blocks for moving sample data in
// and out of a circuit:
//   - Source interface for audio input
//   - Sink interface for audio output
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio input:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface, so a harness can pull
// samples from any supported container the same way.
//
// # Sink Interface
//
// The Sink interface is the write-side mirror of Source:
//
//	type Sink interface {
//	    WriteSamples(src []float32) error
//	    Close() error
//	}
//
// Sinks accept interleaved buffers as they are produced; Close
// finalizes the underlying container (WAV sinks patch the RIFF header
// there), so it must always be called once writing is done.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for applications that need to support multiple formats.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
//
// # Error Handling
//
// Reads return io.EOF when no more data is available.  Other errors
// indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
