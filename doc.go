// SPDX-License-Identifier: EPL-2.0

// Package circuithost provides a plugin contract for real-time audio
// effect circuits and a host harness for driving them over audio files.
//
// A circuit is a stateful effect published as a capability table (see
// the circuit package): mandatory Init/Process/Cleanup entry points
// plus optional parameter and metadata capabilities.  The host harness
// (see the host package) binds to a circuit, streams interleaved
// samples through it buffer by buffer, and reports throughput.
//
// # Quick Start
//
// The simplest way to process a file through the reference tube
// circuit:
//
//	file, _ := os.Open("guitar.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	samples, _ := circuithost.Render(tube.Module(), src, host.DefaultConfig())
//	// samples is the processed stream, same rate and channel count
//
// # Streaming to a File
//
// For long material, stream through host.Run instead of collecting in
// memory:
//
//	out, _ := os.Create("out.wav")
//	sink := wav.NewWriter(out, src.SampleRate(), src.Channels())
//	stats, _ := host.Run(tube.Module(), src, sink, host.DefaultConfig())
//	sink.Close()
//
// # Supported Input Formats
//
// The harness decodes the following containers, each in its own
// subpackage under formats/:
//   - WAV via formats/wav (also the output writer)
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// All decoders return an audio.Source and can be registered in an
// audio.Registry keyed by file extension.
//
// # Writing a Circuit
//
// A circuit implementation provides a circuit.Module value whose
// functions close over the package's state types; circuits/tube is the
// reference implementation and documents the expected behavior of
// every entry point, including the parameter clamping and unknown-name
// rules.
//
// # The Command Line Tool
//
// cmd/circuithost exposes the harness as a CLI:
//
//	circuithost -input in.wav -circuit tube -output out.wav \
//	    -param Gain=0.8 -param Volume=0.5 -oversample 4
package circuithost
