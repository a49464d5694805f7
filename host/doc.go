// SPDX-License-Identifier: EPL-2.0

// Package host runs audio streams through circuit modules.
//
// The harness is the reference consumer of the circuit contract: it
// validates the module's capability table, creates one instance sized
// to the input stream, applies parameter assignments, then pumps
// buffers through Process until the source is exhausted:
//
//	src, _ := wav.Decoder{}.Decode(inFile)
//	sink := wav.NewWriter(outFile, src.SampleRate(), src.Channels())
//
//	stats, err := host.Run(tube.Module(), src, sink, host.Config{
//	    BufferSize: 256,
//	    Oversample: 8,
//	    Params:     []host.Assignment{{Name: "Gain", Value: 0.7}},
//	})
//
// The harness never alters the stream: output sample rate and channel
// count always equal the input's.  Run reports aggregate throughput
// figures (real-time ratio, DSP load, buffer latency) in Stats.
package host
