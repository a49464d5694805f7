// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and encoding for the host harness.
// It uses the github.com/go-audio library for robust WAV file handling.
//
// The Decoder returns an audio.Source for any PCM WAV go-audio can
// parse (8, 16, 24 and 32-bit depths are normalized to float32).  The
// Writer is an audio.Sink producing 16-bit PCM output; because the
// encoder patches the RIFF header when the stream ends, the Writer
// needs an io.WriteSeeker and its Close must always be called.
//
//	src, _ := wav.Decoder{}.Decode(inFile)
//	sink := wav.NewWriter(outFile, src.SampleRate(), src.Channels())
//	defer sink.Close()
package wav
