// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/circuithost/audio"
)

// vorbisStream is the slice of oggvorbis.Reader the source needs, kept
// as an interface so tests can feed synthetic sample data.
type vorbisStream interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source adapts an Ogg Vorbis stream.  Vorbis already decodes to
// normalized float32, so no sample conversion is needed.
type source struct {
	dec        vorbisStream
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples pulls interleaved samples straight into dst.  oggvorbis
// counts individual float32 values and delivers whole frames only, so
// dst is trimmed to a frame multiple before handing it down.
func (s *source) ReadSamples(dst []float32) (int, error) {
	usable := len(dst) - len(dst)%s.channels
	if usable == 0 {
		return 0, nil
	}

	return s.dec.Read(dst[:usable])
}

type Decoder struct{}

// Decode wraps r in a streaming Ogg Vorbis source.  The Ogg headers
// are parsed here; audio packets are decoded lazily.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
