// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/circuithost/audio"
	"github.com/ik5/circuithost/utils"
)

const bytesPerSample = 2

// pcmReader is the slice of gomp3.Decoder the source needs, kept as an
// interface so tests can feed canned PCM bytes.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// source converts the decoder's 16-bit little-endian PCM byte stream
// into normalized float32 samples.
type source struct {
	dec        pcmReader
	sampleRate int
	pcmBuf     []byte
}

func (s *source) SampleRate() int { return s.sampleRate }

// Channels is always 2: go-mp3 upmixes mono streams to stereo.
func (s *source) Channels() int { return 2 }

func (s *source) Close() error { return nil }
func (s *source) BufSize() int { return cap(s.pcmBuf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.pcmBuf) < need {
		s.pcmBuf = make([]byte, need)
	}
	s.pcmBuf = s.pcmBuf[:need]

	n, err := s.dec.Read(s.pcmBuf)
	if n == 0 {
		return 0, err
	}

	scale := utils.MaxSampleValue(16)
	samples := n / bytesPerSample
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.pcmBuf[i*bytesPerSample:]))
		dst[i] = float32(v) / scale
	}

	return samples, err
}

type Decoder struct{}

// Decode wraps r in a streaming MP3 source.  Frames are decoded lazily
// as samples are pulled.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		pcmBuf:     make([]byte, 8192),
	}, nil
}
