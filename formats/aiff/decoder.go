// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/circuithost/audio"
	"github.com/ik5/circuithost/utils"
)

// chunkReader is the slice of aiff.Decoder the source needs, kept as
// an interface so tests can feed synthetic PCM.
type chunkReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source pulls integer PCM out of the SSND chunk and normalizes it to
// float32 by the stream's bit depth.
type source struct {
	dec        chunkReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf == nil {
		return 4096
	}
	return cap(s.intBuf.Data)
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	scale := utils.MaxSampleValue(s.bitDepth)
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) / scale
	}

	// A short read without an error means the PCM chunk is exhausted.
	if n < len(dst) && err == nil {
		err = io.EOF
	}
	return n, err
}

type Decoder struct{}

// Decode opens r as an AIFF file.  Only 16-bit PCM streams are
// accepted.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio decoders seek between chunks, so a plain reader
		// has to be buffered first.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("buffering aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
	}, nil
}
