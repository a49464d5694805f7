// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/circuithost/utils"
)

// Writer streams interleaved float32 samples into a 16-bit PCM WAV.
// It implements audio.Sink.  Close finalizes the RIFF header and must
// be called exactly once after the last WriteSamples.
type Writer struct {
	enc      *gowav.Encoder
	channels int
	intBuf   *goaudio.IntBuffer
}

// NewWriter creates a WAV sink writing to ws at sampleRate with the
// given channel count.  ws must be seekable because the encoder
// patches chunk sizes on Close (os.File qualifies).
func NewWriter(ws io.WriteSeeker, sampleRate, channels int) *Writer {
	return &Writer{
		enc:      gowav.NewEncoder(ws, sampleRate, 16, channels, 1),
		channels: channels,
		intBuf: &goaudio.IntBuffer{
			Data: make([]int, 0, 4096),
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: 16,
		},
	}
}

// WriteSamples converts src to 16-bit PCM and appends it to the file.
// len(src) should be a multiple of the channel count.
func (w *Writer) WriteSamples(src []float32) error {
	if len(src) == 0 {
		return nil
	}

	// Grow the conversion buffer if needed (never shrink)
	if cap(w.intBuf.Data) < len(src) {
		w.intBuf.Data = make([]int, len(src))
	}
	w.intBuf.Data = w.intBuf.Data[:len(src)]

	for i, v := range src {
		w.intBuf.Data[i] = int(utils.Float32ToInt16(v))
	}

	if err := w.enc.Write(w.intBuf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close finalizes the WAV container.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
