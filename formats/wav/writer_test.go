// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"io"
	"math"
	"testing"
)

// memWriteSeeker is an in-memory io.WriteSeeker for encoder tests.
type memWriteSeeker struct {
	data   []byte
	offset int64
}

func (m *memWriteSeeker) Write(p []byte) (int, error) {
	if need := m.offset + int64(len(p)); need > int64(len(m.data)) {
		grown := make([]byte, need)
		copy(grown, m.data)
		m.data = grown
	}
	n := copy(m.data[m.offset:], p)
	m.offset += int64(n)
	return n, nil
}

func (m *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		m.offset = offset
	case io.SeekCurrent:
		m.offset += offset
	case io.SeekEnd:
		m.offset = int64(len(m.data)) + offset
	}
	return m.offset, nil
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	const (
		sampleRate = 48000
		channels   = 2
		frames     = 200
	)

	samples := make([]float32, frames*channels)
	for i := 0; i < frames; i++ {
		v := float32(math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate))
		samples[i*channels] = v
		samples[i*channels+1] = -v
	}

	ws := &memWriteSeeker{}
	w := NewWriter(ws, sampleRate, channels)

	// Stream in two chunks to cover the buffered path
	if err := w.WriteSamples(samples[:150*channels]); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := w.WriteSamples(samples[150*channels:]); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(ws.data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != sampleRate {
		t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), sampleRate)
	}
	if src.Channels() != channels {
		t.Errorf("Channels() = %d, want %d", src.Channels(), channels)
	}

	decoded := make([]float32, 0, len(samples))
	buf := make([]float32, 256)
	for {
		n, rerr := src.ReadSamples(buf)
		decoded = append(decoded, buf[:n]...)
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			t.Fatalf("ReadSamples() error = %v", rerr)
		}
	}

	if len(decoded) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(decoded), len(samples))
	}

	// 16-bit quantization plus the 32767/32768 scale mismatch bounds
	// the round-trip error
	const tolerance = 1.0 / 16000.0
	for i := range samples {
		if diff := math.Abs(float64(decoded[i] - samples[i])); diff > tolerance {
			t.Fatalf("sample %d: decoded %v, want %v (diff %v)", i, decoded[i], samples[i], diff)
		}
	}
}

func TestWriter_EmptyWriteIsNoop(t *testing.T) {
	t.Parallel()

	ws := &memWriteSeeker{}
	w := NewWriter(ws, 8000, 1)

	if err := w.WriteSamples(nil); err != nil {
		t.Fatalf("WriteSamples(nil) error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Header-only file still decodes as an empty stream
	src, err := Decoder{}.Decode(bytes.NewReader(ws.data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	buf := make([]float32, 16)
	if n, rerr := src.ReadSamples(buf); n != 0 || rerr != io.EOF {
		t.Errorf("ReadSamples() = %d, %v, want 0, io.EOF", n, rerr)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not a riff file")))
	if err == nil {
		t.Fatal("Decode() accepted garbage input")
	}
}
