// SPDX-License-Identifier: EPL-2.0

package audiotest

// CollectSink is a test helper that accumulates written samples in
// memory.  It implements the audio.Sink interface (without importing it
// to avoid cycles).
type CollectSink struct {
	Samples []float32
	Writes  int
	Closed  bool

	// FailWith, when non-nil, is returned by every WriteSamples call.
	FailWith error
}

func (c *CollectSink) WriteSamples(src []float32) error {
	if c.FailWith != nil {
		return c.FailWith
	}
	c.Samples = append(c.Samples, src...)
	c.Writes++
	return nil
}

func (c *CollectSink) Close() error {
	c.Closed = true
	return nil
}
