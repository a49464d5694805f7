// SPDX-License-Identifier: EPL-2.0

package circuit

// Module is the capability table a circuit implementation exposes to
// hosts.  It is the Go rendition of a dynamically resolved symbol
// table: Init, Process and Cleanup are mandatory, everything else is
// an optional capability a host must nil-check before calling.
//
// No call in the table returns an error and none may panic across the
// boundary; failure is communicated through sentinel results (a nil
// Context from Init, 0.0 from GetParameter, "" from ParameterName).
type Module struct {
	// Init creates a fresh instance, or returns nil when the settings
	// are invalid (sampleRate <= 0, oversample < 1) or state cannot
	// be allocated.  Construction is atomic: a non-nil result is
	// fully usable, a nil result left nothing behind.
	Init func(sampleRate, bufferSize, oversample int) *Context

	// Process runs the instance over numSamples interleaved frames.
	// input and output must each hold numSamples*numChannels values;
	// the engine only reads input and only writes output, retaining
	// neither after the call returns.
	Process func(ctx *Context, input, output []float32, numSamples, numChannels int)

	// Cleanup releases the instance.  Must be called exactly once.
	Cleanup func(ctx *Context)

	// SetParameter stores a normalized control value.  Unknown names
	// are ignored, out-of-range values clamped.
	SetParameter func(ctx *Context, name string, value float64)

	// GetParameter reads a normalized control value; unknown names
	// yield 0.0.
	GetParameter func(ctx *Context, name string) float64

	// NumParameters reports the size of the fixed control list.
	NumParameters func(ctx *Context) int

	// ParameterName resolves a control index to its name; out of
	// range yields "".
	ParameterName func(ctx *Context, index int) string

	// Info returns the circuit's static descriptor.
	Info func() *Info
}

// Validate checks that all mandatory capabilities are present.  Hosts
// call this once at bind time and fail fast on error; optional nil
// capabilities are not an error.
func (m *Module) Validate() error {
	switch {
	case m == nil:
		return ErrNilModule
	case m.Init == nil:
		return ErrMissingInit
	case m.Process == nil:
		return ErrMissingProcess
	case m.Cleanup == nil:
		return ErrMissingCleanup
	}
	return nil
}
