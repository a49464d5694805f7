// SPDX-License-Identifier: EPL-2.0

package circuit

// Context holds the per-instance simulation state of a running circuit.
// One Context is created by a module's Init, mutated only through
// Process and the parameter entry points, and released exactly once by
// Cleanup.  After Cleanup the Context must not be used again.
type Context struct {
	// State is the circuit's private simulation memory (filter state,
	// node voltages and so on).  It is owned exclusively by this
	// Context and survives across Process calls; that persistence is
	// what keeps the signal path continuous across buffer boundaries.
	State any

	// SampleRate in Hz, fixed for the instance lifetime.
	SampleRate int
	// BufferSize is the advisory per-call sample count the host
	// announced at Init.  It is a hint, not enforced per call.
	BufferSize int
	// Oversample is the number of internal sub-steps per output
	// sample, always >= 1.
	Oversample int
	// Timestep is 1 / (SampleRate * Oversample), for circuits that
	// integrate in continuous time.
	Timestep float64

	// Params is the instance's control store.
	Params *Params
}

// Info describes a circuit independently of any instance.  It is
// immutable, static data: one Info per circuit implementation.
type Info struct {
	Name        string
	Description string
	NumInputs   int
	NumOutputs  int

	// RecommendedOversample and RecommendedIterations are hints for
	// hosts choosing run settings; nothing enforces them.
	RecommendedOversample int
	RecommendedIterations int
}
