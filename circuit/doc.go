// SPDX-License-Identifier: EPL-2.0

// Package circuit defines the contract between audio circuit
// implementations and hosts.
//
// A circuit is a pluggable real-time effect.  It publishes a Module, a
// table of capabilities a host drives an instance through:
//
//	mod := tube.Module()
//	if err := mod.Validate(); err != nil {
//	    // a mandatory capability is missing
//	}
//	ctx := mod.Init(48000, 256, 8)
//	mod.Process(ctx, input, output, numSamples, numChannels)
//	mod.Cleanup(ctx)
//
// Init, Process and Cleanup are mandatory; SetParameter, GetParameter,
// NumParameters, ParameterName and Info are optional capabilities and
// may be nil.  A host must check Validate once before use and nil-check
// the optional entries before calling them.
//
// # Lifecycle
//
// Init creates a Context holding the instance's simulation state and
// its Params store.  Process may be called any number of times; the
// state in Context.State persists between calls, so a signal split
// across several buffers produces exactly the same output as the same
// signal in one buffer.  Cleanup releases the instance and must be
// called exactly once; the Context is invalid afterwards.
//
// # Parameters
//
// Controls are normalized values in [0.0, 1.0] addressed by stable
// names.  The mapping from a normalized value to an engineering
// quantity (gain range, threshold and so on) belongs to the circuit,
// not to the host.  Parameter access never fails: unknown names are
// ignored on write and read as 0.0, out-of-range values are clamped,
// out-of-range indices resolve to empty results.
//
// # Concurrency
//
// One instance is single-threaded by contract.  Callers must serialize
// every operation on a Context; the package performs no locking on the
// processing path.  The Registry, a setup-time surface, is safe for
// concurrent use.
package circuit
