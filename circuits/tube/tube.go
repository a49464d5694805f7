// SPDX-License-Identifier: EPL-2.0

package tube

import "github.com/ik5/circuithost/circuit"

const (
	circuitName = "Simple Tube Distortion"
	circuitDesc = "Basic tube emulation for testing"
)

// Control indices, fixed for the lifetime of every instance.
const (
	paramGain = iota
	paramDistortion
	paramVolume
)

var paramDefs = []circuit.ParamDef{
	{Name: "Gain", Default: 0.5},
	{Name: "Distortion", Default: 0.5},
	{Name: "Volume", Default: 0.7},
}

var info = circuit.Info{
	Name:                  circuitName,
	Description:           circuitDesc,
	NumInputs:             1,
	NumOutputs:            1,
	RecommendedOversample: 8,
	RecommendedIterations: 8,
}

// state is the simulation memory of one instance.
type state struct {
	gain       float64
	threshold  float64
	makeupGain float64
	// lastOutput feeds the one-pole smoothing blend and carries over
	// into the next Process call, keeping the signal path continuous
	// across buffer boundaries.
	lastOutput float64
	sampleRate float64
}

// Module returns the capability table of the tube circuit.  Every
// optional capability is provided.
func Module() *circuit.Module {
	return &circuit.Module{
		Init:          initCircuit,
		Process:       process,
		Cleanup:       cleanup,
		SetParameter:  setParameter,
		GetParameter:  getParameter,
		NumParameters: numParameters,
		ParameterName: parameterName,
		Info:          getInfo,
	}
}

func initCircuit(sampleRate, bufferSize, oversample int) *circuit.Context {
	if sampleRate <= 0 || oversample < 1 {
		return nil
	}

	return &circuit.Context{
		State: &state{
			gain:       1.0,
			threshold:  0.5,
			makeupGain: 0.7,
			lastOutput: 0.0,
			sampleRate: float64(sampleRate),
		},
		SampleRate: sampleRate,
		BufferSize: bufferSize,
		Oversample: oversample,
		Timestep:   1.0 / (float64(sampleRate) * float64(oversample)),
		Params:     circuit.NewParams(paramDefs),
	}
}

// saturate applies the asymmetric tube nonlinearity.  Below |threshold|
// the transfer is linear; above it the curve compresses with a soft
// knee that is continuous at x == +-threshold.  threshold must be
// strictly positive, which the remap in process guarantees.
func saturate(x, threshold float64) float64 {
	if x > threshold {
		return threshold + (x-threshold)/(1.0+(x-threshold)/threshold)
	}
	if x < -threshold {
		return -threshold + (x+threshold)/(1.0-(x+threshold)/threshold)
	}
	return x
}

func process(ctx *circuit.Context, input, output []float32, numSamples, numChannels int) {
	if ctx == nil || ctx.State == nil {
		return
	}

	st := ctx.State.(*state)

	// Remap normalized controls to engineering ranges once per call;
	// controls change between buffers, never mid-buffer.
	st.gain = 0.5 + ctx.Params.At(paramGain)*9.5            // 0.5 to 10.0
	st.threshold = 0.1 + ctx.Params.At(paramDistortion)*0.9 // 0.1 to 1.0
	st.makeupGain = ctx.Params.At(paramVolume)              // 0.0 to 1.0

	oversample := ctx.Oversample

	for i := 0; i < numSamples; i++ {
		// The first channel is the mono source; further input
		// channels are ignored.
		sample := float64(input[i*numChannels])

		var processed float64
		for os := 0; os < oversample; os++ {
			amplified := sample * st.gain
			distorted := saturate(amplified, st.threshold)
			processed = distorted * st.makeupGain

			// One-pole smoothing blend doubling as a crude
			// anti-aliasing filter.
			processed = 0.5*processed + 0.5*st.lastOutput
			st.lastOutput = processed
		}

		// Normalize accumulated energy over the sub-steps.  This is
		// an approximation, not a true interpolating oversampler: the
		// loop re-filters the same input sample oversample times.
		// The behavior is kept as-is for compatibility with existing
		// renders.
		processed /= float64(oversample)

		out := float32(processed)
		for ch := 0; ch < numChannels; ch++ {
			output[i*numChannels+ch] = out
		}
	}
}

func setParameter(ctx *circuit.Context, name string, value float64) {
	if ctx == nil || ctx.Params == nil {
		return
	}
	ctx.Params.Set(name, value)
}

func getParameter(ctx *circuit.Context, name string) float64 {
	if ctx == nil || ctx.Params == nil {
		return 0.0
	}
	return ctx.Params.Get(name)
}

func numParameters(ctx *circuit.Context) int {
	return len(paramDefs)
}

func parameterName(ctx *circuit.Context, index int) string {
	if ctx == nil || ctx.Params == nil {
		return ""
	}
	return ctx.Params.Name(index)
}

func cleanup(ctx *circuit.Context) {
	if ctx == nil {
		return
	}
	ctx.State = nil
	ctx.Params = nil
}

func getInfo() *circuit.Info {
	return &info
}
