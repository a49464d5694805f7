// SPDX-License-Identifier: EPL-2.0

package circuit

// ParamDef declares one named control of a circuit together with its
// default normalized value.
type ParamDef struct {
	Name    string
	Default float64
}

// Params is a fixed, ordered store of normalized control values.
// Names and indices are decided at construction time and stay stable
// for the lifetime of the owning instance.  All values live in
// [0.0, 1.0]; out-of-range writes are clamped, never rejected.
type Params struct {
	names  []string
	values []float64
}

// NewParams builds a parameter store from the given definitions.
// Defaults outside [0, 1] are clamped.
func NewParams(defs []ParamDef) *Params {
	p := &Params{
		names:  make([]string, len(defs)),
		values: make([]float64, len(defs)),
	}
	for i, def := range defs {
		p.names[i] = def.Name
		p.values[i] = clamp01(def.Default)
	}
	return p
}

// Set stores value under name, clamped into [0, 1].
// An unknown name is a no-op.
func (p *Params) Set(name string, value float64) {
	for i, n := range p.names {
		if n == name {
			p.values[i] = clamp01(value)
			return
		}
	}
}

// Get returns the stored value for name, or 0.0 for an unknown name.
func (p *Params) Get(name string) float64 {
	for i, n := range p.names {
		if n == name {
			return p.values[i]
		}
	}
	return 0.0
}

// Len returns the number of parameters.
func (p *Params) Len() int { return len(p.values) }

// Name returns the parameter name at index, or "" when index is out of
// range.
func (p *Params) Name(index int) string {
	if index < 0 || index >= len(p.names) {
		return ""
	}
	return p.names[index]
}

// At returns the value at index, or 0.0 when index is out of range.
// Engines read their controls by position through this.
func (p *Params) At(index int) float64 {
	if index < 0 || index >= len(p.values) {
		return 0.0
	}
	return p.values[index]
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
