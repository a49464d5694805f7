// SPDX-License-Identifier: EPL-2.0

package circuit

import "sync"

// Registry maps circuit names to modules.  It is the binding seam a
// host uses instead of dynamic library loading: implementations
// register themselves by name at setup time and the host looks its
// circuit up when a run starts.
type Registry struct {
	circuits map[string]*Module

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		circuits: make(map[string]*Module),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, m *Module) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.circuits[name] = m
}

func (r *Registry) Get(name string) (*Module, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	m, ok := r.circuits[name]
	return m, ok
}

// Names returns the registered circuit names in no particular order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.circuits))
	for name := range r.circuits {
		names = append(names, name)
	}
	return names
}
