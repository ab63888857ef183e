package tool

import (
	"fmt"
	"sort"
	"sync"
)

type binding struct {
	desc    Descriptor
	handler Handler
}

// Registry maps tool names to their descriptor and handler. It is populated
// once at startup and read-only afterwards.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]binding
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]binding)}
}

func (r *Registry) Register(desc Descriptor, h Handler) error {
	if desc.Name == "" {
		return fmt.Errorf("tool name is empty")
	}
	if h == nil {
		return fmt.Errorf("tool %s has no handler", desc.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[desc.Name]; exists {
		return fmt.Errorf("tool %s already registered", desc.Name)
	}
	r.tools[desc.Name] = binding{desc: desc, handler: h}
	return nil
}

func (r *Registry) lookup(name string) (binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.tools[name]
	return b, ok
}

// Descriptors returns the static metadata of every registered tool, sorted by
// name for stable discovery output.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descs := make([]Descriptor, 0, len(r.tools))
	for _, b := range r.tools {
		descs = append(descs, b.desc)
	}
	sort.Slice(descs, func(i, j int) bool { return descs[i].Name < descs[j].Name })
	return descs
}
