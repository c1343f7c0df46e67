// Package registry is the process-wide mapping from module-type-name to
// factory. Insertion and lookup are safe for concurrent use; reads are
// expected to vastly dominate writes (module types are registered once at
// process start and looked up on every plan build), so a sync.RWMutex
// guards the map rather than a plain Mutex.
package registry

import (
	"fmt"
	"sync"

	"github.com/vk/flowgrid/internal/module"
)

// Registry is the process-wide catalogue of module factories keyed by
// type-name. Entries live for the life of the process; once inserted, a
// name is never replaced.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]module.Factory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{factories: make(map[string]module.Factory)}
}

// AlreadyRegisteredError is returned by Register when type_name already has
// a factory.
type AlreadyRegisteredError struct {
	TypeName string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("registry: module type %q already registered", e.TypeName)
}

// UnknownModuleError is returned by Find when type_name has no factory.
type UnknownModuleError struct {
	TypeName string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("registry: unknown module type %q", e.TypeName)
}

// Register associates typeName with factory. It fails with
// *AlreadyRegisteredError on a duplicate name.
func (r *Registry) Register(typeName string, factory module.Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[typeName]; exists {
		return &AlreadyRegisteredError{TypeName: typeName}
	}
	r.factories[typeName] = factory
	return nil
}

// MustRegister is Register, panicking on failure. Intended for package-init
// style registration in example modules, mirroring the teacher's
// panic-on-duplicate-registration idiom for programmer errors that can only
// happen from a bug in the binary's own wiring.
func (r *Registry) MustRegister(typeName string, factory module.Factory) {
	if err := r.Register(typeName, factory); err != nil {
		panic(err)
	}
}

// Find looks up the factory for typeName. It fails with *UnknownModuleError
// if absent.
func (r *Registry) Find(typeName string) (module.Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[typeName]
	if !ok {
		return nil, &UnknownModuleError{TypeName: typeName}
	}
	return factory, nil
}

// All returns a snapshot of the registered (name -> factory) mapping. The
// returned map is a copy; mutating it has no effect on the registry.
func (r *Registry) All() map[string]module.Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]module.Factory, len(r.factories))
	for k, v := range r.factories {
		out[k] = v
	}
	return out
}
