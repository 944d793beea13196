/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/models"
)

// NewFunc returns a fresh zero value of a model type, ready to be decoded into.
type NewFunc func() models.Model

// Registry maps entity type names to constructors.
type Registry struct {
	mu    sync.RWMutex
	types map[string]NewFunc
}

// Default is the process-wide registry used by package-level helpers.
var Default = NewRegistry()

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]NewFunc)}
}

// RegisterType registers fn under name. Registering a name twice panics to
// prevent accidental overrides.
func (r *Registry) RegisterType(name string, fn NewFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		panic(fmt.Sprintf("type registry: type %q already registered", name))
	}
	r.types[name] = fn
}

// New returns a fresh model of the named type.
func (r *Registry) New(name string) (models.Model, error) {
	r.mu.RLock()
	fn, ok := r.types[name]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NewUnknownTypeError(name)
	}
	return fn(), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

// Types returns the registered names in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterCatalogue registers every constructor in catalogue that is not
// registered yet.
func (r *Registry) RegisterCatalogue(catalogue map[string]func() models.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, fn := range catalogue {
		if _, exists := r.types[name]; !exists {
			r.types[name] = fn
		}
	}
}

// RegisterType registers fn in the Default registry.
func RegisterType(name string, fn NewFunc) {
	Default.RegisterType(name, fn)
}

// New returns a fresh model from the Default registry.
func New(name string) (models.Model, error) {
	return Default.New(name)
}
