package os

import (
	"errors"
	"fmt"
	"sync"
)

// Registry maps variant names to fully resolved records. It is built
// once from an ordered list of definitions and never mutated
// afterwards, so any number of readers can query it concurrently
// without locking.
type Registry struct {
	byName  map[string]*Variant
	ordered []*Variant
}

// NewRegistry builds a registry from definitions, which must list
// parents before children. The first bad definition aborts the whole
// build: a partially built inheritance table is unsafe to query, since
// a later child may reference a record that failed to build.
func NewRegistry(definitions []Definition) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Variant, len(definitions))}
	for _, def := range definitions {
		if err := r.register(def); err != nil {
			return nil, fmt.Errorf("os variant %q: %w", def.Name, err)
		}
	}
	return r, nil
}

func (r *Registry) register(def Definition) error {
	if _, exists := r.byName[def.Name]; exists {
		return errors.New("already registered")
	}

	var parent *Variant
	if def.IsType {
		if def.Parent != "" {
			return errors.New("OS types must not declare a parent")
		}
	} else {
		if def.Parent == "" {
			return errors.New("OS variants must declare a parent")
		}
		p, ok := r.byName[def.Parent]
		if !ok {
			return fmt.Errorf("parent %q is not registered", def.Parent)
		}
		parent = p
	}

	v, err := newVariant(def, parent)
	if err != nil {
		return err
	}
	r.byName[v.Name] = v
	r.ordered = append(r.ordered, v)
	return nil
}

// Lookup returns the variant registered under name, if any.
func (r *Registry) Lookup(name string) (*Variant, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// Len returns the number of registered records, types included.
func (r *Registry) Len() int {
	return len(r.ordered)
}

var (
	builtinOnce     sync.Once
	builtinRegistry *Registry
)

// Builtin returns the registry holding the builtin guest OS catalog.
// It is built on first use; the catalog is static, so a build failure
// is a programming error and panics.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		var err error
		builtinRegistry, err = NewRegistry(builtinDefinitions())
		if err != nil {
			panic(fmt.Sprintf("building builtin guest OS catalog: %v", err))
		}
	})
	return builtinRegistry
}

func builtinDefinitions() []Definition {
	var defs []Definition
	defs = append(defs, linuxDefinitions...)
	defs = append(defs, windowsDefinitions...)
	defs = append(defs, solarisDefinitions...)
	defs = append(defs, unixDefinitions...)
	defs = append(defs, otherDefinitions...)
	return defs
}
