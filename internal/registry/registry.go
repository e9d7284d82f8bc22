// Package registry maps operation names to the functions that implement them.
package registry

import (
	"fmt"

	"github.com/san-kum/opcalc/internal/ops"
)

const (
	Add      = "add"
	Subtract = "subtract"
	Multiply = "multiply"
	Power    = "power"
	Divide   = "divide"
	Sin      = "sin"
	Cos      = "cos"
	Tan      = "tan"
)

// Entry is one named operation.
type Entry struct {
	Name string
	Op   ops.Operation
}

// Registry is an ordered, read-only mapping from operation name to function.
// It has no mutators, so a *Registry can be shared across goroutines.
type Registry struct {
	names []string
	ops   map[string]ops.Operation
}

// New builds a registry from entries, keeping their order. An empty name, a
// nil function or a repeated name panics.
func New(entries ...Entry) *Registry {
	r := &Registry{
		names: make([]string, 0, len(entries)),
		ops:   make(map[string]ops.Operation, len(entries)),
	}

	for _, e := range entries {
		if e.Name == "" {
			panic("registry: empty operation name")
		}
		if e.Op == nil {
			panic(fmt.Sprintf("registry: nil operation %q", e.Name))
		}
		if _, dup := r.ops[e.Name]; dup {
			panic(fmt.Sprintf("registry: duplicate operation %q", e.Name))
		}
		r.names = append(r.names, e.Name)
		r.ops[e.Name] = e.Op
	}

	return r
}

// Basic snapshots the five arithmetic operations of p.
func Basic(p ops.BasicOperations) *Registry {
	return New(basicEntries(p)...)
}

// Scientific snapshots the five arithmetic operations of p followed by
// sin, cos and tan.
func Scientific(p ops.ScientificOperations) *Registry {
	entries := basicEntries(p)
	entries = append(entries,
		Entry{Sin, ops.Unary(p.Sin).Operation()},
		Entry{Cos, ops.Unary(p.Cos).Operation()},
		Entry{Tan, ops.Unary(p.Tan).Operation()},
	)
	return New(entries...)
}

func basicEntries(p ops.BasicOperations) []Entry {
	return []Entry{
		{Add, p.Add},
		{Subtract, p.Subtract},
		{Multiply, p.Multiply},
		{Power, p.Power},
		{Divide, p.Divide},
	}
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (ops.Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.ops[name]
	return ok
}

// Names returns the operation names in registration order. The slice is a
// copy.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	return len(r.names)
}
