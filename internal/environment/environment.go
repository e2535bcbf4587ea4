// Package environment implements the single flat name→binding store of
// §4.4. GIANT has no functions or blocks, so — unlike the teacher's
// interp.Environment, which chains enclosed scopes for nested lexical
// scoping — there is exactly one scope for the lifetime of an
// interpreter; a when-clause body reads and writes it directly (§9,
// "When-clause dispatch without a block scope").
package environment

import "github.com/FFFF-0000h/GIANT-Language/internal/value"

// Environment is a case-sensitive mapping from name to binding. Names
// share one namespace regardless of kind (scalar, anchor, relational);
// re-binding a name silently overwrites whatever it held before.
type Environment struct {
	store map[string]value.Value
	order []string // insertion order, for iterating anchors
}

// New creates an empty environment.
func New() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// Bind creates or overwrites the binding for name.
func (e *Environment) Bind(name string, v value.Value) {
	if _, exists := e.store[name]; !exists {
		e.order = append(e.order, name)
	}
	e.store[name] = v
}

// Lookup returns the binding for name, if any.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	v, ok := e.store[name]
	return v, ok
}

// LookupAnchor returns the binding for name if it exists and is an
// anchor.
func (e *Environment) LookupAnchor(name string) (*value.Anchor, bool) {
	v, ok := e.store[name]
	if !ok {
		return nil, false
	}
	a, ok := v.(*value.Anchor)
	return a, ok
}

// Anchors returns every anchor binding currently in scope, in the order
// each name was first bound (re-binding a name keeps its original
// position; only its value changes).
func (e *Environment) Anchors() []*value.Anchor {
	var anchors []*value.Anchor
	for _, name := range e.order {
		if a, ok := e.store[name].(*value.Anchor); ok {
			anchors = append(anchors, a)
		}
	}
	return anchors
}
