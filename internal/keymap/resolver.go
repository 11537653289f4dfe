package keymap

import "strings"

// Resolver maps menu input to actions.
type Resolver struct {
	bindings map[string]Action // key -> action
}

// NewResolver creates a resolver from bindings. A key bound twice
// resolves to the later binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{bindings: make(map[string]Action)}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
	}
	return r
}

// Resolve returns the action for an input line, or empty string if not bound.
// Surrounding whitespace is ignored.
func (r *Resolver) Resolve(input string) Action {
	return r.bindings[strings.TrimSpace(input)]
}
