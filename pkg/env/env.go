package env

import (
	"errors"
	"fmt"
)

// NotFound is returned by Get when name has no binding in the
// environment chain.
type NotFound struct {
	Name string
}

func (e NotFound) Error() string {
	return fmt.Sprintf("binding with name '%s' does not exist", e.Name)
}

// ErrNotFound reports whether err is (or wraps) a NotFound.
func ErrNotFound(err error) bool {
	var nf NotFound

	return errors.As(err, &nf)
}

// Env implements lexical scoping over a chain of binding maps, the same
// shape as the teacher's internal/value.Env: a mutable map for the
// current scope plus a pointer to the enclosing one. Lookups walk
// outward; Set always binds in the current scope.
type Env struct {
	bindings map[string]Value
	parent   *Env
}

// New returns an empty, parentless environment — the global scope a REPL
// session starts with.
func New() *Env {
	return &Env{bindings: make(map[string]Value)}
}

// Get looks up name in e, then in each enclosing scope in turn.
func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.bindings[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}

	return nil, false
}

// MustGet is Get with the lookup failure turned into a NotFound error,
// for callers (an evaluator walking hir.VariableRef) that want a single
// error return rather than a second ok bool to check.
func (e *Env) MustGet(name string) (Value, error) {
	if val, ok := e.Get(name); ok {
		return val, nil
	}

	return nil, NotFound{Name: name}
}

// Set binds name to value in e's own scope, shadowing (but not
// mutating) any binding of the same name in an enclosing scope.
func (e *Env) Set(name string, value Value) {
	e.bindings[name] = value
}

// Extend returns a new child scope whose parent is e — used to enter a
// block (hir.Block).
func (e *Env) Extend() *Env {
	return &Env{
		bindings: make(map[string]Value),
		parent:   e,
	}
}
