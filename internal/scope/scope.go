// Package scope implements PoiBoi's variable scoping (spec.md §3/§4.4):
// a linked chain of local Frames plus a single process-level Globals map.
//
// Grounded on _examples/original_source/py_src/variables.py's
// LocalVariables, split into Get/HasLocal/Declare/Set the way idiomatic Go scopes are
// usually written (e.g. a block-scoped symbol table with a parent
// pointer), instead of Python's single get_value/set_value pair.
package scope

// Frame is one level of local-variable bindings. Frames are created on
// function entry (seeded with argument bindings) and on entry to every
// nested block inside IF/ELIF/ELSE/WHILE bodies, and are released on
// block exit (spec.md §3).
//
// The same Frame type backs both back ends: the interpreter stores real
// string values in it, while the transpiler (internal/transpile) stores a
// sentinel marker per name, reusing Frame purely to track "has this name
// been declared in this lexical scope" during C++ emission.
type Frame struct {
	vars   map[string]string
	parent *Frame
}

// NewFrame creates a frame with no parent (a function's top-level frame).
func NewFrame() *Frame {
	return &Frame{vars: map[string]string{}}
}

// Child creates a new frame nested inside f, for a block's local scope.
func (f *Frame) Child() *Frame {
	return &Frame{vars: map[string]string{}, parent: f}
}

// Get walks the frame chain from innermost to outermost and returns the
// first binding found for name. The second return is false if no frame
// on the chain binds name.
func (f *Frame) Get(name string) (string, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return "", false
}

// HasLocal reports whether this exact frame (not its ancestors) binds
// name.
func (f *Frame) HasLocal(name string) bool {
	_, ok := f.vars[name]
	return ok
}

// Declare binds name to value in this exact frame, regardless of any
// existing binding (used for LOCAL declarations and parameter bindings).
func (f *Frame) Declare(name, value string) {
	f.vars[name] = value
}

// Set updates an existing binding for name wherever it lives on the
// frame chain (innermost binder wins), per spec.md §4.4. It reports
// whether an existing binding was found and updated; the assignment
// caller (internal/ast) falls back to a global assignment when Set
// returns false.
func (f *Frame) Set(name, value string) bool {
	for cur := f; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = value
			return true
		}
	}
	return false
}

// Globals is the process-level mapping consulted only when no frame on
// the local chain binds a name (spec.md §3/§4.4).
type Globals struct {
	vars map[string]string
}

// NewGlobals creates an empty global variable map.
func NewGlobals() *Globals {
	return &Globals{vars: map[string]string{}}
}

// Get returns the global binding for name, or "" if unbound — reading an
// undefined variable is never an error (spec.md §4.4/§7).
func (g *Globals) Get(name string) string {
	return g.vars[name]
}

// Set assigns a global binding.
func (g *Globals) Set(name, value string) {
	g.vars[name] = value
}

// Has reports whether name is bound globally.
func (g *Globals) Has(name string) bool {
	_, ok := g.vars[name]
	return ok
}
