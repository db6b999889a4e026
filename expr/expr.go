// Package expr is the opaque filter expression AST the core forwards to a
// columnar backend for predicate pushdown. The core never inspects a node
// beyond calling Compile; only the backend understands the concrete shape.
package expr

// Expression is a pushdown predicate node. The core holds it behind this
// interface and never branches on its concrete type; only a Backend's
// Compiler does, via Compile.
type Expression interface {
	// Compile lets a Compiler translate this node into its native
	// predicate representation. Implementations of Expression call back
	// into c with their own fields so a Compiler never needs a type switch
	// over every Expression implementation defined outside its package.
	Compile(c Compiler) (any, error)

	// Properties returns the set of property names this expression (and
	// its children) reference, used by readers to validate a pushdown
	// filter against the property group it was opened on before ever
	// touching the backend.
	Properties() []string
}

// Compiler is implemented by a columnar backend. It has one method per
// expression shape; And(left.Compile(c), right.Compile(c)) is forwarded to
// the same Compiler, not done by the core.
type Compiler interface {
	CompileAnd(left, right any) (any, error)
	CompileEqual(property string, literal any) (any, error)
	CompileLessThan(property string, literal any) (any, error)
}

// And conjoins two predicates.
type And struct {
	Left, Right Expression
}

func (e *And) Compile(c Compiler) (any, error) {
	l, err := e.Left.Compile(c)
	if err != nil {
		return nil, err
	}
	r, err := e.Right.Compile(c)
	if err != nil {
		return nil, err
	}
	return c.CompileAnd(l, r)
}

func (e *And) Properties() []string {
	return append(append([]string{}, e.Left.Properties()...), e.Right.Properties()...)
}

// Equal asserts that a named property equals a literal value.
type Equal struct {
	Property string
	Value    Expression
}

func (e *Equal) Compile(c Compiler) (any, error) {
	v, err := e.Value.Compile(c)
	if err != nil {
		return nil, err
	}
	return c.CompileEqual(e.Property, v)
}

func (e *Equal) Properties() []string {
	return append([]string{e.Property}, e.Value.Properties()...)
}

// LessThan asserts that a named property is less than a literal value.
type LessThan struct {
	Property string
	Value    Expression
}

func (e *LessThan) Compile(c Compiler) (any, error) {
	v, err := e.Value.Compile(c)
	if err != nil {
		return nil, err
	}
	return c.CompileLessThan(e.Property, v)
}

func (e *LessThan) Properties() []string {
	return append([]string{e.Property}, e.Value.Properties()...)
}

// Literal is a constant value operand (string, int64, float64, bool).
type Literal struct {
	Value any
}

func (e *Literal) Compile(Compiler) (any, error) { return e.Value, nil }

func (e *Literal) Properties() []string { return nil }

// PropertyRef names a property as an operand, used where an expression
// compares two properties rather than a property against a literal.
type PropertyRef struct {
	Name string
}

func (e *PropertyRef) Compile(Compiler) (any, error) { return e.Name, nil }

func (e *PropertyRef) Properties() []string { return []string{e.Name} }

// AllProperties flattens every property name referenced anywhere in expr,
// deduplicated, in first-seen order. A nil expr returns nil.
func AllProperties(e Expression) []string {
	if e == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, name := range e.Properties() {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
