package dtype

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures that propagate from an external collaborator
// rather than from a named lookup or an out-of-range cursor. Callers use
// errors.Is against these; KeyError, IndexError, InvalidError and TypeError
// below are matched with errors.As instead, since they carry structured
// detail a caller may want to inspect.
var (
	// ErrIO marks a failure reported by the columnar backend or the
	// underlying file system (read, open, malformed file). The core never
	// retries it.
	ErrIO = errors.New("graphar: backend io error")

	// ErrYaml marks a metadata file that could not be parsed as YAML.
	ErrYaml = errors.New("graphar: yaml decode error")

	// ErrParse marks a metadata value (an InfoVersion string, a data type
	// name) that was syntactically invalid.
	ErrParse = errors.New("graphar: parse error")
)

// KeyError reports that a requested label, edge triple, property, or
// property group is not declared in the metadata a reader was constructed
// from, reported by the reader's constructor. Column lookups by name (a
// typed iterator accessor, or an adjacency chunk missing its id columns)
// also report a missing column as KeyError.
type KeyError struct {
	Kind string // "vertex label", "edge triple", "property", "property group", ...
	Key  string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("graphar: %s %q not found", e.Kind, e.Key)
}

// NewKeyError builds a KeyError for the given entity kind and identifier.
func NewKeyError(kind, key string) error {
	return &KeyError{Kind: kind, Key: key}
}

// IndexError reports a cursor operation that moved, or was asked to move,
// past the end of its valid range. next_chunk signals end-of-stream this
// way; it is a first-class terminal condition, not an exceptional one.
type IndexError struct {
	Op    string
	Value int64
	Limit int64 // exclusive upper bound, -1 if not meaningful
}

func (e *IndexError) Error() string {
	if e.Limit >= 0 {
		return fmt.Sprintf("graphar: %s: index %d out of range [0, %d)", e.Op, e.Value, e.Limit)
	}
	return fmt.Sprintf("graphar: %s: index %d out of range", e.Op, e.Value)
}

// NewIndexError builds an IndexError with an exclusive upper bound.
func NewIndexError(op string, value, limit int64) error {
	return &IndexError{Op: op, Value: value, Limit: limit}
}

// InvalidError reports an operation that is well-formed but illegal for the
// reader's current adjacency layout or pushdown shape (e.g. seek_src on a
// by-destination reader, or a projection naming a column the selected
// property group does not have).
type InvalidError struct {
	Op     string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("graphar: %s: %s", e.Op, e.Reason)
}

// NewInvalidError builds an InvalidError.
func NewInvalidError(op, reason string) error {
	return &InvalidError{Op: op, Reason: reason}
}

// TypeError reports a property type mismatch discovered by a typed
// collection accessor (Property[T]), by a reader decoding a column whose
// Arrow type is not the one it expects, or by a pushdown comparison on a
// non-numeric operand.
type TypeError struct {
	Property string
	Want     string
	Got      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("graphar: property %q: want %s, got %s", e.Property, e.Want, e.Got)
}

// NewTypeError builds a TypeError.
func NewTypeError(property, want, got string) error {
	return &TypeError{Property: property, Want: want, Got: got}
}

// WrapIO wraps a backend or file system failure so callers can recognize it
// with errors.Is(err, graphar.ErrIO) while keeping the underlying cause.
func WrapIO(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("graphar: %s: %w: %v", op, ErrIO, cause)
}

// WrapYaml wraps a YAML decode failure.
func WrapYaml(path string, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("graphar: decoding %s: %w: %v", path, ErrYaml, cause)
}

// WrapParse wraps a metadata value parse failure.
func WrapParse(what, value string, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("graphar: parsing %s %q: %w: %v", what, value, ErrParse, cause)
}
