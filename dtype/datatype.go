package dtype

import "fmt"

// Kind is the tag of a canonical DataType.
type Kind uint8

// Scalar and composite kinds a DataType can carry. UserDefined is the
// escape hatch for a backend type this module does not model.
const (
	Bool Kind = iota
	Int32
	Int64
	Float32
	Float64
	String
	List
	UserDefined
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float"
	case Float64:
		return "double"
	case String:
		return "string"
	case List:
		return "list"
	case UserDefined:
		return "user_defined"
	default:
		return "unknown"
	}
}

// DataType is GraphAr's canonical scalar/list type, independent of any
// columnar backend. Non-parametric scalars are identity-preserving
// singletons (see BoolType, Int32Type, ...); list and user-defined values
// are constructed per use and compared structurally.
type DataType struct {
	kind Kind
	elem *DataType // non-nil only for List
	name string     // non-empty only for UserDefined
}

// Canonical singletons for the six non-parametric scalar kinds. Two
// DataType values obtained this way always compare equal and, for scalars,
// are interchangeable by identity — TYPE_FACTORY in the original C++ source.
var (
	BoolType    = &DataType{kind: Bool}
	Int32Type   = &DataType{kind: Int32}
	Int64Type   = &DataType{kind: Int64}
	Float32Type = &DataType{kind: Float32}
	Float64Type = &DataType{kind: Float64}
	StringType  = &DataType{kind: String}
)

// ListType constructs a list<elem> DataType. Lists are not interned: two
// ListType(Int64Type) calls return distinct but structurally equal values.
func ListType(elem *DataType) *DataType {
	return &DataType{kind: List, elem: elem}
}

// UserDefinedType constructs an opaque named type the model does not
// understand the internals of. It has no backend mapping.
func UserDefinedType(name string) *DataType {
	return &DataType{kind: UserDefined, name: name}
}

// Kind returns the type's tag.
func (dt *DataType) Kind() Kind { return dt.kind }

// Element returns the element type of a List DataType, or nil otherwise.
func (dt *DataType) Element() *DataType {
	if dt.kind != List {
		return nil
	}
	return dt.elem
}

// Name returns the stored name of a UserDefined DataType, or "" otherwise.
func (dt *DataType) Name() string {
	if dt.kind != UserDefined {
		return ""
	}
	return dt.name
}

// Equal reports structural equality: scalars compare by kind, lists compare
// element type recursively, user-defined types compare by name.
func (dt *DataType) Equal(other *DataType) bool {
	if dt == other {
		return true
	}
	if dt == nil || other == nil || dt.kind != other.kind {
		return false
	}
	switch dt.kind {
	case List:
		return dt.elem.Equal(other.elem)
	case UserDefined:
		return dt.name == other.name
	default:
		return true
	}
}

func (dt *DataType) String() string {
	s, err := ToTypeName(dt)
	if err != nil {
		return fmt.Sprintf("<invalid data type: %v>", err)
	}
	return s
}
