package graphar

import "github.com/Thespica/GraphAr/dtype"

// The canonical data type model (C1) and the error kinds (spec §7) live in
// package dtype so that package info can depend on them without importing
// this package back. Everything below re-exports them at the module root,
// which is where every reader constructor and every caller-facing error
// check (var ke *graphar.KeyError; errors.As(err, &ke)) actually lives.

// DataType, Kind and FileFormat are the canonical scalar/list type system
// and the supported chunk file format tags.
type (
	DataType   = dtype.DataType
	Kind       = dtype.Kind
	FileFormat = dtype.FileFormat
)

// Kind tags.
const (
	Bool        = dtype.Bool
	Int32       = dtype.Int32
	Int64       = dtype.Int64
	Float32     = dtype.Float32
	Float64     = dtype.Float64
	String      = dtype.String
	List        = dtype.List
	UserDefined = dtype.UserDefined
)

// FileFormat tags.
const (
	Parquet = dtype.Parquet
	ORC     = dtype.ORC
	CSV     = dtype.CSV
)

// Canonical scalar singletons.
var (
	BoolType    = dtype.BoolType
	Int32Type   = dtype.Int32Type
	Int64Type   = dtype.Int64Type
	Float32Type = dtype.Float32Type
	Float64Type = dtype.Float64Type
	StringType  = dtype.StringType
)

// ListType, UserDefinedType, ToTypeName, FromTypeName, ToArrow and FromArrow
// are the C1 operations from spec §4.1.
var (
	ListType       = dtype.ListType
	UserDefinedType = dtype.UserDefinedType
	ToTypeName     = dtype.ToTypeName
	FromTypeName   = dtype.FromTypeName
	ToArrow        = dtype.ToArrow
	FromArrow      = dtype.FromArrow
)

// Error kinds (spec §7).
type (
	KeyError     = dtype.KeyError
	IndexError   = dtype.IndexError
	InvalidError = dtype.InvalidError
	TypeError    = dtype.TypeError
)

// Error sentinels and constructors (spec §7).
var (
	ErrIO    = dtype.ErrIO
	ErrYaml  = dtype.ErrYaml
	ErrParse = dtype.ErrParse

	NewKeyError     = dtype.NewKeyError
	NewIndexError   = dtype.NewIndexError
	NewInvalidError = dtype.NewInvalidError
	NewTypeError    = dtype.NewTypeError
	WrapIO          = dtype.WrapIO
	WrapYaml        = dtype.WrapYaml
	WrapParse       = dtype.WrapParse
)
