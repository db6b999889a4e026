package dtype

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// ToArrow maps a canonical DataType onto the Arrow type system used by every
// chunk reader's decoded table: bool->bool, int32->int32, int64->int64,
// float32->float32, float64->float64, string->large_utf8,
// list<T>->list(ToArrow(T)). UserDefined has no Arrow representation and
// fails with InvalidError.
func ToArrow(dt *DataType) (arrow.DataType, error) {
	if dt == nil {
		return nil, NewInvalidError("ToArrow", "nil data type")
	}
	switch dt.kind {
	case Bool:
		return arrow.FixedWidthTypes.Boolean, nil
	case Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case Float64:
		return arrow.PrimitiveTypes.Float64, nil
	case String:
		return arrow.BinaryTypes.LargeString, nil
	case List:
		inner, err := ToArrow(dt.elem)
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(inner), nil
	case UserDefined:
		return nil, NewInvalidError("ToArrow", fmt.Sprintf("user-defined type %q has no backend representation", dt.name))
	default:
		return nil, NewInvalidError("ToArrow", fmt.Sprintf("unrecognized data type kind %d", dt.kind))
	}
}

// FromArrow is the inverse of ToArrow. Both arrow.STRING and
// arrow.LARGE_STRING map to the canonical StringType. Any Arrow type this
// module does not model (structs, dictionaries, decimals, timestamps, ...)
// fails with InvalidError.
func FromArrow(bt arrow.DataType) (*DataType, error) {
	if bt == nil {
		return nil, NewInvalidError("FromArrow", "nil backend type")
	}
	switch bt.ID() {
	case arrow.BOOL:
		return BoolType, nil
	case arrow.INT32:
		return Int32Type, nil
	case arrow.INT64:
		return Int64Type, nil
	case arrow.FLOAT32:
		return Float32Type, nil
	case arrow.FLOAT64:
		return Float64Type, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return StringType, nil
	case arrow.LIST:
		lt, ok := bt.(*arrow.ListType)
		if !ok {
			return nil, NewInvalidError("FromArrow", fmt.Sprintf("unsupported list implementation %T", bt))
		}
		elem, err := FromArrow(lt.Elem())
		if err != nil {
			return nil, err
		}
		return ListType(elem), nil
	default:
		return nil, NewInvalidError("FromArrow", fmt.Sprintf("unsupported backend type %s", bt))
	}
}
