package dtype

import (
	"fmt"
	"strings"
)

// ToTypeName renders dt using the grammar in spec §6:
// bool|int32|int64|float|double|string|list<X>. UserDefined types render as
// their stored name. It fails only when dt is nil.
func ToTypeName(dt *DataType) (string, error) {
	if dt == nil {
		return "", NewInvalidError("ToTypeName", "nil data type")
	}
	switch dt.kind {
	case UserDefined:
		return dt.name, nil
	case List:
		inner, err := ToTypeName(dt.elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("list<%s>", inner), nil
	default:
		return dt.kind.String(), nil
	}
}

// scalarsByName maps the six scalar grammar tokens to their singleton.
var scalarsByName = map[string]*DataType{
	"bool":   BoolType,
	"int32":  Int32Type,
	"int64":  Int64Type,
	"float":  Float32Type,
	"double": Float64Type,
	"string": StringType,
}

// FromTypeName parses the grammar in spec §6. It recognizes the six scalar
// names and list<X> where X is itself one of those six names. Anything
// else, including a nested list<list<...>>, fails with InvalidError:
// FromTypeName never produces a UserDefined value.
func FromTypeName(name string) (*DataType, error) {
	if dt, ok := scalarsByName[name]; ok {
		return dt, nil
	}
	if strings.HasPrefix(name, "list<") && strings.HasSuffix(name, ">") {
		inner := name[len("list<") : len(name)-1]
		elem, ok := scalarsByName[inner]
		if !ok {
			return nil, NewInvalidError("FromTypeName", fmt.Sprintf("unsupported list element type %q in %q", inner, name))
		}
		return ListType(elem), nil
	}
	return nil, NewInvalidError("FromTypeName", fmt.Sprintf("unrecognized data type name %q", name))
}
