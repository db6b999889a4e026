package dtype

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/require"
)

func TestScalarSingletonsAreIdentical(t *testing.T) {
	require.Same(t, BoolType, BoolType)
	require.True(t, Int64Type.Equal(Int64Type))
	require.False(t, BoolType.Equal(Int64Type))
}

func TestListTypeStructuralEquality(t *testing.T) {
	a := ListType(Int64Type)
	b := ListType(Int64Type)
	require.NotSame(t, a, b)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(ListType(StringType)))
}

func TestUserDefinedTypeEqualityByName(t *testing.T) {
	a := UserDefinedType("geometry")
	b := UserDefinedType("geometry")
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(UserDefinedType("other")))
}

func TestTypeNameRoundTrip(t *testing.T) {
	cases := []*DataType{BoolType, Int32Type, Int64Type, Float32Type, Float64Type, StringType, ListType(Int64Type), ListType(ListType(StringType))}
	for _, dt := range cases {
		name, err := ToTypeName(dt)
		require.NoError(t, err)
		got, err := FromTypeName(name)
		require.NoError(t, err)
		require.True(t, dt.Equal(got), "round trip of %s", name)
	}
}

func TestFromTypeNameRejectsUnknown(t *testing.T) {
	_, err := FromTypeName("decimal128")
	require.Error(t, err)
}

func TestArrowRoundTrip(t *testing.T) {
	cases := []*DataType{BoolType, Int32Type, Int64Type, Float32Type, Float64Type, StringType, ListType(Float64Type)}
	for _, dt := range cases {
		bt, err := ToArrow(dt)
		require.NoError(t, err)
		back, err := FromArrow(bt)
		require.NoError(t, err)
		require.True(t, dt.Equal(back))
	}
}

func TestFromArrowUnifiesStringVariants(t *testing.T) {
	a, err := FromArrow(arrow.BinaryTypes.String)
	require.NoError(t, err)
	b, err := FromArrow(arrow.BinaryTypes.LargeString)
	require.NoError(t, err)
	require.True(t, a.Equal(StringType))
	require.True(t, b.Equal(StringType))
}

func TestToArrowRejectsUserDefined(t *testing.T) {
	_, err := ToArrow(UserDefinedType("geometry"))
	require.Error(t, err)
	var ie *InvalidError
	require.ErrorAs(t, err, &ie)
}
