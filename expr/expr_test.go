package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingCompiler is the fake backend compiler referenced by spec §9:
// it records which Compile* calls it received instead of producing a real
// native predicate.
type recordingCompiler struct {
	calls []string
}

func (c *recordingCompiler) CompileAnd(left, right any) (any, error) {
	c.calls = append(c.calls, "and")
	return "and", nil
}

func (c *recordingCompiler) CompileEqual(property string, literal any) (any, error) {
	c.calls = append(c.calls, "eq:"+property)
	return "eq", nil
}

func (c *recordingCompiler) CompileLessThan(property string, literal any) (any, error) {
	c.calls = append(c.calls, "lt:"+property)
	return "lt", nil
}

func TestAndForwardsBothChildrenToSameCompiler(t *testing.T) {
	e := &And{
		Left:  &Equal{Property: "gender", Value: &Literal{Value: "female"}},
		Right: &LessThan{Property: "age", Value: &Literal{Value: int64(30)}},
	}
	c := &recordingCompiler{}
	_, err := e.Compile(c)
	require.NoError(t, err)
	require.Equal(t, []string{"eq:gender", "lt:age", "and"}, c.calls)
}

func TestAllPropertiesDedupesInFirstSeenOrder(t *testing.T) {
	e := &And{
		Left:  &Equal{Property: "gender", Value: &Literal{Value: "female"}},
		Right: &Equal{Property: "gender", Value: &PropertyRef{Name: "lastName"}},
	}
	require.Equal(t, []string{"gender", "lastName"}, AllProperties(e))
}

func TestAllPropertiesOfNilExpressionIsNil(t *testing.T) {
	require.Nil(t, AllProperties(nil))
}

func TestLiteralAndPropertyRefCompileWithoutTouchingCompiler(t *testing.T) {
	c := &recordingCompiler{}
	v, err := (&Literal{Value: int64(42)}).Compile(c)
	require.NoError(t, err)
	require.Equal(t, int64(42), v)
	require.Empty(t, c.calls)

	v, err = (&PropertyRef{Name: "id"}).Compile(c)
	require.NoError(t, err)
	require.Equal(t, "id", v)
}
