package dtype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapIOIsDetectableViaErrorsIs(t *testing.T) {
	cause := errors.New("disk on fire")
	err := WrapIO("reading chunk0", cause)
	require.ErrorIs(t, err, ErrIO)
	require.Contains(t, err.Error(), "disk on fire")
}

func TestWrapNilReturnsNil(t *testing.T) {
	require.NoError(t, WrapIO("reading chunk0", nil))
	require.NoError(t, WrapYaml("x.yml", nil))
	require.NoError(t, WrapParse("info version", "", nil))
}

func TestStructuredErrorsMatchViaErrorsAs(t *testing.T) {
	err := NewKeyError("vertex label", "person")
	var ke *KeyError
	require.ErrorAs(t, err, &ke)
	require.Equal(t, "person", ke.Key)

	err = NewIndexError("Seek", 10, 5)
	var ie *IndexError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, int64(10), ie.Value)

	err = NewInvalidError("SeekDst", "not legal for ordered_by_source")
	var ve *InvalidError
	require.ErrorAs(t, err, &ve)

	err = NewTypeError("firstName", "string", "int64")
	var te *TypeError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "firstName", te.Property)
}
