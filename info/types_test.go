package info

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAdjListType(t *testing.T) {
	cases := []struct {
		ordered   bool
		alignedBy string
		want      AdjListType
	}{
		{true, "src", OrderedBySource},
		{true, "dst", OrderedByDest},
		{false, "src", UnorderedBySource},
		{false, "dst", UnorderedByDest},
	}
	for _, c := range cases {
		got, err := ParseAdjListType(c.ordered, c.alignedBy)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}

	_, err := ParseAdjListType(true, "sideways")
	require.Error(t, err)
}

func TestAdjListTypePredicates(t *testing.T) {
	require.True(t, OrderedBySource.Ordered())
	require.True(t, OrderedBySource.BySource())
	require.True(t, UnorderedByDest.Ordered() == false)
	require.False(t, UnorderedByDest.BySource())
}

func TestGraphInfoLookupsFailWithKeyError(t *testing.T) {
	gi := NewGraphInfo("ldbc_sample", "", "gar/v1")
	_, err := gi.VertexInfo("person")
	require.Error(t, err)
	_, err = gi.EdgeInfo("person", "knows", "person")
	require.Error(t, err)

	vi := &VertexInfo{Label: "person", ChunkSize: 100, vertexCount: -1}
	gi.AddVertexInfo(vi)
	got, err := gi.VertexInfo("person")
	require.NoError(t, err)
	require.Same(t, vi, got)
}
