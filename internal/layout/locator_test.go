package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkCount(t *testing.T) {
	cases := []struct {
		count, size, want int64
	}{
		{903, 100, 10},
		{100, 100, 1},
		{101, 100, 2},
		{0, 100, 0},
		{5, 2, 3},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ChunkCount(c.count, c.size))
	}
}

func TestChunkIndexAndOffset(t *testing.T) {
	require.Equal(t, int64(9), ChunkIndex(900, 100))
	require.Equal(t, int64(0), ChunkOffset(900, 100))
	require.Equal(t, int64(10), ChunkIndex(1024, 100))
	require.Equal(t, int64(24), ChunkOffset(1024, 100))
}

func TestVertexChunkFile(t *testing.T) {
	got := VertexChunkFile("ldbc_sample", "person", "firstName_lastName_gender", 3)
	require.Equal(t, "ldbc_sample/person/firstName_lastName_gender/chunk3", got)
}

func TestAdjListChunkFile(t *testing.T) {
	got := AdjListChunkFile("ldbc_sample", "person_knows_person", "ordered_by_source", 2, 5)
	require.Equal(t, "ldbc_sample/person_knows_person/ordered_by_source/adj_list/part2/chunk5", got)
}

func TestOffsetChunkFile(t *testing.T) {
	got := OffsetChunkFile("ldbc_sample", "person_knows_person", "ordered_by_source", 2)
	require.Equal(t, "ldbc_sample/person_knows_person/ordered_by_source/offset/chunk2", got)
}

func TestEdgePropertyChunkFile(t *testing.T) {
	got := EdgePropertyChunkFile("ldbc_sample", "person_knows_person", "ordered_by_source", "creationDate", 2, 5)
	require.Equal(t, "ldbc_sample/person_knows_person/ordered_by_source/creationDate/part2/chunk5", got)
}
