package graphar

import (
	"context"
	"strconv"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/Thespica/GraphAr/dtype"
	"github.com/Thespica/GraphAr/info"
	"github.com/Thespica/GraphAr/internal/backend"
)

// buildOffsetGraph writes two ordered-by-source vertex chunks (src_chunk_size
// 100, so each offset array is the spec-fixed 101 entries: one boundary per
// vertex plus the trailing E_i) under an in-memory filesystem.
func buildOffsetGraph(t *testing.T) (info.Filesystem, *info.EdgeInfo) {
	t.Helper()
	fs := memfs.New()

	ei := &info.EdgeInfo{
		SrcLabel: "person", EdgeLabel: "knows", DstLabel: "person",
		ChunkSize: 1000, SrcChunkSize: 100, DstChunkSize: 100,
		Prefix: "person_knows_person", Version: "gar/v1",
	}
	ei.AdjLists = []info.AdjListVariant{{Type: info.OrderedBySource, Prefix: "ordered_by_source", FileType: dtype.CSV}}
	ei.SetEdgesNum(info.OrderedBySource, 0, 100)
	ei.SetEdgesNum(info.OrderedBySource, 1, 100)

	v := &ei.AdjLists[0]
	writeIntegrationFile(t, fs, ei.OffsetChunkPath("", v, 0), offsetCSV(101))
	writeIntegrationFile(t, fs, ei.OffsetChunkPath("", v, 1), offsetCSV(101))

	return fs, ei
}

func offsetCSV(n int) string {
	out := "offset\n"
	for i := 0; i < n; i++ {
		out += strconv.Itoa(i) + "\n"
	}
	return out
}

// Exercises S8: get_chunk(); next_chunk(); get_chunk() against an ordered
// variant's offset reader (C6) yields an array of length 101 twice.
func TestAdjListOffsetChunkReaderReadsAndAdvances(t *testing.T) {
	fs, ei := buildOffsetGraph(t)
	r, err := NewAdjListOffsetChunkReader(fs, backend.New(), ei, info.OrderedBySource, "")
	require.NoError(t, err)

	tbl1, err := r.GetChunk(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 101, tbl1.NumRows())
	tbl1.Release()

	require.NoError(t, r.NextChunk())

	tbl2, err := r.GetChunk(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 101, tbl2.NumRows())
	tbl2.Release()

	require.Error(t, r.NextChunk())
}

func TestAdjListOffsetChunkReaderSeekMovesByVertexChunkSize(t *testing.T) {
	fs, ei := buildOffsetGraph(t)
	r, err := NewAdjListOffsetChunkReader(fs, backend.New(), ei, info.OrderedBySource, "")
	require.NoError(t, err)

	require.NoError(t, r.Seek(150))
	tbl, err := r.GetChunk(context.Background())
	require.NoError(t, err)
	defer tbl.Release()
	require.EqualValues(t, 101, tbl.NumRows())
}

// buildKnowsGraphWithProperties extends buildKnowsGraph with an edge
// property group ("weight") so C7 (AdjListPropertyChunkReader) has chunk
// files to read in lockstep with the adjacency rows buildKnowsGraph wrote.
func buildKnowsGraphWithProperties(t *testing.T) (info.Filesystem, *info.EdgeInfo, *info.PropertyGroup) {
	t.Helper()
	fs, ei := buildKnowsGraph(t)

	pg := info.PropertyGroup{
		Prefix:   "weight",
		FileType: dtype.CSV,
		Properties: []info.Property{
			{Name: "weight", DataType: "double"},
		},
	}
	ei.AdjLists[0].PropertyGroups = []info.PropertyGroup{pg}
	v := &ei.AdjLists[0]

	writeIntegrationFile(t, fs, ei.PropertyChunkPath("", v, &v.PropertyGroups[0], 0, 0), "weight\n1.5\n2.5\n")
	writeIntegrationFile(t, fs, ei.PropertyChunkPath("", v, &v.PropertyGroups[0], 1, 0), "weight\n3.5\n")

	return fs, ei, &v.PropertyGroups[0]
}

func TestAdjListPropertyChunkReaderGetChunkMatchesAdjacencyGrid(t *testing.T) {
	fs, ei, pg := buildKnowsGraphWithProperties(t)
	r, err := NewAdjListPropertyChunkReader(fs, backend.New(), ei, info.OrderedBySource, pg, "")
	require.NoError(t, err)

	tbl, err := r.GetChunk(context.Background())
	require.NoError(t, err)
	defer tbl.Release()
	require.EqualValues(t, 2, tbl.NumRows())
}

func TestAdjListPropertyChunkReaderSeekChunkIndexSharesCursorWithEmbeddedReader(t *testing.T) {
	fs, ei, pg := buildKnowsGraphWithProperties(t)
	r, err := NewAdjListPropertyChunkReaderForTriple(fs, backend.New(), graphInfoWith(ei), "person", "knows", "person", info.OrderedBySource, pg)
	require.NoError(t, err)

	require.NoError(t, r.SeekChunkIndex(1))
	tbl, err := r.GetChunk(context.Background())
	require.NoError(t, err)
	defer tbl.Release()
	require.EqualValues(t, 1, tbl.NumRows())
}

func TestAdjListPropertyChunkReaderRejectsUndeclaredPropertyPushdown(t *testing.T) {
	fs, ei, pg := buildKnowsGraphWithProperties(t)
	r, err := NewAdjListPropertyChunkReader(fs, backend.New(), ei, info.OrderedBySource, pg, "")
	require.NoError(t, err)

	r.Select([]string{"nonexistent"})
	_, err = r.GetChunk(context.Background())
	var ve *dtype.InvalidError
	require.ErrorAs(t, err, &ve)
}

func TestAdjListPropertyChunkReaderForPropertyResolvesGroup(t *testing.T) {
	fs, ei, _ := buildKnowsGraphWithProperties(t)
	gi := graphInfoWith(ei)

	r, err := NewAdjListPropertyChunkReaderForProperty(fs, backend.New(), gi, "person", "knows", "person", info.OrderedBySource, "weight")
	require.NoError(t, err)

	tbl, err := r.GetChunk(context.Background())
	require.NoError(t, err)
	defer tbl.Release()
	require.EqualValues(t, 2, tbl.NumRows())

	_, err = NewAdjListPropertyChunkReaderForProperty(fs, backend.New(), gi, "person", "knows", "person", info.OrderedBySource, "nonexistent")
	var ke *dtype.KeyError
	require.ErrorAs(t, err, &ke)
}

// Exercises EdgeProperty[T] (C8) walking every edge via a reader built with
// NewEdgeIteratorWithProperties, asserting each row's property value lines
// up with the adjacency row it belongs to across a vertex chunk crossing.
func TestEdgeIteratorWithPropertiesReadsEdgeProperty(t *testing.T) {
	fs, ei, pg := buildKnowsGraphWithProperties(t)
	r, err := NewAdjListChunkReader(fs, backend.New(), ei, info.OrderedBySource, "")
	require.NoError(t, err)
	props, err := NewAdjListPropertyChunkReader(fs, backend.New(), ei, info.OrderedBySource, pg, "")
	require.NoError(t, err)

	it := NewEdgeIteratorWithProperties(context.Background(), r, props)
	defer it.Close()

	var weights []float64
	for it.Next() {
		w, err := EdgeProperty[float64](it, "weight")
		require.NoError(t, err)
		weights = append(weights, w)
	}
	require.NoError(t, it.Err())
	require.Equal(t, []float64{1.5, 2.5, 3.5}, weights)
}

func TestEdgePropertyWithoutPropertyReaderIsInvalidError(t *testing.T) {
	fs, ei := buildKnowsGraph(t)
	r, err := NewAdjListChunkReader(fs, backend.New(), ei, info.OrderedBySource, "")
	require.NoError(t, err)

	it := NewEdgeIterator(context.Background(), r)
	require.True(t, it.Next())
	_, err = EdgeProperty[float64](it, "weight")
	var ve *dtype.InvalidError
	require.ErrorAs(t, err, &ve)
}

// graphInfoWith wraps ei in a minimal GraphInfo so the *ForTriple/*ForProperty
// constructor forms (which resolve labels through a GraphInfo) can be
// exercised without a full YAML-backed graph.
func graphInfoWith(ei *info.EdgeInfo) *info.GraphInfo {
	gi := info.NewGraphInfo("test", "", "gar/v1")
	gi.AddEdgeInfo(ei)
	return gi
}
