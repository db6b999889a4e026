package info

import "github.com/Thespica/GraphAr/internal/layout"

// ChunkPath returns the file path of vertex chunk k of property group pg,
// spec §4.2/§6: <graphPrefix>/<vertexPrefix>/<pg.Prefix>/chunk<k>.
func (vi *VertexInfo) ChunkPath(graphPrefix string, pg *PropertyGroup, k int64) string {
	return layout.VertexChunkFile(graphPrefix, vi.Prefix, pg.Prefix, k)
}

// ChunkCount returns ceil(vertex_count / chunk_size) using the count from
// GetVerticesNum.
func (vi *VertexInfo) ChunkCount(fs Filesystem, graphPrefix string, pg *PropertyGroup) (int64, error) {
	n, err := vi.GetVerticesNum(fs, graphPrefix, pg.Prefix)
	if err != nil {
		return 0, err
	}
	return layout.ChunkCount(n, vi.ChunkSize), nil
}

// AdjListChunkPath returns the path of adjacency chunk (i, j) for variant v.
func (ei *EdgeInfo) AdjListChunkPath(graphPrefix string, v *AdjListVariant, i, j int64) string {
	return layout.AdjListChunkFile(graphPrefix, ei.Prefix, v.Prefix, i, j)
}

// OffsetChunkPath returns the path of the offset array for vertex chunk i
// of an ordered variant v.
func (ei *EdgeInfo) OffsetChunkPath(graphPrefix string, v *AdjListVariant, i int64) string {
	return layout.OffsetChunkFile(graphPrefix, ei.Prefix, v.Prefix, i)
}

// PropertyChunkPath returns the path of property group pg's chunk (i, j)
// under adjacency variant v.
func (ei *EdgeInfo) PropertyChunkPath(graphPrefix string, v *AdjListVariant, pg *PropertyGroup, i, j int64) string {
	return layout.EdgePropertyChunkFile(graphPrefix, ei.Prefix, v.Prefix, pg.Prefix, i, j)
}

// ByChunkSize returns the chunk size of the "by" side for layout t: the
// src side for by-source variants, the dst side for by-destination
// variants.
func (ei *EdgeInfo) ByChunkSize(t AdjListType) int64 {
	if t.BySource() {
		return ei.SrcChunkSize
	}
	return ei.DstChunkSize
}
