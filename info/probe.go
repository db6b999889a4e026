package info

import (
	"github.com/Thespica/GraphAr/internal/layout"
)

// GetVerticesNum returns the vertex count for vi: the authoritative count
// if one was ever set via SetVerticesNum, otherwise the highest existing
// vertex property chunk index (probed against fs through groupPrefix),
// plus one, times chunk_size, which is the convention spec §9 fixes when
// metadata carries no count. A probed count assumes the last chunk is full,
// so it is exact only when it is; callers that need the precise row count
// of a short last chunk must read it through a Backend.
func (vi *VertexInfo) GetVerticesNum(fs Filesystem, graphPrefix string, groupPrefix string) (int64, error) {
	if vi.vertexCount >= 0 {
		return vi.vertexCount, nil
	}
	highest := int64(-1)
	for k := int64(0); ; k++ {
		p := layout.VertexChunkFile(graphPrefix, vi.Prefix, groupPrefix, k)
		ok, err := Exists(fs, p)
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		highest = k
	}
	if highest < 0 {
		return 0, nil
	}
	// Every chunk up to and including "highest" exists; assume the last one
	// is full unless a caller already recorded the real count. This is the
	// filesystem-probe half of the metadata-first/probe-fallback contract;
	// a reader that needs the short tail's exact row count reads the chunk
	// itself and reconciles via SetVerticesNum.
	return (highest + 1) * vi.ChunkSize, nil
}

// GetEdgesNum returns the edge count of vertex chunk vertexChunkIndex for
// adjacency layout t: the authoritative count if one was set via
// SetEdgesNum, otherwise derived by probing for the highest existing edge
// sub-chunk under that vertex chunk's adj_list directory.
func (ei *EdgeInfo) GetEdgesNum(fs Filesystem, graphPrefix string, t AdjListType, vertexChunkIndex int64) (int64, error) {
	if m := ei.edgesNumMapFor(t); m != nil {
		if n, ok := m[vertexChunkIndex]; ok {
			return n, nil
		}
	}
	variant, ok := ei.Variant(t)
	if !ok {
		return 0, nil
	}
	highest := int64(-1)
	for j := int64(0); ; j++ {
		p := layout.AdjListChunkFile(graphPrefix, ei.Prefix, variant.Prefix, vertexChunkIndex, j)
		exists, err := Exists(fs, p)
		if err != nil {
			return 0, err
		}
		if !exists {
			break
		}
		highest = j
	}
	if highest < 0 {
		return 0, nil
	}
	return (highest + 1) * ei.ChunkSize, nil
}
