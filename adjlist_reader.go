package graphar

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/Thespica/GraphAr/columnar"
	"github.com/Thespica/GraphAr/dtype"
	"github.com/Thespica/GraphAr/expr"
	"github.com/Thespica/GraphAr/info"
	"github.com/Thespica/GraphAr/internal/layout"
	"github.com/Thespica/GraphAr/query"
)

// AdjListChunkReader iterates the adjacency (src, dst) chunks of one edge
// triple's layout variant (spec §4.5). The cursor is a (vertex_chunk_index,
// edge_chunk_index) pair; which seeks are legal depends on the variant's
// AdjListType.
type AdjListChunkReader struct {
	fs          info.Filesystem
	backend     columnar.Backend
	graphPrefix string
	edgeInfo    *info.EdgeInfo
	variant     *info.AdjListVariant
	adjType     info.AdjListType
	opts        query.Options

	vertexChunkIndex int64
	edgeChunkIndex   int64

	edgesInVertexChunk int64 // E_i for the current vertex chunk

	offsetCache      []int64
	offsetCacheValid bool
}

// NewAdjListChunkReader builds a reader from an EdgeInfo directly, the
// (edge_info, adj_type, graph_prefix) constructor form. It fails with
// KeyError if ei declares no variant of type t.
func NewAdjListChunkReader(fs info.Filesystem, backend columnar.Backend, ei *info.EdgeInfo, t info.AdjListType, graphPrefix string) (*AdjListChunkReader, error) {
	variant, ok := ei.Variant(t)
	if !ok {
		return nil, dtype.NewKeyError("adjacency layout", t.String())
	}
	r := &AdjListChunkReader{
		fs:          fs,
		backend:     backend,
		graphPrefix: graphPrefix,
		edgeInfo:    ei,
		variant:     variant,
		adjType:     t,
	}
	if err := r.loadVertexChunkEdgeCount(); err != nil {
		return nil, err
	}
	return r, nil
}

// NewAdjListChunkReaderForTriple resolves (srcLabel, edgeLabel, dstLabel)
// against gi, the (graph_info, src_label, edge_label, dst_label, adj_type)
// constructor form.
func NewAdjListChunkReaderForTriple(fs info.Filesystem, backend columnar.Backend, gi *info.GraphInfo, srcLabel, edgeLabel, dstLabel string, t info.AdjListType) (*AdjListChunkReader, error) {
	ei, err := gi.EdgeInfo(srcLabel, edgeLabel, dstLabel)
	if err != nil {
		return nil, err
	}
	return NewAdjListChunkReader(fs, backend, ei, t, gi.Prefix)
}

// Filter replaces the pushdown predicate applied by the next GetChunk.
func (r *AdjListChunkReader) Filter(e expr.Expression) { r.opts.Filter(e) }

// Select replaces the column projection applied by the next GetChunk.
func (r *AdjListChunkReader) Select(columns []string) { r.opts.Select(columns) }

// GetRowNumOfChunk returns E_i, the edge count of the current vertex chunk.
func (r *AdjListChunkReader) GetRowNumOfChunk() int64 { return r.edgesInVertexChunk }

// Seek moves the edge-sub-chunk cursor within the current vertex chunk to
// the sub-chunk containing globalEdgeOffset. It does not change the vertex
// chunk; offset is relative to the current vertex chunk's edge range.
func (r *AdjListChunkReader) Seek(globalEdgeOffset int64) error {
	if globalEdgeOffset < 0 || globalEdgeOffset >= r.edgesInVertexChunk {
		return dtype.NewIndexError("AdjListChunkReader.Seek", globalEdgeOffset, r.edgesInVertexChunk)
	}
	r.edgeChunkIndex = layout.ChunkIndex(globalEdgeOffset, r.edgeInfo.ChunkSize)
	return nil
}

// SeekSrc moves the cursor to the row range holding srcID, legal only for
// by-source variants.
func (r *AdjListChunkReader) SeekSrc(ctx context.Context, srcID int64) error {
	if !r.adjType.BySource() {
		return dtype.NewInvalidError("AdjListChunkReader.SeekSrc", "not legal for "+r.adjType.String())
	}
	return r.seekBySide(ctx, srcID, r.edgeInfo.SrcChunkSize)
}

// SeekDst moves the cursor to the row range holding dstID, legal only for
// by-destination variants.
func (r *AdjListChunkReader) SeekDst(ctx context.Context, dstID int64) error {
	if r.adjType.BySource() {
		return dtype.NewInvalidError("AdjListChunkReader.SeekDst", "not legal for "+r.adjType.String())
	}
	return r.seekBySide(ctx, dstID, r.edgeInfo.DstChunkSize)
}

func (r *AdjListChunkReader) seekBySide(ctx context.Context, id, sideChunkSize int64) error {
	r.vertexChunkIndex = layout.ChunkIndex(id, sideChunkSize)
	if err := r.loadVertexChunkEdgeCount(); err != nil {
		return err
	}
	if !r.adjType.Ordered() {
		r.edgeChunkIndex = 0
		return nil
	}
	offsets, err := r.loadOffsets(ctx)
	if err != nil {
		return err
	}
	within := layout.ChunkOffset(id, sideChunkSize)
	if within < 0 || within >= int64(len(offsets))-1 {
		return dtype.NewIndexError("AdjListChunkReader.seekBySide", within, int64(len(offsets))-1)
	}
	r.edgeChunkIndex = layout.ChunkIndex(offsets[within], r.edgeInfo.ChunkSize)
	return nil
}

// SeekChunkIndex moves the cursor directly to vertex chunk i, sub-chunk 0.
func (r *AdjListChunkReader) SeekChunkIndex(i int64) error {
	r.vertexChunkIndex = i
	r.edgeChunkIndex = 0
	return r.loadVertexChunkEdgeCount()
}

// NextChunk advances to the next edge sub-chunk, crossing into the next
// non-empty vertex chunk transparently. It fails with IndexError once no
// further vertex chunk has any adjacency data.
func (r *AdjListChunkReader) NextChunk() error {
	for {
		subCount := layout.ChunkCount(r.edgesInVertexChunk, r.edgeInfo.ChunkSize)
		if r.edgeChunkIndex+1 < subCount {
			r.edgeChunkIndex++
			return nil
		}
		nextI := r.vertexChunkIndex + 1
		exists, err := r.vertexChunkExists(nextI)
		if err != nil {
			return err
		}
		if !exists {
			return dtype.NewIndexError("AdjListChunkReader.NextChunk", nextI, nextI)
		}
		r.vertexChunkIndex = nextI
		r.edgeChunkIndex = 0
		if err := r.loadVertexChunkEdgeCount(); err != nil {
			return err
		}
		if r.edgesInVertexChunk > 0 {
			return nil
		}
		// E_i == 0: this vertex chunk exists but carries no edges, skip it.
	}
}

// GetChunk decodes the adjacency file for the current (vertex_chunk_index,
// edge_chunk_index), applying the reader's current filter and projection.
func (r *AdjListChunkReader) GetChunk(ctx context.Context) (arrow.Table, error) {
	path := r.edgeInfo.AdjListChunkPath(r.graphPrefix, r.variant, r.vertexChunkIndex, r.edgeChunkIndex)
	return r.backend.ScanTable(ctx, r.fs, path, r.variant.FileType, r.opts.Snapshot())
}

func (r *AdjListChunkReader) loadVertexChunkEdgeCount() error {
	n, err := r.edgeInfo.GetEdgesNum(r.fs, r.graphPrefix, r.adjType, r.vertexChunkIndex)
	if err != nil {
		return err
	}
	r.edgesInVertexChunk = n
	r.offsetCache = nil
	r.offsetCacheValid = false
	return nil
}

// loadOffsets returns the offset array for the current vertex chunk,
// loading and caching it on first use; seekBySide/SeekChunkIndex invalidate
// the cache whenever the vertex chunk changes (spec §9's lazy offset
// cache).
func (r *AdjListChunkReader) loadOffsets(ctx context.Context) ([]int64, error) {
	if r.offsetCacheValid {
		return r.offsetCache, nil
	}
	path := r.edgeInfo.OffsetChunkPath(r.graphPrefix, r.variant, r.vertexChunkIndex)
	tbl, err := r.backend.ScanTable(ctx, r.fs, path, r.variant.FileType, query.Options{})
	if err != nil {
		return nil, err
	}
	offsets, err := readInt64Column(tbl, offsetColumnName)
	if err != nil {
		return nil, err
	}
	r.offsetCache = offsets
	r.offsetCacheValid = true
	return offsets, nil
}

// vertexChunkExists reports whether vertex chunk i has any adjacency data
// on disk at all: its first edge sub-chunk, or (for ordered variants) an
// offset file. A vertex chunk recorded via EdgeInfo.SetEdgesNum as having
// E_i == 0 edges still "exists" for NextChunk's purposes through that
// metadata, never through this probe; vertexChunkExists is the filesystem
// fallback for when no such metadata was ever recorded, mirroring
// VertexInfo.GetVerticesNum's own probe convention (spec §9).
func (r *AdjListChunkReader) vertexChunkExists(i int64) (bool, error) {
	if _, ok := r.edgeInfo.RecordedEdgesNum(r.adjType, i); ok {
		return true, nil
	}
	p := layout.AdjListChunkFile(r.graphPrefix, r.edgeInfo.Prefix, r.variant.Prefix, i, 0)
	ok, err := info.Exists(r.fs, p)
	if err != nil || ok {
		return ok, err
	}
	if r.adjType.Ordered() {
		p = layout.OffsetChunkFile(r.graphPrefix, r.edgeInfo.Prefix, r.variant.Prefix, i)
		return info.Exists(r.fs, p)
	}
	return false, nil
}
