package graphar

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/Thespica/GraphAr/columnar"
	"github.com/Thespica/GraphAr/dtype"
	"github.com/Thespica/GraphAr/info"
	"github.com/Thespica/GraphAr/internal/layout"
	"github.com/Thespica/GraphAr/query"
)

// AdjListOffsetChunkReader iterates the CSR/CSC-style offset arrays of an
// ordered adjacency variant (spec §4.5/C6). Its cursor is a single vertex
// chunk index; unordered variants carry no offset index and are rejected at
// construction.
type AdjListOffsetChunkReader struct {
	fs          info.Filesystem
	backend     columnar.Backend
	graphPrefix string
	edgeInfo    *info.EdgeInfo
	variant     *info.AdjListVariant
	adjType     info.AdjListType
	opts        query.Options

	chunkIndex int64
}

// NewAdjListOffsetChunkReader builds an offset reader over ei's variant t,
// failing with InvalidError if t is not an ordered layout.
func NewAdjListOffsetChunkReader(fs info.Filesystem, backend columnar.Backend, ei *info.EdgeInfo, t info.AdjListType, graphPrefix string) (*AdjListOffsetChunkReader, error) {
	variant, ok := ei.Variant(t)
	if !ok {
		return nil, dtype.NewKeyError("adjacency layout", t.String())
	}
	if !t.Ordered() {
		return nil, dtype.NewInvalidError("NewAdjListOffsetChunkReader", "no offset index for "+t.String())
	}
	return &AdjListOffsetChunkReader{
		fs:          fs,
		backend:     backend,
		graphPrefix: graphPrefix,
		edgeInfo:    ei,
		variant:     variant,
		adjType:     t,
	}, nil
}

// NewAdjListOffsetChunkReaderForTriple resolves (srcLabel, edgeLabel,
// dstLabel) against gi before constructing the reader.
func NewAdjListOffsetChunkReaderForTriple(fs info.Filesystem, backend columnar.Backend, gi *info.GraphInfo, srcLabel, edgeLabel, dstLabel string, t info.AdjListType) (*AdjListOffsetChunkReader, error) {
	ei, err := gi.EdgeInfo(srcLabel, edgeLabel, dstLabel)
	if err != nil {
		return nil, err
	}
	return NewAdjListOffsetChunkReader(fs, backend, ei, t, gi.Prefix)
}

func (r *AdjListOffsetChunkReader) sideChunkSize() int64 { return r.edgeInfo.ByChunkSize(r.adjType) }

// Seek moves the cursor to the vertex chunk containing id (src or dst,
// according to the variant's side).
func (r *AdjListOffsetChunkReader) Seek(id int64) error {
	if id < 0 {
		return dtype.NewIndexError("AdjListOffsetChunkReader.Seek", id, -1)
	}
	r.chunkIndex = layout.ChunkIndex(id, r.sideChunkSize())
	return nil
}

// NextChunk advances to the next vertex chunk, failing with IndexError once
// no further vertex chunk has adjacency data.
func (r *AdjListOffsetChunkReader) NextChunk() error {
	nextI := r.chunkIndex + 1
	exists, err := r.vertexChunkExists(nextI)
	if err != nil {
		return err
	}
	if !exists {
		return dtype.NewIndexError("AdjListOffsetChunkReader.NextChunk", nextI, nextI)
	}
	r.chunkIndex = nextI
	return nil
}

// GetChunk decodes the offset array for the current vertex chunk: length
// equal to the number of vertices in that chunk plus one, with the final
// cell equal to E_i.
func (r *AdjListOffsetChunkReader) GetChunk(ctx context.Context) (arrow.Table, error) {
	path := r.edgeInfo.OffsetChunkPath(r.graphPrefix, r.variant, r.chunkIndex)
	return r.backend.ScanTable(ctx, r.fs, path, r.variant.FileType, r.opts.Snapshot())
}

func (r *AdjListOffsetChunkReader) vertexChunkExists(i int64) (bool, error) {
	if _, ok := r.edgeInfo.RecordedEdgesNum(r.adjType, i); ok {
		return true, nil
	}
	p := layout.OffsetChunkFile(r.graphPrefix, r.edgeInfo.Prefix, r.variant.Prefix, i)
	return info.Exists(r.fs, p)
}
