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

// VertexPropertyChunkReader iterates the chunk files of one vertex label's
// property group (spec §4.4). Construct it with
// NewVertexPropertyChunkReader, NewVertexPropertyChunkReaderForLabel, or
// NewVertexPropertyChunkReaderForProperty depending on what the caller
// already has in hand.
type VertexPropertyChunkReader struct {
	fs          info.Filesystem
	backend     columnar.Backend
	graphPrefix string
	vertexInfo  *info.VertexInfo
	group       *info.PropertyGroup
	opts        query.Options

	vertexCount int64
	chunkCount  int64
	chunkIndex  int64
}

// NewVertexPropertyChunkReader builds a reader directly from a VertexInfo
// and the PropertyGroup to scan, the (vertex_info, property_group,
// graph_prefix) constructor form spec §4.4 lists.
func NewVertexPropertyChunkReader(fs info.Filesystem, backend columnar.Backend, vi *info.VertexInfo, pg *info.PropertyGroup, graphPrefix string) (*VertexPropertyChunkReader, error) {
	n, err := vi.GetVerticesNum(fs, graphPrefix, pg.Prefix)
	if err != nil {
		return nil, err
	}
	return &VertexPropertyChunkReader{
		fs:          fs,
		backend:     backend,
		graphPrefix: graphPrefix,
		vertexInfo:  vi,
		group:       pg,
		vertexCount: n,
		chunkCount:  layout.ChunkCount(n, vi.ChunkSize),
	}, nil
}

// NewVertexPropertyChunkReaderForLabel resolves label and pg against gi,
// the (graph_info, label, property_group) constructor form.
func NewVertexPropertyChunkReaderForLabel(fs info.Filesystem, backend columnar.Backend, gi *info.GraphInfo, label string, pg *info.PropertyGroup) (*VertexPropertyChunkReader, error) {
	vi, err := gi.VertexInfo(label)
	if err != nil {
		return nil, err
	}
	return NewVertexPropertyChunkReader(fs, backend, vi, pg, gi.Prefix)
}

// NewVertexPropertyChunkReaderForProperty resolves propertyName to its
// containing group within label, the (graph_info, label, property_name)
// constructor form. It fails with KeyError if no declared group of label
// contains propertyName.
func NewVertexPropertyChunkReaderForProperty(fs info.Filesystem, backend columnar.Backend, gi *info.GraphInfo, label, propertyName string) (*VertexPropertyChunkReader, error) {
	vi, err := gi.VertexInfo(label)
	if err != nil {
		return nil, err
	}
	pg, ok := vi.PropertyGroupFor(propertyName)
	if !ok {
		return nil, dtype.NewKeyError("property", propertyName)
	}
	return NewVertexPropertyChunkReader(fs, backend, vi, pg, gi.Prefix)
}

// Filter replaces the pushdown predicate applied by the next GetChunk.
func (r *VertexPropertyChunkReader) Filter(e expr.Expression) { r.opts.Filter(e) }

// Select replaces the column projection applied by the next GetChunk.
func (r *VertexPropertyChunkReader) Select(columns []string) { r.opts.Select(columns) }

// GetChunkNum returns the number of vertex chunks, ceil(vertex_count /
// chunk_size).
func (r *VertexPropertyChunkReader) GetChunkNum() int64 { return r.chunkCount }

// Seek moves the cursor to the chunk containing id, failing with IndexError
// if id is out of range for the label's vertex count.
func (r *VertexPropertyChunkReader) Seek(id int64) error {
	if id < 0 || id >= r.vertexCount {
		return dtype.NewIndexError("VertexPropertyChunkReader.Seek", id, r.vertexCount)
	}
	r.chunkIndex = layout.ChunkIndex(id, r.vertexInfo.ChunkSize)
	return nil
}

// NextChunk advances to the next vertex chunk, failing with IndexError once
// the cursor is already on the last chunk.
func (r *VertexPropertyChunkReader) NextChunk() error {
	if r.chunkIndex >= r.chunkCount-1 {
		return dtype.NewIndexError("VertexPropertyChunkReader.NextChunk", r.chunkIndex, r.chunkCount)
	}
	r.chunkIndex++
	return nil
}

// GetChunk decodes the current chunk, applying the reader's current filter
// and projection, and returns it with a synthetic internalVertexIDColumn
// column appended holding each row's vertex id.
func (r *VertexPropertyChunkReader) GetChunk(ctx context.Context) (arrow.Table, error) {
	if err := validatePropertyOptions(r.group, r.opts); err != nil {
		return nil, err
	}
	path := r.vertexInfo.ChunkPath(r.graphPrefix, r.group, r.chunkIndex)
	tbl, err := r.backend.ScanTable(ctx, r.fs, path, r.group.FileType, r.opts.Snapshot())
	if err != nil {
		return nil, err
	}
	startID := r.chunkIndex * r.vertexInfo.ChunkSize
	return appendIDColumn(sharedAllocator, tbl, startID)
}
