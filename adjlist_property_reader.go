package graphar

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/Thespica/GraphAr/columnar"
	"github.com/Thespica/GraphAr/dtype"
	"github.com/Thespica/GraphAr/info"
)

// AdjListPropertyChunkReader reads an edge property group's chunks over the
// same (vertex_chunk_index, edge_chunk_index) grid an AdjListChunkReader
// cursors through (spec §4.6/C7): it shares the adjacency layout's seek
// legality rules by embedding one, and only overrides GetChunk to resolve a
// different file path and apply the property-group pushdown policy.
type AdjListPropertyChunkReader struct {
	*AdjListChunkReader
	group *info.PropertyGroup

	// propTableCache is used only by EdgeIterator, which seeks this reader
	// to an adjacency grid cell out of band and caches the decoded chunk
	// here between EdgeProperty calls on the same row range.
	propTableCache arrow.Table
}

// NewAdjListPropertyChunkReader builds a C7 reader directly from an
// EdgeInfo, variant, and property group.
func NewAdjListPropertyChunkReader(fs info.Filesystem, backend columnar.Backend, ei *info.EdgeInfo, t info.AdjListType, pg *info.PropertyGroup, graphPrefix string) (*AdjListPropertyChunkReader, error) {
	base, err := NewAdjListChunkReader(fs, backend, ei, t, graphPrefix)
	if err != nil {
		return nil, err
	}
	return &AdjListPropertyChunkReader{AdjListChunkReader: base, group: pg}, nil
}

// NewAdjListPropertyChunkReaderForTriple resolves (srcLabel, edgeLabel,
// dstLabel) against gi before constructing the reader.
func NewAdjListPropertyChunkReaderForTriple(fs info.Filesystem, backend columnar.Backend, gi *info.GraphInfo, srcLabel, edgeLabel, dstLabel string, t info.AdjListType, pg *info.PropertyGroup) (*AdjListPropertyChunkReader, error) {
	ei, err := gi.EdgeInfo(srcLabel, edgeLabel, dstLabel)
	if err != nil {
		return nil, err
	}
	return NewAdjListPropertyChunkReader(fs, backend, ei, t, pg, gi.Prefix)
}

// NewAdjListPropertyChunkReaderForProperty resolves propertyName to its
// containing group within the (srcLabel, edgeLabel, dstLabel, t) variant.
func NewAdjListPropertyChunkReaderForProperty(fs info.Filesystem, backend columnar.Backend, gi *info.GraphInfo, srcLabel, edgeLabel, dstLabel string, t info.AdjListType, propertyName string) (*AdjListPropertyChunkReader, error) {
	ei, err := gi.EdgeInfo(srcLabel, edgeLabel, dstLabel)
	if err != nil {
		return nil, err
	}
	variant, ok := ei.Variant(t)
	if !ok {
		return nil, dtype.NewKeyError("adjacency layout", t.String())
	}
	pg, ok := variant.PropertyGroupFor(propertyName)
	if !ok {
		return nil, dtype.NewKeyError("property", propertyName)
	}
	return NewAdjListPropertyChunkReader(fs, backend, ei, t, pg, gi.Prefix)
}

// GetChunk decodes the property group's chunk file for the current
// (vertex_chunk_index, edge_chunk_index), applying the same lazy
// pushdown-error policy as VertexPropertyChunkReader.
func (r *AdjListPropertyChunkReader) GetChunk(ctx context.Context) (arrow.Table, error) {
	if err := validatePropertyOptions(r.group, r.opts); err != nil {
		return nil, err
	}
	path := r.edgeInfo.PropertyChunkPath(r.graphPrefix, r.variant, r.group, r.vertexChunkIndex, r.edgeChunkIndex)
	return r.backend.ScanTable(ctx, r.fs, path, r.group.FileType, r.opts.Snapshot())
}
