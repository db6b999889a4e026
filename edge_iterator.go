package graphar

import (
	"context"
	"fmt"

	"github.com/Thespica/GraphAr/dtype"
)

// EdgeIterator is a forward iterator over every edge an AdjListChunkReader
// covers (spec §4.7/C8), exposing each row's source and destination id. A
// reader built with NewEdgeIteratorWithProperties additionally exposes
// EdgeProperty by keeping a property chunk reader seeked to the same
// adjacency grid position.
type EdgeIterator struct {
	ctx    context.Context
	reader *AdjListChunkReader
	props  *AdjListPropertyChunkReader

	src, dst []int64
	row      int

	propChunkVI   int64
	propChunkEI   int64
	propChunkSeen bool

	started bool
	err     error
}

// NewEdgeIterator wraps r, starting before its first row.
func NewEdgeIterator(ctx context.Context, r *AdjListChunkReader) *EdgeIterator {
	return &EdgeIterator{ctx: ctx, reader: r, row: -1}
}

// NewEdgeIteratorWithProperties wraps r and additionally seeks props to the
// same adjacency grid cell on every chunk transition, enabling EdgeProperty.
func NewEdgeIteratorWithProperties(ctx context.Context, r *AdjListChunkReader, props *AdjListPropertyChunkReader) *EdgeIterator {
	return &EdgeIterator{ctx: ctx, reader: r, props: props, row: -1}
}

// Next advances to the next edge, loading the next adjacency chunk when the
// current one is exhausted. It returns false at end of stream (Err() ==
// nil) or on failure (Err() != nil).
func (it *EdgeIterator) Next() bool {
	if it.err != nil {
		return false
	}
	for {
		if it.src != nil && it.row+1 < len(it.src) {
			it.row++
			return true
		}
		// A vertex chunk with E_i == 0 is legal and must be skipped
		// transparently (spec §3/§4.5), including vertex chunk 0 on a
		// reader that was never advanced yet: GetRowNumOfChunk() == 0
		// at the unstarted cursor means there is no adjacency file to
		// read at (0,0), so route through the same NextChunk skip-loop
		// the started case uses instead of reading it directly.
		if it.started || it.reader.GetRowNumOfChunk() == 0 {
			if err := it.reader.NextChunk(); err != nil {
				if !isIndexError(err) {
					it.err = err
				}
				return false
			}
		}
		it.started = true

		tbl, err := it.reader.GetChunk(it.ctx)
		if err != nil {
			it.err = err
			return false
		}
		cols, err := extractInt64Columns(tbl, []string{internalSrcIndexColumn, internalDstIndexColumn})
		if err != nil {
			it.err = err
			return false
		}
		it.src = cols[internalSrcIndexColumn]
		it.dst = cols[internalDstIndexColumn]
		it.row = 0
		it.propChunkSeen = false
		if len(it.src) > 0 {
			return true
		}
		// Empty chunk: loop around and pull the next one.
	}
}

// Err reports the failure that stopped Next, or nil after a clean
// end-of-stream.
func (it *EdgeIterator) Err() error { return it.err }

// Source returns the current row's source id.
func (it *EdgeIterator) Source() int64 { return it.src[it.row] }

// Destination returns the current row's destination id.
func (it *EdgeIterator) Destination() int64 { return it.dst[it.row] }

// EdgeProperty reads property name at the iterator's current row as a T. It
// fails with InvalidError if the iterator was built without a property
// reader (NewEdgeIterator rather than NewEdgeIteratorWithProperties).
func EdgeProperty[T any](it *EdgeIterator, name string) (T, error) {
	var zero T
	if it.props == nil {
		return zero, dtype.NewInvalidError("EdgeProperty", "iterator was built without a property reader")
	}
	if err := it.syncPropertyChunk(); err != nil {
		return zero, err
	}
	v, err := scalarAt(it.props.propTableCache, name, it.row)
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, dtype.NewTypeError(name, fmt.Sprintf("%T", zero), fmt.Sprintf("%T", v))
	}
	return tv, nil
}

// syncPropertyChunk loads the property reader's chunk for the adjacency
// grid cell the main reader currently occupies, caching it until the main
// reader's cursor moves to a different cell.
func (it *EdgeIterator) syncPropertyChunk() error {
	if it.propChunkSeen && it.propChunkVI == it.reader.vertexChunkIndex && it.propChunkEI == it.reader.edgeChunkIndex {
		return nil
	}
	if it.props.propTableCache != nil {
		it.props.propTableCache.Release()
		it.props.propTableCache = nil
	}
	if err := it.props.SeekChunkIndex(it.reader.vertexChunkIndex); err != nil {
		return err
	}
	it.props.edgeChunkIndex = it.reader.edgeChunkIndex
	tbl, err := it.props.GetChunk(it.ctx)
	if err != nil {
		return err
	}
	it.props.propTableCache = tbl
	it.propChunkVI = it.reader.vertexChunkIndex
	it.propChunkEI = it.reader.edgeChunkIndex
	it.propChunkSeen = true
	return nil
}

// Close releases resources the iterator still holds. Safe to call multiple
// times.
func (it *EdgeIterator) Close() {
	if it.props != nil && it.props.propTableCache != nil {
		it.props.propTableCache.Release()
		it.props.propTableCache = nil
	}
}
