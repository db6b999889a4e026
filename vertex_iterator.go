package graphar

import (
	"context"
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/Thespica/GraphAr/dtype"
)

// VertexIterator is a forward iterator over every vertex a
// VertexPropertyChunkReader covers (spec §4.7/C8). Call Next until it
// returns false, then check Err to distinguish a clean end from a failure.
type VertexIterator struct {
	ctx    context.Context
	reader *VertexPropertyChunkReader

	table   arrow.Table
	numRows int
	row     int

	started bool
	err     error
}

// NewVertexIterator wraps r, starting before its first row.
func NewVertexIterator(ctx context.Context, r *VertexPropertyChunkReader) *VertexIterator {
	return &VertexIterator{ctx: ctx, reader: r, row: -1}
}

// Next advances to the next vertex, loading the next chunk via the
// underlying reader when the current one is exhausted. It returns false at
// end of stream (Err() == nil) or on failure (Err() != nil).
func (it *VertexIterator) Next() bool {
	if it.err != nil {
		return false
	}
	for {
		if it.table != nil && it.row+1 < it.numRows {
			it.row++
			return true
		}
		if it.started {
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
		if it.table != nil {
			it.table.Release()
		}
		it.table = tbl
		it.numRows = int(tbl.NumRows())
		it.row = 0
		if it.numRows > 0 {
			return true
		}
		// Empty chunk: loop around and pull the next one.
	}
}

// Err reports the failure that stopped Next, or nil after a clean
// end-of-stream.
func (it *VertexIterator) Err() error { return it.err }

// ID returns the current row's vertex id.
func (it *VertexIterator) ID() (int64, error) {
	v, err := scalarAt(it.table, internalVertexIDColumn, it.row)
	if err != nil {
		return 0, err
	}
	id, ok := v.(int64)
	if !ok {
		return 0, dtype.NewTypeError(internalVertexIDColumn, "int64", fmt.Sprintf("%T", v))
	}
	return id, nil
}

// Close releases resources the iterator still holds. Safe to call multiple
// times; safe to skip once Next has returned false.
func (it *VertexIterator) Close() {
	if it.table != nil {
		it.table.Release()
		it.table = nil
	}
}

// VertexProperty reads property name at it's current row as a T, copying
// the value out of the decoded chunk. It fails with TypeError if the
// column's runtime type does not match T.
func VertexProperty[T any](it *VertexIterator, name string) (T, error) {
	var zero T
	if it.table == nil {
		return zero, dtype.NewInvalidError("VertexProperty", "Next has not produced a row yet")
	}
	v, err := scalarAt(it.table, name, it.row)
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, dtype.NewTypeError(name, fmt.Sprintf("%T", zero), fmt.Sprintf("%T", v))
	}
	return tv, nil
}

func isIndexError(err error) bool {
	var ie *dtype.IndexError
	return errors.As(err, &ie)
}
