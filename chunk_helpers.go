package graphar

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/Thespica/GraphAr/dtype"
	"github.com/Thespica/GraphAr/expr"
	"github.com/Thespica/GraphAr/info"
	"github.com/Thespica/GraphAr/query"
)

var sharedAllocator = memory.NewGoAllocator()

// validatePropertyOptions implements the lazy pushdown-error policy spec
// §4.4/§4.8 describe: a filter or projection naming something pg doesn't
// declare is legal to set but fails the next GetChunk with InvalidError.
func validatePropertyOptions(pg *info.PropertyGroup, opts query.Options) error {
	for _, name := range expr.AllProperties(opts.CurrentFilter()) {
		if !pg.HasProperty(name) {
			return dtype.NewInvalidError("GetChunk", "filter references unknown property "+name)
		}
	}
	for _, name := range opts.CurrentColumns() {
		if !pg.HasProperty(name) {
			return dtype.NewInvalidError("GetChunk", "projection names unknown column "+name)
		}
	}
	return nil
}

// appendIDColumn returns a new table equal to tbl plus a trailing int64
// column named internalVertexIDColumn holding startID, startID+1, ...; tbl
// is released. Used by VertexPropertyChunkReader.GetChunk to add the
// synthetic id column spec §4.4 requires on every vertex chunk.
func appendIDColumn(mem memory.Allocator, tbl arrow.Table, startID int64) (arrow.Table, error) {
	defer tbl.Release()

	tr := array.NewTableReader(tbl, tbl.NumRows())
	defer tr.Release()

	var rec arrow.Record
	if tr.Next() {
		rec = tr.Record()
		rec.Retain()
	} else {
		rec = array.NewRecord(tbl.Schema(), nil, 0)
	}
	defer rec.Release()

	n := int(rec.NumRows())
	b := array.NewInt64Builder(mem)
	defer b.Release()
	for i := 0; i < n; i++ {
		b.Append(startID + int64(i))
	}
	idCol := b.NewInt64Array()
	defer idCol.Release()

	fields := append(append([]arrow.Field{}, rec.Schema().Fields()...),
		arrow.Field{Name: internalVertexIDColumn, Type: arrow.PrimitiveTypes.Int64})
	cols := append(append([]arrow.Array{}, rec.Columns()...), idCol)

	outSchema := arrow.NewSchema(fields, nil)
	outRec := array.NewRecord(outSchema, cols, rec.NumRows())
	defer outRec.Release()
	return array.NewTableFromRecords(outSchema, []arrow.Record{outRec}), nil
}

// readInt64Column extracts columnName from tbl as a plain Go slice,
// releasing tbl. Used to materialize offset arrays (C6).
func readInt64Column(tbl arrow.Table, columnName string) ([]int64, error) {
	cols, err := extractInt64Columns(tbl, []string{columnName})
	if err != nil {
		return nil, err
	}
	return cols[columnName], nil
}

// extractInt64Columns copies one or more int64 columns out of tbl in a
// single pass and releases tbl, so a reader never retains a slice view into
// an Arrow array the caller might release independently (spec §9's
// typed-accessor double-free note).
func extractInt64Columns(tbl arrow.Table, names []string) (map[string][]int64, error) {
	defer tbl.Release()

	sch := tbl.Schema()
	colIdx := make(map[string]int, len(names))
	for _, name := range names {
		idxs := sch.FieldIndices(name)
		if len(idxs) == 0 {
			return nil, dtype.NewKeyError("column", name)
		}
		colIdx[name] = idxs[0]
	}

	tr := array.NewTableReader(tbl, tbl.NumRows())
	defer tr.Release()

	out := make(map[string][]int64, len(names))
	for tr.Next() {
		rec := tr.Record()
		for _, name := range names {
			arr, ok := rec.Column(colIdx[name]).(*array.Int64)
			if !ok {
				return nil, dtype.NewTypeError(name, "int64", rec.Column(colIdx[name]).DataType().Name())
			}
			for i := 0; i < arr.Len(); i++ {
				out[name] = append(out[name], arr.Value(i))
			}
		}
	}
	return out, nil
}

// arrayValueAt reads a's value at row as a Go scalar, copying it out of the
// Arrow array rather than returning a view, and reports whether it was
// null.
func arrayValueAt(a arrow.Array, row int) (any, bool) {
	if a.IsNull(row) {
		return nil, true
	}
	switch v := a.(type) {
	case *array.Boolean:
		return v.Value(row), false
	case *array.Int32:
		return v.Value(row), false
	case *array.Int64:
		return v.Value(row), false
	case *array.Float32:
		return v.Value(row), false
	case *array.Float64:
		return v.Value(row), false
	case *array.String:
		return v.Value(row), false
	case *array.LargeString:
		return v.Value(row), false
	default:
		return nil, true
	}
}

// scalarAt reads the value of column name at row in tbl without releasing
// tbl, so an iterator can call it repeatedly over a chunk it still owns.
func scalarAt(tbl arrow.Table, name string, row int) (any, error) {
	sch := tbl.Schema()
	idxs := sch.FieldIndices(name)
	if len(idxs) == 0 {
		return nil, dtype.NewKeyError("property", name)
	}

	tr := array.NewTableReader(tbl, tbl.NumRows())
	defer tr.Release()
	if !tr.Next() {
		return nil, dtype.NewIndexError("scalarAt", int64(row), 0)
	}
	v, _ := arrayValueAt(tr.Record().Column(idxs[0]), row)
	return v, nil
}
