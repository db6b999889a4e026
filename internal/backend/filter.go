package backend

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/Thespica/GraphAr/dtype"
	"github.com/Thespica/GraphAr/expr"
	"github.com/Thespica/GraphAr/query"
)

// applyOptions projects and row-filters tbl per opts and returns a new
// table; tbl is always released, whether or not an error occurs.
func applyOptions(mem memory.Allocator, tbl arrow.Table, opts query.Options) (arrow.Table, error) {
	defer tbl.Release()

	tr := array.NewTableReader(tbl, tbl.NumRows())
	defer tr.Release()

	var rec arrow.Record
	if tr.Next() {
		rec = tr.Record()
		rec.Retain()
		defer rec.Release()
	} else {
		rec = array.NewRecord(tbl.Schema(), nil, 0)
		defer rec.Release()
	}

	mask, err := evalMask(rec, opts.CurrentFilter())
	if err != nil {
		return nil, err
	}

	out, err := project(mem, rec, mask, opts.CurrentColumns())
	if err != nil {
		return nil, err
	}
	defer out.Release()

	return array.NewTableFromRecords(out.Schema(), []arrow.Record{out}), nil
}

// rowPredicate is the compiled form every expr.Expression reduces to in
// this backend: a function that tests one row of the record the predicate
// was compiled against.
type rowPredicate func(row int) (bool, error)

// rowCompiler implements expr.Compiler by resolving each predicate to a
// closure over rec's columns, evaluated once per row by evalMask. It only
// understands comparisons against a literal operand; a predicate whose
// right-hand side is itself a property reference compares the column
// against the referenced name as a string literal, since
// expr.PropertyRef compiles to a bare string this backend cannot tell
// apart from one.
type rowCompiler struct {
	rec   arrow.Record
	index map[string]int
}

func newRowCompiler(rec arrow.Record) *rowCompiler {
	sch := rec.Schema()
	idx := make(map[string]int, sch.NumFields())
	for i := 0; i < sch.NumFields(); i++ {
		idx[sch.Field(i).Name] = i
	}
	return &rowCompiler{rec: rec, index: idx}
}

func (c *rowCompiler) column(property string) (arrow.Array, error) {
	i, ok := c.index[property]
	if !ok {
		return nil, dtype.NewInvalidError("pushdown filter", fmt.Sprintf("unknown property %q", property))
	}
	return c.rec.Column(i), nil
}

func (c *rowCompiler) CompileAnd(left, right any) (any, error) {
	lp, ok := left.(rowPredicate)
	if !ok {
		return nil, dtype.NewInvalidError("CompileAnd", "left operand did not compile to a predicate")
	}
	rp, ok := right.(rowPredicate)
	if !ok {
		return nil, dtype.NewInvalidError("CompileAnd", "right operand did not compile to a predicate")
	}
	return rowPredicate(func(row int) (bool, error) {
		ok, err := lp(row)
		if err != nil || !ok {
			return false, err
		}
		return rp(row)
	}), nil
}

func (c *rowCompiler) CompileEqual(property string, literal any) (any, error) {
	col, err := c.column(property)
	if err != nil {
		return nil, err
	}
	return rowPredicate(func(row int) (bool, error) {
		v, isNull := columnValueAt(col, row)
		if isNull {
			return false, nil
		}
		return valuesEqual(v, literal), nil
	}), nil
}

func (c *rowCompiler) CompileLessThan(property string, literal any) (any, error) {
	col, err := c.column(property)
	if err != nil {
		return nil, err
	}
	return rowPredicate(func(row int) (bool, error) {
		v, isNull := columnValueAt(col, row)
		if isNull {
			return false, nil
		}
		return valueLess(v, literal)
	}), nil
}

// evalMask compiles filt against rec once and evaluates it for every row,
// returning a per-row keep mask. A nil filt means "keep everything"; evalMask
// reports that by returning a nil mask rather than an all-true slice.
func evalMask(rec arrow.Record, filt expr.Expression) ([]bool, error) {
	if filt == nil {
		return nil, nil
	}
	compiled, err := filt.Compile(newRowCompiler(rec))
	if err != nil {
		return nil, err
	}
	pred, ok := compiled.(rowPredicate)
	if !ok {
		return nil, dtype.NewInvalidError("evalMask", "filter did not compile to a row predicate")
	}

	n := int(rec.NumRows())
	mask := make([]bool, n)
	for i := 0; i < n; i++ {
		keep, err := pred(i)
		if err != nil {
			return nil, err
		}
		mask[i] = keep
	}
	return mask, nil
}

// project selects columns (nil means every column, in schema order) and
// keeps only the rows mask marks true (nil mask means every row), returning
// a fresh record the caller owns.
func project(mem memory.Allocator, rec arrow.Record, mask []bool, columns []string) (arrow.Record, error) {
	sch := rec.Schema()
	names := columns
	if names == nil {
		names = make([]string, sch.NumFields())
		for i := range names {
			names[i] = sch.Field(i).Name
		}
	}

	fields := make([]arrow.Field, 0, len(names))
	cols := make([]arrow.Array, 0, len(names))
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()
	for _, name := range names {
		idxs := sch.FieldIndices(name)
		if len(idxs) == 0 {
			return nil, dtype.NewInvalidError("pushdown projection", fmt.Sprintf("unknown column %q", name))
		}
		filtered, err := filterColumn(mem, rec.Column(idxs[0]), mask)
		if err != nil {
			return nil, err
		}
		fields = append(fields, sch.Field(idxs[0]))
		cols = append(cols, filtered)
	}

	nrows := rec.NumRows()
	if mask != nil {
		var kept int64
		for _, keep := range mask {
			if keep {
				kept++
			}
		}
		nrows = kept
	}

	outSchema := arrow.NewSchema(fields, nil)
	out := array.NewRecord(outSchema, cols, nrows)
	return out, nil
}

// columnValueAt reads col's value at row as a Go scalar, copying it out of
// the Arrow array rather than returning a view, and reports whether it was
// null.
func columnValueAt(col arrow.Array, row int) (any, bool) {
	if col.IsNull(row) {
		return nil, true
	}
	switch a := col.(type) {
	case *array.Boolean:
		return a.Value(row), false
	case *array.Int32:
		return a.Value(row), false
	case *array.Int64:
		return a.Value(row), false
	case *array.Float32:
		return a.Value(row), false
	case *array.Float64:
		return a.Value(row), false
	case *array.String:
		return a.Value(row), false
	case *array.LargeString:
		return a.Value(row), false
	default:
		return nil, true
	}
}

// filterColumn returns a new array holding col's values at the rows mask
// marks true, in order. A nil mask keeps every row.
func filterColumn(mem memory.Allocator, col arrow.Array, mask []bool) (arrow.Array, error) {
	if mask == nil {
		col.Retain()
		return col, nil
	}
	switch a := col.(type) {
	case *array.Boolean:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		for i, keep := range mask {
			if !keep {
				continue
			}
			appendOrNull(b, a.IsNull(i), func() { b.Append(a.Value(i)) })
		}
		return b.NewBooleanArray(), nil
	case *array.Int32:
		b := array.NewInt32Builder(mem)
		defer b.Release()
		for i, keep := range mask {
			if !keep {
				continue
			}
			appendOrNull(b, a.IsNull(i), func() { b.Append(a.Value(i)) })
		}
		return b.NewInt32Array(), nil
	case *array.Int64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		for i, keep := range mask {
			if !keep {
				continue
			}
			appendOrNull(b, a.IsNull(i), func() { b.Append(a.Value(i)) })
		}
		return b.NewInt64Array(), nil
	case *array.Float32:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		for i, keep := range mask {
			if !keep {
				continue
			}
			appendOrNull(b, a.IsNull(i), func() { b.Append(a.Value(i)) })
		}
		return b.NewFloat32Array(), nil
	case *array.Float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for i, keep := range mask {
			if !keep {
				continue
			}
			appendOrNull(b, a.IsNull(i), func() { b.Append(a.Value(i)) })
		}
		return b.NewFloat64Array(), nil
	case *array.String:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for i, keep := range mask {
			if !keep {
				continue
			}
			appendOrNull(b, a.IsNull(i), func() { b.Append(a.Value(i)) })
		}
		return b.NewStringArray(), nil
	case *array.LargeString:
		b := array.NewLargeStringBuilder(mem)
		defer b.Release()
		for i, keep := range mask {
			if !keep {
				continue
			}
			appendOrNull(b, a.IsNull(i), func() { b.Append(a.Value(i)) })
		}
		return b.NewLargeStringArray(), nil
	default:
		return nil, dtype.NewInvalidError("filterColumn", fmt.Sprintf("pushdown filter unsupported for column type %s", col.DataType()))
	}
}

// builderAppendNuller is the subset of every array.*Builder's API this file
// needs: every concrete builder used above implements it.
type builderAppendNuller interface {
	AppendNull()
}

func appendOrNull(b builderAppendNuller, isNull bool, appendValue func()) {
	if isNull {
		b.AppendNull()
		return
	}
	appendValue()
}

// valuesEqual compares two scalars read via columnValueAt or supplied as an
// expr.Literal, trying a numeric comparison before falling back to an exact
// type-and-value match.
func valuesEqual(a, b any) bool {
	if af, aok := toFloat64(a); aok {
		if bf, bok := toFloat64(b); bok {
			return af == bf
		}
	}
	return a == b
}

// valueLess orders two scalars numerically; a non-numeric operand is a
// TypeError, since spec §4.3's LessThan pushdown is only meaningful on
// orderable property types.
func valueLess(a, b any) (bool, error) {
	af, aok := toFloat64(a)
	bf, bok := toFloat64(b)
	if !aok || !bok {
		return false, dtype.NewTypeError("filter operand", "numeric", fmt.Sprintf("%T/%T", a, b))
	}
	return af < bf, nil
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
