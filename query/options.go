// Package query carries the pushdown filter and column projection a chunk
// reader applies to its next scan (spec §4.3). It is a leaf package so both
// the columnar backend interface and the reader core can depend on it
// without a cycle.
package query

import "github.com/Thespica/GraphAr/expr"

// Options is the value object C3 specifies: an opaque filter expression
// plus an ordered column projection. A reader holds one and mutates it
// through Filter/Select; changes take effect on the reader's next
// GetChunk, never retroactively.
type Options struct {
	filter  expr.Expression
	columns []string // nil means "all columns"
}

// Filter replaces the pushdown predicate. A nil expression clears it.
func (o *Options) Filter(e expr.Expression) { o.filter = e }

// Select replaces the column projection. A nil slice means "all columns".
func (o *Options) Select(columns []string) { o.columns = columns }

// CurrentFilter returns the predicate currently in effect, or nil.
func (o *Options) CurrentFilter() expr.Expression { return o.filter }

// CurrentColumns returns the projection currently in effect, or nil for
// "all columns".
func (o *Options) CurrentColumns() []string { return o.columns }

// Snapshot copies o by value so a scan already in flight is unaffected by a
// subsequent Filter/Select call on the same Options.
func (o *Options) Snapshot() Options {
	cols := o.columns
	if cols != nil {
		cols = append([]string(nil), cols...)
	}
	return Options{filter: o.filter, columns: cols}
}
