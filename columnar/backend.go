// Package columnar defines the interface the reader core delegates all
// chunk I/O to (spec §1's "columnar file backend" external collaborator).
// The core never opens a file itself; it resolves a path via the locator
// and asks a Backend to turn it into a table.
package columnar

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/Thespica/GraphAr/dtype"
	"github.com/Thespica/GraphAr/info"
	"github.com/Thespica/GraphAr/query"
)

// Backend reads a file region as an Arrow table, honoring the filter and
// column projection carried by opts, and writes an Arrow table back out.
// The core forwards opts.CurrentFilter() opaquely; only a Backend's own
// expr.Compiler implementation (see package expr) understands its shape.
type Backend interface {
	// ScanTable reads path (of the given format) on fs and returns an
	// Arrow table. A nil opts.CurrentColumns() means every column; a nil
	// opts.CurrentFilter() means no row filter. Implementations return an
	// error wrapping dtype.ErrIO on any read/parse failure.
	ScanTable(ctx context.Context, fs info.Filesystem, path string, format dtype.FileFormat, opts query.Options) (arrow.Table, error)

	// WriteTable writes tbl to path on fs in the given format. The core
	// never calls this; it exists so one Backend value serves both the
	// read path this module implements and the write path spec §1 excludes
	// from the core's scope.
	WriteTable(ctx context.Context, fs info.Filesystem, path string, format dtype.FileFormat, tbl arrow.Table) error
}
