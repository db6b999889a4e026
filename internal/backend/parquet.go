package backend

import (
	"bytes"
	"context"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

func (b *arrowBackend) readParquet(ctx context.Context, raw []byte) (arrow.Table, error) {
	pf, err := file.NewParquetReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer pf.Close()

	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, b.mem)
	if err != nil {
		return nil, err
	}
	return fr.ReadTable(ctx)
}

func (b *arrowBackend) writeParquet(tbl arrow.Table, w io.Writer) error {
	props := parquet.NewWriterProperties(parquet.WithAllocator(b.mem))
	arrProps := pqarrow.DefaultWriterProps()
	return pqarrow.WriteTable(tbl, w, tbl.NumRows(), props, arrProps)
}
