package backend

import (
	"bytes"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"
)

func (b *arrowBackend) readCSV(raw []byte) (arrow.Table, error) {
	r := csv.NewInferringReader(bytes.NewReader(raw), csv.WithHeader(true), csv.WithAllocator(b.mem), csv.WithChunk(-1))
	defer r.Release()

	var recs []arrow.Record
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()
	for r.Next() {
		rec := r.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err := r.Err(); err != nil && err != io.EOF {
		return nil, err
	}

	return array.NewTableFromRecords(r.Schema(), recs), nil
}

func (b *arrowBackend) writeCSV(tbl arrow.Table, w io.Writer) error {
	cw := csv.NewWriter(w, tbl.Schema(), csv.WithHeader(true))

	tr := array.NewTableReader(tbl, tbl.NumRows())
	defer tr.Release()
	for tr.Next() {
		if err := cw.Write(tr.Record()); err != nil {
			return err
		}
	}
	return cw.Flush()
}
