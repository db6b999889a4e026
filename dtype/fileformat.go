package dtype

// FileFormat is the on-disk encoding of a property group's or adjacency
// list's chunk files. The core never interprets it beyond passing it to a
// Backend.
type FileFormat string

// Supported columnar chunk file formats (spec §6).
const (
	Parquet FileFormat = "parquet"
	ORC     FileFormat = "orc"
	CSV     FileFormat = "csv"
)
