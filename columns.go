package graphar

// Reserved column names spec §6 fixes for identifiers that chunk files carry
// or that a reader synthesizes, as opposed to ordinary declared properties.
const (
	// internalVertexIDColumn is added by VertexPropertyChunkReader.GetChunk
	// to every decoded table; it is never stored on disk.
	internalVertexIDColumn = "_graphArInternalId"

	// internalSrcIndexColumn and internalDstIndexColumn are stored on disk
	// in every adjacency chunk file.
	internalSrcIndexColumn = "_graphArInternalSrcIndex"
	internalDstIndexColumn = "_graphArInternalDstIndex"

	// offsetColumnName is the single int64 column an offset chunk file
	// carries.
	offsetColumnName = "offset"
)
