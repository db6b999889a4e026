// Package layout computes the on-disk paths and chunk-count arithmetic the
// reader core needs to turn a logical cursor into a file location. It knows
// nothing about metadata or I/O; every function here is pure and mirrors
// spec §4.2/§6's path grammar exactly, the same way the teacher keeps chunk
// address arithmetic (internal/core/datalayout.go) separate from dataset
// I/O.
package layout

import (
	"path"
	"strconv"
)

// ChunkCount returns ceil(count / size) for a positive chunk size, the
// number of chunks needed to cover count items. size <= 0 is a caller bug
// and returns 0.
func ChunkCount(count, size int64) int64 {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// ChunkIndex returns id / size, the chunk an id falls into.
func ChunkIndex(id, size int64) int64 {
	if size <= 0 {
		return 0
	}
	return id / size
}

// ChunkOffset returns id % size, the offset of id within its chunk.
func ChunkOffset(id, size int64) int64 {
	if size <= 0 {
		return 0
	}
	return id % size
}

// VertexChunkFile returns the path of the chunk<k> file for a vertex
// property group: <vertexPrefix>/<groupPrefix>/chunk<k>.
func VertexChunkFile(graphPrefix, vertexPrefix, groupPrefix string, k int64) string {
	return join(graphPrefix, vertexPrefix, groupPrefix, chunkName(k))
}

// AdjListDir returns the directory holding adjacency chunk files for vertex
// chunk i: <edgePrefix>/<variantPrefix>/adj_list/part<i>/.
func AdjListDir(graphPrefix, edgePrefix, variantPrefix string, i int64) string {
	return join(graphPrefix, edgePrefix, variantPrefix, "adj_list", partName(i))
}

// AdjListChunkFile returns the adjacency chunk file for (vertex chunk i,
// edge sub-chunk j): <edgePrefix>/<variantPrefix>/adj_list/part<i>/chunk<j>.
func AdjListChunkFile(graphPrefix, edgePrefix, variantPrefix string, i, j int64) string {
	return join(AdjListDir(graphPrefix, edgePrefix, variantPrefix, i), chunkName(j))
}

// OffsetChunkFile returns the offset array file for vertex chunk i (ordered
// variants only): <edgePrefix>/<variantPrefix>/offset/chunk<i>.
func OffsetChunkFile(graphPrefix, edgePrefix, variantPrefix string, i int64) string {
	return join(graphPrefix, edgePrefix, variantPrefix, "offset", chunkName(i))
}

// EdgePropertyChunkFile returns the edge property group chunk file for
// (vertex chunk i, edge sub-chunk j):
// <edgePrefix>/<variantPrefix>/<groupPrefix>/part<i>/chunk<j>.
func EdgePropertyChunkFile(graphPrefix, edgePrefix, variantPrefix, groupPrefix string, i, j int64) string {
	return join(graphPrefix, edgePrefix, variantPrefix, groupPrefix, partName(i), chunkName(j))
}

func chunkName(k int64) string { return "chunk" + strconv.FormatInt(k, 10) }
func partName(i int64) string  { return "part" + strconv.FormatInt(i, 10) }

func join(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			clean = append(clean, p)
		}
	}
	return path.Join(clean...)
}
