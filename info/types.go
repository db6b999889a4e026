package info

import (
	"fmt"

	"github.com/Thespica/GraphAr/dtype"
)

// AdjListType is one of the four adjacency layouts spec §3 defines. The
// zero value is OrderedBySource.
type AdjListType uint8

const (
	OrderedBySource AdjListType = iota
	OrderedByDest
	UnorderedBySource
	UnorderedByDest
)

func (t AdjListType) String() string {
	switch t {
	case OrderedBySource:
		return "ordered_by_source"
	case OrderedByDest:
		return "ordered_by_dest"
	case UnorderedBySource:
		return "unordered_by_source"
	case UnorderedByDest:
		return "unordered_by_dest"
	default:
		return fmt.Sprintf("AdjListType(%d)", uint8(t))
	}
}

// ParseAdjListType parses the "ordered"/"aligned_by" YAML pair into an
// AdjListType, matching spec §6's edge.adj_lists schema.
func ParseAdjListType(ordered bool, alignedBy string) (AdjListType, error) {
	switch {
	case ordered && alignedBy == "src":
		return OrderedBySource, nil
	case ordered && alignedBy == "dst":
		return OrderedByDest, nil
	case !ordered && alignedBy == "src":
		return UnorderedBySource, nil
	case !ordered && alignedBy == "dst":
		return UnorderedByDest, nil
	default:
		return 0, dtype.NewInvalidError("ParseAdjListType", fmt.Sprintf("aligned_by must be \"src\" or \"dst\", got %q", alignedBy))
	}
}

// Ordered reports whether this layout maintains an offset index.
func (t AdjListType) Ordered() bool {
	return t == OrderedBySource || t == OrderedByDest
}

// BySource reports whether this layout is partitioned by source id (as
// opposed to destination id).
func (t AdjListType) BySource() bool {
	return t == OrderedBySource || t == UnorderedBySource
}

// AdjListVariant is one declared adjacency layout of an EdgeInfo, with its
// own path prefix and property groups.
type AdjListVariant struct {
	Type           AdjListType
	Prefix         string          `yaml:"prefix"`
	FileType       dtype.FileFormat `yaml:"file_type"`
	PropertyGroups []PropertyGroup `yaml:"property_groups"`

	// rawOrdered/rawAlignedBy record the YAML fields UnmarshalYAML passed
	// to ParseAdjListType to resolve Type.
	rawOrdered   bool
	rawAlignedBy string
}

// PropertyGroupFor looks up a declared property group containing name.
func (v *AdjListVariant) PropertyGroupFor(name string) (*PropertyGroup, bool) {
	for i := range v.PropertyGroups {
		if v.PropertyGroups[i].HasProperty(name) {
			return &v.PropertyGroups[i], true
		}
	}
	return nil, false
}

// VertexInfo is one vertex label's metadata: chunk size, path prefix, and
// the property groups stored for that label.
type VertexInfo struct {
	Label          string          `yaml:"label"`
	ChunkSize      int64           `yaml:"chunk_size"`
	Prefix         string          `yaml:"prefix"`
	Version        string          `yaml:"version"`
	PropertyGroups []PropertyGroup `yaml:"property_groups"`

	// vertexCount, when >= 0, is the authoritative count recorded via
	// SetVerticesNum; -1 means "unknown, probe the file system" (spec §9).
	vertexCount int64
}

// SetVerticesNum records an authoritative vertex count, overriding
// filesystem probing in GetVerticesNum.
func (vi *VertexInfo) SetVerticesNum(n int64) { vi.vertexCount = n }

// PropertyGroupFor looks up the property group declaring name.
func (vi *VertexInfo) PropertyGroupFor(name string) (*PropertyGroup, bool) {
	for i := range vi.PropertyGroups {
		if vi.PropertyGroups[i].HasProperty(name) {
			return &vi.PropertyGroups[i], true
		}
	}
	return nil, false
}

// EdgeInfo is one (src_label, edge_label, dst_label) triple's metadata.
type EdgeInfo struct {
	SrcLabel     string `yaml:"src_label"`
	EdgeLabel    string `yaml:"edge_label"`
	DstLabel     string `yaml:"dst_label"`
	ChunkSize    int64  `yaml:"chunk_size"` // edge_chunk_size
	SrcChunkSize int64  `yaml:"src_chunk_size"`
	DstChunkSize int64  `yaml:"dst_chunk_size"`
	Directed     bool   `yaml:"directed"`
	Prefix       string `yaml:"prefix"`
	Version      string `yaml:"version"`

	AdjLists []AdjListVariant `yaml:"adj_lists"`

	// edgesPerSrcChunk/edgesPerDstChunk record E_i per vertex chunk when
	// known; nil means "unknown, probe the file system".
	edgesPerSrcChunk map[int64]int64
	edgesPerDstChunk map[int64]int64
}

// Triple identifies an EdgeInfo for error messages and map keys.
func (ei *EdgeInfo) Triple() string {
	return ei.SrcLabel + "_" + ei.EdgeLabel + "_" + ei.DstLabel
}

// Variant looks up a declared adjacency layout by type.
func (ei *EdgeInfo) Variant(t AdjListType) (*AdjListVariant, bool) {
	for i := range ei.AdjLists {
		if ei.AdjLists[i].Type == t {
			return &ei.AdjLists[i], true
		}
	}
	return nil, false
}

// SetEdgesNum records an authoritative per-vertex-chunk edge count (E_i)
// for the "by" side of layout t, overriding filesystem probing.
func (ei *EdgeInfo) SetEdgesNum(t AdjListType, vertexChunkIndex, n int64) {
	m := ei.edgesNumMapFor(t)
	m[vertexChunkIndex] = n
}

// RecordedEdgesNum reports the authoritative E_i set via SetEdgesNum for
// vertex chunk vertexChunkIndex of layout t, if any, distinguishing "known
// to be zero" from "never recorded, must probe the file system".
func (ei *EdgeInfo) RecordedEdgesNum(t AdjListType, vertexChunkIndex int64) (int64, bool) {
	m := ei.edgesNumMapFor(t)
	n, ok := m[vertexChunkIndex]
	return n, ok
}

func (ei *EdgeInfo) edgesNumMapFor(t AdjListType) map[int64]int64 {
	if t.BySource() {
		if ei.edgesPerSrcChunk == nil {
			ei.edgesPerSrcChunk = map[int64]int64{}
		}
		return ei.edgesPerSrcChunk
	}
	if ei.edgesPerDstChunk == nil {
		ei.edgesPerDstChunk = map[int64]int64{}
	}
	return ei.edgesPerDstChunk
}

// GraphInfo is the top-level, immutable handle shared by every reader built
// against one archive: name, on-disk prefix, version, and every vertex and
// edge info, keyed by label and by triple.
type GraphInfo struct {
	Name    string `yaml:"name"`
	Prefix  string `yaml:"prefix"`
	Version string `yaml:"version"`

	vertices map[string]*VertexInfo
	edges    map[string]*EdgeInfo
}

// NewGraphInfo builds an empty GraphInfo ready to have vertex/edge infos
// added; LoadGraphInfo populates one from YAML files instead.
func NewGraphInfo(name, prefix, version string) *GraphInfo {
	return &GraphInfo{
		Name:     name,
		Prefix:   prefix,
		Version:  version,
		vertices: map[string]*VertexInfo{},
		edges:    map[string]*EdgeInfo{},
	}
}

// AddVertexInfo registers a vertex label's metadata.
func (g *GraphInfo) AddVertexInfo(vi *VertexInfo) { g.vertices[vi.Label] = vi }

// AddEdgeInfo registers an edge triple's metadata.
func (g *GraphInfo) AddEdgeInfo(ei *EdgeInfo) { g.edges[ei.Triple()] = ei }

// VertexInfo looks up a vertex label, failing with KeyError if undeclared.
func (g *GraphInfo) VertexInfo(label string) (*VertexInfo, error) {
	vi, ok := g.vertices[label]
	if !ok {
		return nil, dtype.NewKeyError("vertex label", label)
	}
	return vi, nil
}

// EdgeInfo looks up an edge triple, failing with KeyError if undeclared.
func (g *GraphInfo) EdgeInfo(srcLabel, edgeLabel, dstLabel string) (*EdgeInfo, error) {
	key := srcLabel + "_" + edgeLabel + "_" + dstLabel
	ei, ok := g.edges[key]
	if !ok {
		return nil, dtype.NewKeyError("edge triple", key)
	}
	return ei, nil
}

// VertexLabels returns every declared vertex label.
func (g *GraphInfo) VertexLabels() []string {
	out := make([]string, 0, len(g.vertices))
	for l := range g.vertices {
		out = append(out, l)
	}
	return out
}
