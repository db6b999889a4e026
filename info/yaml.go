package info

import (
	"path"

	"github.com/Thespica/GraphAr/dtype"
	"gopkg.in/yaml.v3"
)

// graphYAML mirrors the required fields of a *.graph.yml file (spec §6).
type graphYAML struct {
	Name     string   `yaml:"name"`
	Prefix   string   `yaml:"prefix"`
	Version  string   `yaml:"version"`
	Vertices []string `yaml:"vertices"`
	Edges    []string `yaml:"edges"`
}

// adjListYAML is the wire shape of one edge.adj_lists entry; UnmarshalYAML
// on AdjListVariant decodes into this and resolves Type from
// ordered+aligned_by.
type adjListYAML struct {
	Ordered        bool            `yaml:"ordered"`
	AlignedBy      string          `yaml:"aligned_by"`
	FileType       dtype.FileFormat `yaml:"file_type"`
	Prefix         string          `yaml:"prefix"`
	PropertyGroups []PropertyGroup `yaml:"property_groups"`
}

// UnmarshalYAML resolves the "ordered"/"aligned_by" pair into an
// AdjListType so callers of AdjListVariant never see the raw YAML fields.
func (v *AdjListVariant) UnmarshalYAML(value *yaml.Node) error {
	var raw adjListYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	t, err := ParseAdjListType(raw.Ordered, raw.AlignedBy)
	if err != nil {
		return err
	}
	v.Type = t
	v.Prefix = raw.Prefix
	v.FileType = raw.FileType
	v.PropertyGroups = raw.PropertyGroups
	v.rawOrdered = raw.Ordered
	v.rawAlignedBy = raw.AlignedBy
	return nil
}

// LoadGraphInfo reads a *.graph.yml file at graphYamlPath on fs, then loads
// every vertex and edge info it references, relative to graphYamlPath's
// directory (spec §6's graph.vertices/graph.edges relpath lists).
func LoadGraphInfo(fs Filesystem, graphYamlPath string) (*GraphInfo, error) {
	raw, err := readAll(fs, graphYamlPath)
	if err != nil {
		return nil, dtype.WrapIO("reading "+graphYamlPath, err)
	}
	var gy graphYAML
	if err := yaml.Unmarshal(raw, &gy); err != nil {
		return nil, dtype.WrapYaml(graphYamlPath, err)
	}
	if _, err := ParseInfoVersion(gy.Version); err != nil {
		return nil, err
	}

	dir := path.Dir(graphYamlPath)
	gi := NewGraphInfo(gy.Name, gy.Prefix, gy.Version)

	for _, rel := range gy.Vertices {
		vi, err := LoadVertexInfo(fs, path.Join(dir, rel))
		if err != nil {
			return nil, err
		}
		gi.AddVertexInfo(vi)
	}
	for _, rel := range gy.Edges {
		ei, err := LoadEdgeInfo(fs, path.Join(dir, rel))
		if err != nil {
			return nil, err
		}
		gi.AddEdgeInfo(ei)
	}
	return gi, nil
}

// LoadVertexInfo reads one *.vertex.yml file.
func LoadVertexInfo(fs Filesystem, p string) (*VertexInfo, error) {
	raw, err := readAll(fs, p)
	if err != nil {
		return nil, dtype.WrapIO("reading "+p, err)
	}
	vi := &VertexInfo{vertexCount: -1}
	if err := yaml.Unmarshal(raw, vi); err != nil {
		return nil, dtype.WrapYaml(p, err)
	}
	if vi.ChunkSize <= 0 {
		return nil, dtype.NewInvalidError("LoadVertexInfo", "chunk_size must be > 0")
	}
	if _, err := ParseInfoVersion(vi.Version); err != nil {
		return nil, err
	}
	return vi, nil
}

// LoadEdgeInfo reads one *.edge.yml file.
func LoadEdgeInfo(fs Filesystem, p string) (*EdgeInfo, error) {
	raw, err := readAll(fs, p)
	if err != nil {
		return nil, dtype.WrapIO("reading "+p, err)
	}
	ei := &EdgeInfo{}
	if err := yaml.Unmarshal(raw, ei); err != nil {
		return nil, dtype.WrapYaml(p, err)
	}
	if ei.ChunkSize <= 0 || ei.SrcChunkSize <= 0 || ei.DstChunkSize <= 0 {
		return nil, dtype.NewInvalidError("LoadEdgeInfo", "chunk sizes must all be > 0")
	}
	if _, err := ParseInfoVersion(ei.Version); err != nil {
		return nil, err
	}
	return ei, nil
}
