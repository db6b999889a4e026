package info

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs billy.Filesystem, path, content string) {
	t.Helper()
	f, err := fs.Create(path)
	require.NoError(t, err)
	_, err = f.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

const sampleVertexYAML = `
label: person
chunk_size: 100
prefix: person
version: gar/v1
property_groups:
  - prefix: id
    file_type: csv
    properties:
      - name: id
        data_type: int64
        is_primary: true
  - prefix: firstName_lastName_gender
    file_type: csv
    properties:
      - name: firstName
        data_type: string
        is_primary: false
      - name: lastName
        data_type: string
        is_primary: false
      - name: gender
        data_type: string
        is_primary: false
`

const sampleEdgeYAML = `
src_label: person
edge_label: knows
dst_label: person
chunk_size: 1024
src_chunk_size: 100
dst_chunk_size: 100
directed: false
prefix: person_knows_person
version: gar/v1
adj_lists:
  - ordered: true
    aligned_by: src
    file_type: csv
    prefix: ordered_by_source
`

const sampleGraphYAML = `
name: ldbc_sample
prefix: ""
version: gar/v1
vertices:
  - person.vertex.yml
edges:
  - person_knows_person.edge.yml
`

func TestLoadVertexInfo(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "person.vertex.yml", sampleVertexYAML)

	vi, err := LoadVertexInfo(fs, "person.vertex.yml")
	require.NoError(t, err)
	require.Equal(t, "person", vi.Label)
	require.Equal(t, int64(100), vi.ChunkSize)
	require.Len(t, vi.PropertyGroups, 2)

	pg, ok := vi.PropertyGroupFor("firstName")
	require.True(t, ok)
	require.Equal(t, "firstName_lastName_gender", pg.Prefix)

	prop, ok := pg.Property("firstName")
	require.True(t, ok)
	dt, err := prop.Type()
	require.NoError(t, err)
	require.Equal(t, "string", dt.String())
}

func TestLoadVertexInfoRejectsZeroChunkSize(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "bad.vertex.yml", "label: person\nchunk_size: 0\nprefix: person\nversion: gar/v1\n")
	_, err := LoadVertexInfo(fs, "bad.vertex.yml")
	require.Error(t, err)
}

func TestLoadEdgeInfoResolvesAdjListVariant(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "person_knows_person.edge.yml", sampleEdgeYAML)

	ei, err := LoadEdgeInfo(fs, "person_knows_person.edge.yml")
	require.NoError(t, err)
	require.Equal(t, "person_person_knows_person", "person_"+ei.Triple())

	v, ok := ei.Variant(OrderedBySource)
	require.True(t, ok)
	require.Equal(t, "ordered_by_source", v.Prefix)
}

func TestLoadGraphInfoLoadsReferencedFiles(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "ldbc_sample.graph.yml", sampleGraphYAML)
	writeFile(t, fs, "person.vertex.yml", sampleVertexYAML)
	writeFile(t, fs, "person_knows_person.edge.yml", sampleEdgeYAML)

	gi, err := LoadGraphInfo(fs, "ldbc_sample.graph.yml")
	require.NoError(t, err)
	require.Equal(t, []string{"person"}, gi.VertexLabels())

	vi, err := gi.VertexInfo("person")
	require.NoError(t, err)
	require.Equal(t, int64(100), vi.ChunkSize)

	ei, err := gi.EdgeInfo("person", "knows", "person")
	require.NoError(t, err)
	require.Equal(t, int64(1024), ei.ChunkSize)
}
