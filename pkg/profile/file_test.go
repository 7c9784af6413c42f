package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFileFlatYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dragonfly.yaml", `
booksim_clock: 1GHz
topology: dragonfly
routing_function: min_adapt
packet_size: 1
num_vcs: 2
`)

	set, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, params.ParameterSet{
		"booksim_clock":    "1GHz",
		"topology":         "dragonfly",
		"routing_function": "min_adapt",
		"packet_size":      1,
		"num_vcs":          2,
	}, set)

	r, err := params.BindDefault(set)
	require.NoError(t, err)
	require.Equal(t, "2", params.Serialize(r)[params.NumVCs])
}

func TestLoadDocumentNested(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.yml", `
name: router0
params:
  topology: torus
  routing_function: dim_order
`)

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	require.Equal(t, "router0", doc.Name)
	require.Equal(t, path, doc.Path)
	require.Equal(t, params.ParameterSet{"topology": "torus", "routing_function": "dim_order"}, doc.Params)
}

func TestLoadDocumentNameFromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "edge.yaml", "params:\n  num_vcs: 4\n")

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	require.Equal(t, "edge", doc.Name)
}

func TestLoadFileJSONKeepsNumbers(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.json", `{"num_vcs": 2, "booksim_clock": "2GHz"}`)

	set, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, json.Number("2"), set["num_vcs"])

	r, err := params.BindDefault(set)
	require.NoError(t, err)
	require.Equal(t, int64(2), r.Int(params.NumVCs))
}

func TestLoadFileEmpty(t *testing.T) {
	set, err := LoadFile(writeFile(t, t.TempDir(), "empty.yaml", ""))
	require.NoError(t, err)
	require.Empty(t, set)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{"yaml list", "list.yaml", "- num_vcs\n", "failed to parse profile"},
		{"bad json", "bad.json", "{", "failed to parse profile"},
		{"params not a mapping", "p.yaml", "params: [1, 2]\n", "params must be a mapping"},
		{"extra key", "x.yaml", "params: {}\nversion: 2\n", `unexpected top-level key "version"`},
		{"name not a string", "n.yaml", "name: [a]\nparams: {}\n", "name must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, dir, tt.file, tt.content))
			require.ErrorContains(t, err, tt.contains)
		})
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "num_vcs: 2\n")
	writeFile(t, dir, "a.json", `{"num_vcs": 4}`)
	writeFile(t, dir, "README.md", "not a profile")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "c.yaml"), 0755))

	docs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "a", docs[0].Name)
	require.Equal(t, "b", docs[1].Name)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	set := params.ParameterSet{"num_vcs": 2, "topology": "mesh"}
	require.NoError(t, WriteYAML(path, set))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, set, loaded)
}
