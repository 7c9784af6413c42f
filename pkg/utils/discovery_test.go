package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoverProfiles(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{
		"b.yaml",
		"a/x.json",
		"a/notes.txt",
		".git/config.yaml",
		"c/d/e.YML",
	} {
		path := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		content := "num_vcs: 2\n"
		if filepath.Ext(p) == ".json" {
			content = `{"num_vcs": 2}`
		}
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	paths, err := DiscoverProfiles(root)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a/x.json"),
		filepath.Join(root, "b.yaml"),
		filepath.Join(root, "c/d/e.YML"),
	}, paths)

	docs, err := LoadProfiles(root, true)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, "x", docs[0].Name)

	docs, err = LoadProfiles(root, false)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "b", docs[0].Name)
}

func TestDiscoverProfilesMissingRoot(t *testing.T) {
	_, err := DiscoverProfiles(filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, "failed to scan for profiles")
}
