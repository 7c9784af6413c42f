package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/stretchr/testify/require"
)

func TestLoadProfilesFromMissingFile(t *testing.T) {
	store, err := LoadProfilesFromFile(filepath.Join(t.TempDir(), "profiles.yaml"))
	require.NoError(t, err)
	require.Equal(t, []string{"dragonfly-min-adapt", "dragonfly-min-adapt-motif"}, store.Names())
}

func TestDefaultProfilesBindIdentically(t *testing.T) {
	store := getDefaultStore()

	var serialized []map[string]string
	for _, p := range store.Profiles {
		r, err := params.BindDefault(p.Params)
		require.NoError(t, err, p.Name)
		serialized = append(serialized, params.Serialize(r))
	}
	require.Equal(t, serialized[0], serialized[1])
	require.Equal(t, "0", serialized[0][params.NumMotifNodes])
}

func TestSaveAndLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profiles.yaml")

	store := &Store{}
	require.NoError(t, store.Add(Profile{
		Name:   "torus",
		Params: params.ParameterSet{"topology": "torus", "routing_function": "dim_order", "num_vcs": 4},
	}, false))
	store.Selected = "torus"
	require.NoError(t, SaveProfilesToFile(store, path))

	loaded, err := LoadProfilesFromFile(path)
	require.NoError(t, err)
	require.Equal(t, store, loaded)

	p, err := loaded.Find("torus")
	require.NoError(t, err)
	r, err := params.BindDefault(p.Params)
	require.NoError(t, err)
	require.Equal(t, int64(4), r.Int(params.NumVCs))
}

func TestLoadProfilesInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: {"), 0644))

	_, err := LoadProfilesFromFile(path)
	require.ErrorContains(t, err, "failed to parse profile store")
}

func TestStoreAddFindRemove(t *testing.T) {
	store := getDefaultStore()

	_, err := store.Find("mesh")
	require.ErrorContains(t, err, "not found")

	mesh := Profile{Name: "mesh", Params: params.ParameterSet{"topology": "mesh", "routing_function": "dim_order"}}
	require.NoError(t, store.Add(mesh, false))
	require.ErrorContains(t, store.Add(mesh, false), "already exists")

	mesh.Description = "2D mesh"
	require.NoError(t, store.Add(mesh, true))
	p, err := store.Find("mesh")
	require.NoError(t, err)
	require.Equal(t, "2D mesh", p.Description)

	store.Selected = "mesh"
	require.NoError(t, store.Remove("mesh"))
	require.Empty(t, store.Selected)
	require.ErrorContains(t, store.Remove("mesh"), "not found")
	require.Len(t, store.Profiles, 2)

	require.ErrorContains(t, store.Add(Profile{}, false), "name is required")
}
