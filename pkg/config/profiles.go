package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/hanskasan/booksim2/pkg/params"
	"gopkg.in/yaml.v3"
)

// DirName is the per-user settings directory below $HOME.
const DirName = ".booksim-params"

// Profile is a named, stored ParameterSet
type Profile struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description,omitempty"`
	Params      params.ParameterSet `yaml:"params"`
}

// Store holds the saved profiles
type Store struct {
	Profiles []Profile `yaml:"profiles"`
	Selected string    `yaml:"selected,omitempty"`
}

// Dir returns the settings directory of the current user
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

// LoadProfiles loads the profile store from the default location
func LoadProfiles() (*Store, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadProfilesFromFile(filepath.Join(dir, "profiles.yaml"))
}

// LoadProfilesFromFile loads the profile store from a specific file
func LoadProfilesFromFile(path string) (*Store, error) {
	// If file doesn't exist, return the built-in profiles
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return getDefaultStore(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile store: %w", err)
	}

	var store Store
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse profile store: %w", err)
	}

	return &store, nil
}

// SaveProfiles saves the profile store to the default location
func SaveProfiles(store *Store) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return SaveProfilesToFile(store, filepath.Join(dir, "profiles.yaml"))
}

// SaveProfilesToFile saves the profile store to path, creating its directory
func SaveProfilesToFile(store *Store, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to marshal profile store: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile store: %w", err)
	}

	return nil
}

// Find returns the profile called name
func (s *Store) Find(name string) (*Profile, error) {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			return &s.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile %s not found", name)
}

// Add stores p, replacing a profile of the same name when replace is set
func (s *Store) Add(p Profile, replace bool) error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	for i := range s.Profiles {
		if s.Profiles[i].Name == p.Name {
			if !replace {
				return fmt.Errorf("profile %s already exists", p.Name)
			}
			s.Profiles[i] = p
			return nil
		}
	}
	s.Profiles = append(s.Profiles, p)
	return nil
}

// Remove deletes the profile called name
func (s *Store) Remove(name string) error {
	i := slices.IndexFunc(s.Profiles, func(p Profile) bool { return p.Name == name })
	if i < 0 {
		return fmt.Errorf("profile %s not found", name)
	}
	s.Profiles = slices.Delete(s.Profiles, i, i+1)
	if s.Selected == name {
		s.Selected = ""
	}
	return nil
}

// Names lists the stored profile names in store order
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for _, p := range s.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// getDefaultStore returns the profiles of the two reference dragonfly
// configurations, which differ only in num_motif_nodes
func getDefaultStore() *Store {
	base := params.ParameterSet{
		params.BookSimClock:    "1GHz",
		params.Topology:        "dragonfly",
		params.RoutingFunction: "min_adapt",
		params.PacketSize:      1,
		params.NumVCs:          2,
	}
	motif := params.ParameterSet{params.NumMotifNodes: 0}
	for k, v := range base {
		motif[k] = v
	}

	return &Store{
		Profiles: []Profile{
			{
				Name:        "dragonfly-min-adapt",
				Description: "Dragonfly with minimal adaptive routing, 2 VCs",
				Params:      base,
			},
			{
				Name:        "dragonfly-min-adapt-motif",
				Description: "dragonfly-min-adapt with an explicit motif node count",
				Params:      motif,
			},
		},
	}
}
