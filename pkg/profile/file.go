package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hanskasan/booksim2/pkg/params"
	"gopkg.in/yaml.v3"
)

// Document is one profile file: an optional instance name and the
// parameters it sets.
//
// Two layouts are accepted. A flat mapping of parameter names:
//
//	topology: dragonfly
//	num_vcs: 2
//
// or a named component, close to how an SST script declares one:
//
//	name: router0
//	params:
//	  topology: dragonfly
//	  num_vcs: 2
type Document struct {
	Path   string
	Name   string
	Params params.ParameterSet
}

// Extensions recognised by LoadDir.
var Extensions = []string{".yaml", ".yml", ".json"}

// LoadFile loads the parameters of a profile file.
func LoadFile(path string) (params.ParameterSet, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return doc.Params, nil
}

// LoadDocument loads a profile file. JSON files are decoded with numbers
// kept as json.Number; everything else is read as YAML.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var raw map[string]interface{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	doc, err := newDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	doc.Path = path
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

func newDocument(raw map[string]interface{}) (*Document, error) {
	nested, ok := raw["params"]
	if !ok {
		set := make(params.ParameterSet, len(raw))
		for k, v := range raw {
			set[k] = v
		}
		return &Document{Params: set}, nil
	}

	doc := &Document{}
	for k, v := range raw {
		switch k {
		case "params":
		case "name":
			name, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("name must be a string, got %T", v)
			}
			doc.Name = name
		default:
			return nil, fmt.Errorf("unexpected top-level key %q next to params", k)
		}
	}

	switch p := nested.(type) {
	case nil:
		doc.Params = params.ParameterSet{}
	case map[string]interface{}:
		doc.Params = params.ParameterSet(p)
	default:
		return nil, fmt.Errorf("params must be a mapping, got %T", nested)
	}
	return doc, nil
}

// LoadDir loads every profile file directly inside dir, in lexical order
// of file name.
func LoadDir(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile directory: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || !slices.Contains(Extensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			continue
		}
		doc, err := LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// WriteYAML writes set as a flat YAML profile with keys in sorted order.
func WriteYAML(path string, set params.ParameterSet) error {
	data, err := yaml.Marshal(map[string]interface{}(set))
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}
