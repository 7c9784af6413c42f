package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hanskasan/booksim2/pkg/profile"
)

// DiscoverProfiles finds every profile file below root. Hidden
// directories are skipped. Paths are returned in lexical order.
func DiscoverProfiles(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if slices.Contains(profile.Extensions, strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan for profiles: %w", err)
	}

	slices.Sort(paths)
	return paths, nil
}

// LoadProfiles loads the profile documents found below root. With
// recursive unset only files directly in root are read.
func LoadProfiles(root string, recursive bool) ([]*profile.Document, error) {
	if !recursive {
		return profile.LoadDir(root)
	}

	paths, err := DiscoverProfiles(root)
	if err != nil {
		return nil, err
	}

	docs := make([]*profile.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := profile.LoadDocument(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
