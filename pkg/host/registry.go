package host

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hanskasan/booksim2/pkg/params"
)

// Registry maps component types ("library.type") to the schema of their
// parameters.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]func() *params.Schema
}

// NewRegistry creates an empty component registry
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]func() *params.Schema),
	}
}

// Register adds a component type to the registry
func (r *Registry) Register(typeName string, schema func() *params.Schema) error {
	if _, _, err := SplitTypeName(typeName); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[typeName]; exists {
		return fmt.Errorf("component type %s already registered", typeName)
	}

	r.schemas[typeName] = schema
	return nil
}

// Get returns the schema of a component type
func (r *Registry) Get(typeName string) (*params.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[typeName]
	if !exists {
		return nil, fmt.Errorf("component type %s not found", typeName)
	}

	return schema(), nil
}

// List returns all registered component types in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultRegistry is the global component registry. It knows booksim2.
var DefaultRegistry = NewRegistry()

func init() {
	if err := DefaultRegistry.Register(BookSimTypeName, params.Default); err != nil {
		panic(err)
	}
}
