package host

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hanskasan/booksim2/pkg/params"
)

// Library and type under which the simulator registers with the host.
const (
	BookSimLibrary = "booksim2"
	BookSimType    = "booksim2"
)

// BookSimTypeName is the fully qualified component type, "library.type".
const BookSimTypeName = BookSimLibrary + "." + BookSimType

// Component is one configured component instance in the host's terms: a
// (library, type) pair, an instance name and flat text parameters.
type Component struct {
	Library string            `json:"library" yaml:"library" validate:"required,alphanum"`
	Type    string            `json:"type" yaml:"type" validate:"required,alphanum"`
	Name    string            `json:"name" yaml:"name" validate:"required,printascii"`
	Params  map[string]string `json:"params" yaml:"params" validate:"required"`
}

var validate = validator.New()

// NewComponent builds a booksim2 component from a resolved configuration.
func NewComponent(name string, r *params.Resolved) Component {
	return Component{
		Library: BookSimLibrary,
		Type:    BookSimType,
		Name:    name,
		Params:  params.Serialize(r),
	}
}

// TypeName returns "library.type".
func (c Component) TypeName() string {
	return c.Library + "." + c.Type
}

// Validate checks the descriptor fields the host needs to instantiate the
// component.
func (c Component) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid component %q: %w", c.Name, err)
	}
	return nil
}

// SplitTypeName splits "library.type".
func SplitTypeName(typeName string) (library, typ string, err error) {
	library, typ, ok := strings.Cut(typeName, ".")
	if !ok || library == "" || typ == "" {
		return "", "", fmt.Errorf("component type %q is not of the form library.type", typeName)
	}
	return library, typ, nil
}
