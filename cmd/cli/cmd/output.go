package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/hanskasan/booksim2/pkg/host"
	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/hanskasan/booksim2/pkg/profile"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output formats of bind and batch
var outputFormats = []string{"yaml", "json", "sst", "env"}

func checkFormat(format string, allowed ...string) error {
	if !slices.Contains(allowed, format) {
		return fmt.Errorf("unknown output format %q (use one of %v)", format, allowed)
	}
	return nil
}

// writeComponents writes the components in the requested format
func writeComponents(w io.Writer, format string, components ...host.Component) error {
	switch format {
	case "sst":
		return host.RenderSST(w, components...)

	case "yaml", "json":
		var v interface{} = components
		if len(components) == 1 {
			v = components[0].Params
		}
		return encode(w, format, v)

	case "env":
		if len(components) != 1 {
			return fmt.Errorf("env output holds a single component, got %d", len(components))
		}
		env := make(map[string]string, len(components[0].Params))
		for k, v := range components[0].Params {
			env[profile.EnvKey(profile.DefaultEnvPrefix, k)] = v
		}
		out, err := godotenv.Marshal(env)
		if err != nil {
			return fmt.Errorf("failed to marshal env output: %w", err)
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	return checkFormat(format, outputFormats...)
}

func encode(w io.Writer, format string, v interface{}) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal yaml output: %w", err)
	}
	return enc.Close()
}

// explain writes where every resolved value came from
func explain(w io.Writer, r *params.Resolved, sources []source) {
	table := logger.NewTable("PARAMETER", "VALUE", "SOURCE")
	for _, name := range r.Names() {
		v, _ := r.Get(name)
		table.AddRow(name, v.String(), originLabel(sources, r.Origin(name)))
	}
	table.Fprint(w, false)
}
