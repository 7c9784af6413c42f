package profile

import (
	"fmt"
	"strings"

	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/joho/godotenv"
)

// DefaultEnvPrefix prefixes parameter names in the environment, e.g.
// BOOKSIM_NUM_VCS=2 sets num_vcs.
const DefaultEnvPrefix = "BOOKSIM_"

// EnvKey returns the environment variable that carries a parameter.
func EnvKey(prefix, name string) string {
	return prefix + strings.ToUpper(name)
}

// FromEnviron collects the parameters of schema set in environ (KEY=VALUE
// pairs as returned by os.Environ). The process environment is shared with
// unrelated settings, so only variables naming a declared parameter are
// taken.
func FromEnviron(schema *params.Schema, prefix string, environ []string) params.ParameterSet {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			values[k] = v
		}
	}

	set := params.ParameterSet{}
	for _, name := range schema.AllNames() {
		if v, ok := values[EnvKey(prefix, name)]; ok {
			set[name] = v
		}
	}
	return set
}

// LoadEnvFile reads a .env file into a ParameterSet. Unlike the process
// environment the file is dedicated to parameters, so every entry is kept
// and unknown names surface when the set is bound. The prefix is optional
// on each key.
func LoadEnvFile(prefix, path string) (params.ParameterSet, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	set := make(params.ParameterSet, len(env))
	for k, v := range env {
		set[strings.ToLower(strings.TrimPrefix(k, prefix))] = v
	}
	return set, nil
}
