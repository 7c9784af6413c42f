package cmd

import (
	"fmt"
	"os"

	"github.com/hanskasan/booksim2/pkg/config"
	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/hanskasan/booksim2/pkg/profile"
	"github.com/spf13/cobra"
)

// sourceFlags are the parameter sources shared by bind, validate and
// profile add
type sourceFlags struct {
	files     []string
	profile   string
	noProfile bool
	env       bool
	envFile   string
	sets      []string
}

// source is one parameter set and where it came from
type source struct {
	label string
	set   params.ParameterSet
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "profile file (YAML or JSON); repeatable, later files win")
	cmd.Flags().StringVar(&f.profile, "profile", "", "stored profile to start from (default is the selected profile)")
	cmd.Flags().BoolVar(&f.noProfile, "no-profile", false, "ignore the selected profile")
	cmd.Flags().BoolVar(&f.env, "env", false, "read "+profile.DefaultEnvPrefix+"<NAME> variables from the environment")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "dotenv file with parameters")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "name=value override; repeatable, highest priority")
}

// collect loads every requested source in priority order, lowest first:
// profile, files, env file, environment, --set.
func (f *sourceFlags) collect(schema *params.Schema) ([]source, error) {
	var sources []source

	if !f.noProfile {
		store, _, err := loadStore()
		if err != nil {
			return nil, fmt.Errorf("failed to load profiles: %w", err)
		}
		p, err := selectProfile(store, f.profile)
		if err != nil {
			return nil, err
		}
		if p != nil {
			sources = append(sources, source{label: "profile " + p.Name, set: p.Params})
		}
	}

	for _, path := range f.files {
		set, err := profile.LoadFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{label: path, set: set})
	}

	if f.envFile != "" {
		set, err := profile.LoadEnvFile(profile.DefaultEnvPrefix, f.envFile)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{label: f.envFile, set: set})
	}

	if f.env {
		sources = append(sources, source{
			label: "environment",
			set:   profile.FromEnviron(schema, profile.DefaultEnvPrefix, os.Environ()),
		})
	}

	if len(f.sets) > 0 {
		set, err := profile.ParseAssignments(f.sets)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{label: "--set", set: set})
	}

	for i, s := range sources {
		logger.WithField("set", i).Debugf("source %s: %d parameters", s.label, len(s.set))
	}
	return sources, nil
}

// selectProfile returns the named profile, or the store's selected one
// when name is empty. It returns nil when neither is set.
func selectProfile(store *config.Store, name string) (*config.Profile, error) {
	if name == "" {
		name = store.Selected
	}
	if name == "" {
		return nil, nil
	}
	return store.Find(name)
}

func sets(sources []source) []params.ParameterSet {
	out := make([]params.ParameterSet, len(sources))
	for i, s := range sources {
		out[i] = s.set
	}
	return out
}

// originLabel names the source a resolved value came from
func originLabel(sources []source, o params.Origin) string {
	if i := int(o); i >= 0 && i < len(sources) {
		return sources[i].label
	}
	return o.String()
}
