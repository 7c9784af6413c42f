package cmd

import (
	"fmt"

	"github.com/hanskasan/booksim2/pkg/host"
	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/spf13/cobra"
)

var (
	bindSources sourceFlags
	bindOutput  string
	bindName    string
	bindExplain bool
)

var bindCmd = &cobra.Command{
	Use:   "bind",
	Short: "Merge parameter sets into the component's parameter map",
	Long: `Merge parameter sets in priority order (stored profile, files, env file,
environment, --set), fill defaults, validate and print the resolved
parameters of one booksim2 component.`,
	Example: `  booksim-params bind -f dragonfly.yaml --set num_vcs=4
  booksim-params bind --profile dragonfly-min-adapt -o sst --name net_sim`,
	Args: cobra.NoArgs,
	RunE: runBind,
}

func init() {
	bindSources.register(bindCmd)
	bindCmd.Flags().StringVarP(&bindOutput, "output", "o", "yaml", "output format (yaml, json, sst, env)")
	bindCmd.Flags().StringVar(&bindName, "name", "net_sim", "component name used in sst output")
	bindCmd.Flags().BoolVar(&bindExplain, "explain", false, "print where each value came from to stderr")
}

func runBind(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(bindOutput, outputFormats...); err != nil {
		return err
	}

	schema := params.Default()
	sources, err := bindSources.collect(schema)
	if err != nil {
		return err
	}

	r, err := params.Bind(schema, sets(sources)...)
	if err != nil {
		return fmt.Errorf("failed to bind parameters: %w", err)
	}

	if bindExplain {
		explain(cmd.ErrOrStderr(), r, sources)
	}
	return writeComponents(cmd.OutOrStdout(), bindOutput, host.NewComponent(bindName, r))
}
