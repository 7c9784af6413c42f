package cmd

import (
	"fmt"

	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var validateSources sourceFlags

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check parameter sets without printing the result",
	Long:  `Bind the given parameter sets and report every problem found.`,
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	validateSources.register(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schema := params.Default()
	sources, err := validateSources.collect(schema)
	if err != nil {
		return err
	}

	r, err := params.Bind(schema, sets(sources)...)
	if err != nil {
		problems := multierr.Errors(err)
		for _, problem := range problems {
			logger.Error(problem)
		}
		return fmt.Errorf("%d problem(s) found", len(problems))
	}

	logger.Successf("configuration is valid (%d parameters from %d sources)", r.Len(), len(sources))
	return nil
}
