package cmd

import (
	"fmt"

	"github.com/hanskasan/booksim2/pkg/config"
	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/hanskasan/booksim2/pkg/profile"
	"github.com/hanskasan/booksim2/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	promptFile string
	promptSave string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Build a parameter set interactively",
	Long: `Ask for every booksim2 parameter and write the answers as a YAML profile.
Set ` + utils.SkipPromptsEnv + `=true to take values from ` + profile.DefaultEnvPrefix + `<NAME>
variables and defaults without prompting.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().StringVarP(&promptFile, "output", "o", "", "write the profile to this file instead of stdout")
	promptCmd.Flags().StringVar(&promptSave, "save", "", "also store the answers as a named profile")
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	schema := params.Default()

	set, err := utils.PromptForParameters(schema)
	if err != nil {
		return fmt.Errorf("failed to get parameters: %w", err)
	}

	// VC minimums can only be checked once every answer is in
	if _, err := params.Bind(schema, set); err != nil {
		return fmt.Errorf("answers do not form a valid configuration: %w", err)
	}

	if promptSave != "" {
		store, path, err := loadStore()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
		if err := store.Add(config.Profile{Name: promptSave, Params: set}, false); err != nil {
			return err
		}
		if err := config.SaveProfilesToFile(store, path); err != nil {
			return fmt.Errorf("failed to save profiles: %w", err)
		}
		logger.Successf("Profile %s saved", promptSave)
	}

	if promptFile != "" {
		if err := profile.WriteYAML(promptFile, set); err != nil {
			return err
		}
		logger.Successf("Profile written to %s", promptFile)
		return nil
	}
	return encode(cmd.OutOrStdout(), "yaml", map[string]interface{}(set))
}
