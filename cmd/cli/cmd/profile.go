package cmd

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hanskasan/booksim2/pkg/config"
	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored parameter profiles",
	Long:  `Manage named parameter sets stored in the profile store`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	RunE:  listProfiles,
}

var profileShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a profile and its resolved parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  showProfile,
}

var (
	profileAddSources     sourceFlags
	profileAddDescription string
	profileAddForce       bool
)

var profileAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Store a new profile",
	Long: `Merge the given sources into one parameter set, check that it binds and
store it under NAME.`,
	Example: `  booksim-params profile add torus-4vc --set topology=torus --set routing_function=dim_order --set num_vcs=4`,
	Args:    cobra.ExactArgs(1),
	RunE:    addProfile,
}

var profileRemoveYes bool

var profileRemoveCmd = &cobra.Command{
	Use:   "remove [NAME]",
	Short: "Remove a profile",
	Args:  cobra.MaximumNArgs(1),
	RunE:  removeProfile,
}

var profileUseCmd = &cobra.Command{
	Use:   "use [NAME]",
	Short: "Select the profile bind and validate start from",
	Long:  `Select the profile bind and validate start from. Without NAME the selection is cleared.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  useProfile,
}

func init() {
	profileAddSources.register(profileAddCmd)
	profileAddCmd.Flags().StringVarP(&profileAddDescription, "description", "d", "", "profile description")
	profileAddCmd.Flags().BoolVar(&profileAddForce, "force", false, "replace an existing profile")
	profileRemoveCmd.Flags().BoolVarP(&profileRemoveYes, "yes", "y", false, "do not ask for confirmation")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	profileCmd.AddCommand(profileUseCmd)
}

func listProfiles(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	if len(store.Profiles) == 0 {
		fmt.Println("No profiles stored")
		return nil
	}

	table := logger.NewTable("NAME", "PARAMS", "SELECTED", "DESCRIPTION")
	for _, p := range store.Profiles {
		selected := ""
		if p.Name == store.Selected {
			selected = logger.IconCheck
		}
		table.AddRow(p.Name, strconv.Itoa(len(p.Params)), selected, p.Description)
	}
	table.Print()
	return nil
}

func showProfile(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	p, err := store.Find(args[0])
	if err != nil {
		return err
	}

	r, err := params.BindDefault(p.Params)
	if err != nil {
		return fmt.Errorf("profile %s does not bind: %w", p.Name, err)
	}

	logger.LogSection(p.Name)
	if p.Description != "" {
		logger.LogKeyValue("Description", p.Description)
	}
	explain(cmd.OutOrStdout(), r, []source{{label: "profile", set: p.Params}})
	return nil
}

func addProfile(cmd *cobra.Command, args []string) error {
	schema := params.Default()
	sources, err := profileAddSources.collect(schema)
	if err != nil {
		return err
	}

	merged := params.ParameterSet{}
	for _, s := range sources {
		maps.Copy(merged, s.set)
	}
	if _, err := params.Bind(schema, merged); err != nil {
		return fmt.Errorf("profile does not bind: %w", err)
	}

	store, path, err := loadStore()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	p := config.Profile{Name: args[0], Description: profileAddDescription, Params: merged}
	if err := store.Add(p, profileAddForce); err != nil {
		return err
	}

	// Save config
	if err := config.SaveProfilesToFile(store, path); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	logger.Successf("Profile %s added (%d parameters)", p.Name, len(merged))
	return nil
}

func removeProfile(cmd *cobra.Command, args []string) error {
	store, path, err := loadStore()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	if len(store.Profiles) == 0 {
		fmt.Println("No profiles to remove")
		return nil
	}

	var selected string
	if len(args) == 1 {
		selected = args[0]
	} else {
		prompt := &survey.Select{
			Message: "Select profile to remove:",
			Options: store.Names(),
		}
		if err := survey.AskOne(prompt, &selected); err != nil {
			return err
		}
	}

	if !profileRemoveYes {
		// Confirm removal
		var confirm bool
		confirmPrompt := &survey.Confirm{
			Message: fmt.Sprintf("Are you sure you want to remove %s?", selected),
			Default: false,
		}
		if err := survey.AskOne(confirmPrompt, &confirm); err != nil {
			return err
		}
		if !confirm {
			fmt.Println("Removal cancelled")
			return nil
		}
	}

	if err := store.Remove(selected); err != nil {
		return err
	}

	if err := config.SaveProfilesToFile(store, path); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	logger.Successf("Profile %s removed", selected)
	return nil
}

func useProfile(cmd *cobra.Command, args []string) error {
	store, path, err := loadStore()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	store.Selected = ""
	if len(args) == 1 {
		if _, err := store.Find(args[0]); err != nil {
			return err
		}
		store.Selected = args[0]
	}

	if err := config.SaveProfilesToFile(store, path); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	if store.Selected == "" {
		logger.Success("Profile selection cleared")
	} else {
		logger.Successf("Profile %s selected", store.Selected)
	}
	return nil
}
