package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hanskasan/booksim2/pkg/config"
	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "booksim-params",
	Short: "Parameter binder for the booksim2 SST component",
	Long: `booksim-params validates and merges parameter sets for the booksim2
network simulator component, fills in defaults, checks that the routing
function suits the topology and emits the flat parameter map SST expects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.booksim-params/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("profiles", "", "profile store (default is $HOME/.booksim-params/profiles.yaml)")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("profiles", rootCmd.PersistentFlags().Lookup("profiles"))

	// Add commands
	rootCmd.AddCommand(bindCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(listCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		viper.AddConfigPath(filepath.Join("$HOME", config.DirName))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// BOOKSIM_PARAMS_LOG_LEVEL, BOOKSIM_PARAMS_NO_COLOR, ...
	viper.SetEnvPrefix("BOOKSIM_PARAMS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Configure logger based on flags
	logger.SetLevel(logger.ParseLevel(viper.GetString("log_level")))
	if viper.GetBool("no_color") {
		logger.SetNoColor(true)
	}
	logger.Debugf("config file: %s", viper.ConfigFileUsed())
	return nil
}

// loadStore opens the profile store named by --profiles or the default one
func loadStore() (*config.Store, string, error) {
	path := viper.GetString("profiles")
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, "", err
		}
		path = filepath.Join(dir, "profiles.yaml")
	}
	store, err := config.LoadProfilesFromFile(path)
	return store, path, err
}
