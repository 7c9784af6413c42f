package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hanskasan/booksim2/pkg/host"
	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/hanskasan/booksim2/pkg/profile"
	"github.com/hanskasan/booksim2/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	batchRecursive bool
	batchOutput    string
	batchProfile   string
	batchSets      []string
)

var batchCmd = &cobra.Command{
	Use:   "batch DIR",
	Short: "Bind every profile in a directory into one SST script",
	Long: `Treat every profile file in DIR as one component instance, bind them all
concurrently and write a single configuration. An instance file may carry
its own name (name: / params:); otherwise the file name is used.`,
	Example: `  booksim-params batch ./instances --profile dragonfly-min-adapt > network.py`,
	Args:    cobra.ExactArgs(1),
	RunE:    runBatch,
}

func init() {
	batchCmd.Flags().BoolVarP(&batchRecursive, "recursive", "r", false, "also read profiles in subdirectories")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "sst", "output format (sst, yaml, json)")
	batchCmd.Flags().StringVar(&batchProfile, "profile", "", "stored profile every instance starts from")
	batchCmd.Flags().StringArrayVar(&batchSets, "set", nil, "name=value applied to every instance; repeatable, highest priority")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := checkFormat(batchOutput, "sst", "yaml", "json"); err != nil {
		return err
	}

	docs, err := utils.LoadProfiles(args[0], batchRecursive)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no profiles found in %s", args[0])
	}

	var base, overrides params.ParameterSet
	if batchProfile != "" {
		store, _, err := loadStore()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
		p, err := store.Find(batchProfile)
		if err != nil {
			return err
		}
		base = p.Params
	}
	if overrides, err = profile.ParseAssignments(batchSets); err != nil {
		return err
	}

	instances := make([]host.Instance, len(docs))
	for i, doc := range docs {
		logger.WithField("file", doc.Path).Debugf("instance %s", doc.Name)
		instances[i] = host.Instance{
			Name: doc.Name,
			Sets: []params.ParameterSet{base, doc.Params, overrides},
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var components []host.Component
	err = logger.WithSpinner(fmt.Sprintf("Binding %d instances", len(instances)), func() error {
		var err error
		components, err = host.BuildAll(ctx, host.DefaultRegistry, instances)
		return err
	})
	if err != nil {
		return err
	}

	return writeComponents(cmd.OutOrStdout(), batchOutput, components...)
}
