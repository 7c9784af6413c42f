package cmd

import (
	"fmt"
	"strconv"

	"github.com/hanskasan/booksim2/pkg/host"
	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known component types",
	Long:  `List the component types whose parameters this tool can bind`,
	Args:  cobra.NoArgs,
	RunE:  listComponentTypes,
}

func listComponentTypes(cmd *cobra.Command, args []string) error {
	types := host.DefaultRegistry.List()
	if len(types) == 0 {
		fmt.Println("No component types registered")
		return nil
	}

	table := logger.NewTable("TYPE", "PARAMETERS", "CONSTRAINTS")
	for _, typeName := range types {
		schema, err := host.DefaultRegistry.Get(typeName)
		if err != nil {
			return err
		}
		table.AddRow(typeName, strconv.Itoa(len(schema.AllNames())), strconv.Itoa(len(schema.Constraints())))
	}
	table.Print()
	return nil
}
