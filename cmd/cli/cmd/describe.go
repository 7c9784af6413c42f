package cmd

import (
	"fmt"
	"strings"

	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/spf13/cobra"
)

var describeRouting bool

var describeCmd = &cobra.Command{
	Use:   "describe [parameter]",
	Short: "Show the booksim2 parameter schema",
	Long: `Without arguments list every parameter with its type, default and legal
values. With a parameter name show that parameter in detail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().BoolVar(&describeRouting, "routing", false, "show the legal routing functions of each topology")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	schema := params.Default()

	if describeRouting {
		printRoutingTable(params.BookSimRouting())
		return nil
	}

	if len(args) == 0 {
		table := logger.NewTable("NAME", "TYPE", "DEFAULT", "DOMAIN")
		for _, name := range schema.AllNames() {
			spec, err := schema.Describe(name)
			if err != nil {
				return err
			}
			table.AddRow(name, string(spec.Type), defaultText(spec), spec.Domain())
		}
		table.Print()
		return nil
	}

	spec, err := schema.Describe(args[0])
	if err != nil {
		return err
	}

	logger.LogSection(spec.Name)
	logger.LogKeyValue("Description", spec.Description)
	logger.LogKeyValue("Type", spec.Type)
	logger.LogKeyValue("Default", defaultText(spec))
	if spec.Type == params.KindClock && spec.Default != nil {
		logger.LogKeyValue("Frequency", params.MustParseClock(fmt.Sprint(spec.Default)).Humanize())
	}
	logger.LogKeyValue("Domain", spec.Domain())
	if spec.Name == params.Topology || spec.Name == params.RoutingFunction {
		printRoutingTable(params.BookSimRouting())
	}
	return nil
}

func defaultText(spec params.ParameterSpec) string {
	switch {
	case spec.Default != nil:
		return fmt.Sprint(spec.Default)
	case spec.DefaultFrom != "":
		return "= " + spec.DefaultFrom
	default:
		return "(required)"
	}
}

// printRoutingTable lists the routing functions of each topology; a
// suffix gives the minimum VC count where it is above one
func printRoutingTable(t params.RoutingTable) {
	table := logger.NewTable("TOPOLOGY", "ROUTING FUNCTIONS")
	for _, topology := range t.Topologies() {
		var fns []string
		for _, fn := range t.Legal(topology) {
			if vcs := t[topology][fn]; vcs > 1 {
				fn = fmt.Sprintf("%s(%d)", fn, vcs)
			}
			fns = append(fns, fn)
		}
		table.AddRow(topology, strings.Join(fns, " "))
	}
	table.Print()
}
