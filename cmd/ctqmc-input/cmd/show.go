package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/picogrid/ctqmc-input/pkg/ctqmc"
	"github.com/picogrid/ctqmc-input/pkg/logger"
)

var showCmd = &cobra.Command{
	Use:   "show <solver>",
	Short: "Show a solver's parameters and defaults",
	Args:  cobra.ExactArgs(1),
	RunE:  showSolver,
}

func init() {
	showCmd.Flags().Bool("extra", false, "only show the keys added over the generic set")
}

var kindColors = map[string]*color.Color{
	ctqmc.KindInt.String():    color.New(color.FgCyan),
	ctqmc.KindFloat.String():  color.New(color.FgMagenta),
	ctqmc.KindString.String(): color.New(color.FgYellow),
}

func showSolver(cmd *cobra.Command, args []string) error {
	v, err := ctqmc.ParseVariant(args[0])
	if err != nil {
		return err
	}
	extraOnly, _ := cmd.Flags().GetBool("extra")

	base := v.Baseline()
	keys := base.Keys()
	if extraOnly {
		keys = v.Extra()
	}

	table := logger.NewTable("KEY", "TYPE", "DEFAULT")
	table.ColorColumn(1, func(cell string) *color.Color { return kindColors[cell] })
	for _, k := range keys {
		def, _ := base.Get(k)
		table.AddRow(k, def.Kind().String(), def.String())
	}

	return table.Fprint(cmd.OutOrStdout())
}
