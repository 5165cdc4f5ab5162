package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/picogrid/ctqmc-input/pkg/ctqmc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported solvers",
	Long:  `List every supported solver with the size of its parameter set`,
	Args:  cobra.NoArgs,
	RunE:  listSolvers,
}

func listSolvers(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKEYS\tADDED\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t----\t-----\t-----------")

	for _, v := range ctqmc.Variants() {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			v,
			v.Baseline().Len(),
			len(v.Extra()),
			v.Description(),
		)
	}

	return w.Flush()
}
