package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/picogrid/ctqmc-input/pkg/ctqmc"
	"github.com/picogrid/ctqmc-input/pkg/logger"
)

var checkOpts stageOptions

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate overrides without writing",
	Long: `Stage overrides and check every key and value type against the solver's
parameter set. Every problem is listed; the exit status is 1 if any.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	addStageFlags(checkCmd, &checkOpts)
}

var statusColors = map[string]*color.Color{
	"ok":          color.New(color.FgGreen),
	"wrong key":   color.New(color.FgRed),
	"wrong value": color.New(color.FgRed),
}

func runCheck(cmd *cobra.Command, _ []string) error {
	p, err := checkOpts.stage()
	if err != nil {
		return err
	}

	problems := make(map[string]error)
	for _, err := range p.Problems() {
		var keyErr *ctqmc.KeyError
		var valErr *ctqmc.ValueError
		switch {
		case errors.As(err, &keyErr):
			problems[keyErr.Key] = err
		case errors.As(err, &valErr):
			problems[valErr.Key] = err
		}
	}

	table := logger.NewTable("KEY", "VALUE", "TYPE", "STATUS")
	table.ColorColumn(3, func(cell string) *color.Color { return statusColors[cell] })
	for _, o := range p.Overrides() {
		status := "ok"
		switch {
		case errors.Is(problems[o.Key], ctqmc.ErrWrongKey):
			status = "wrong key"
		case errors.Is(problems[o.Key], ctqmc.ErrWrongValue):
			status = "wrong value"
		}
		table.AddRow(o.Key, o.Value.String(), o.Value.Kind().String(), status)
	}
	if err := table.Fprint(cmd.OutOrStdout()); err != nil {
		return err
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d of %d overrides invalid for %s:\n%w", len(problems), p.Len(), p.Variant(), errors.Join(p.Problems()...))
	}

	logger.Successf("%d overrides valid for %s", p.Len(), p.Variant())
	return nil
}
