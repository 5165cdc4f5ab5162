package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/picogrid/ctqmc-input/pkg/logger"
)

var generateOpts stageOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write solver.ctqmc.in",
	Long: `Stage overrides, check them against the solver's parameter set and write
them to solver.ctqmc.in. Only overridden keys are written; the solver uses
its own defaults for the rest.`,
	Example: `  ctqmc-input generate -s manjushaka --set isscf=2 --set mune=2.0 --set nmaxi=10
  ctqmc-input generate -p overrides.yaml --set nsweep=10000000
  CTQMC_BETA=10.0 ctqmc-input generate -s azalea --from-env`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addStageFlags(generateCmd, &generateOpts)
	generateCmd.Flags().StringP("output", "o", "solver.ctqmc.in", "file to write")
	generateCmd.Flags().Bool("no-check", false, "write without validating the overrides")
	generateCmd.Flags().Bool("stdout", false, "print to stdout instead of writing a file")

	_ = viper.BindPFlag("output", generateCmd.Flags().Lookup("output"))
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	p, err := generateOpts.stage()
	if err != nil {
		return err
	}

	noCheck, _ := cmd.Flags().GetBool("no-check")
	if noCheck {
		logger.Warn("Skipping validation; the solver may reject the file")
	} else if err := p.Check(); err != nil {
		return err
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		_, err := p.WriteTo(cmd.OutOrStdout())
		return err
	}

	output := viper.GetString("output")
	logger.Progressf("Writing %d %s parameters", p.Len(), p.Variant())
	if err := p.WriteFile(output); err != nil {
		return err
	}

	logger.Successf("Wrote %s", output)
	return nil
}
