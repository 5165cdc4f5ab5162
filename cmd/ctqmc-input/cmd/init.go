package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/picogrid/ctqmc-input/pkg/config"
	"github.com/picogrid/ctqmc-input/pkg/ctqmc"
	"github.com/picogrid/ctqmc-input/pkg/logger"
)

var initCmd = &cobra.Command{
	Use:   "init <solver>",
	Short: "Write an overrides file template",
	Long: `Write an overrides YAML file listing every parameter of the solver with
its default. Delete the lines you do not want to override, edit the rest,
then pass the file to 'generate --params'.`,
	Args: cobra.ExactArgs(1),
	RunE: initOverrides,
}

func init() {
	initCmd.Flags().StringP("output", "o", "overrides.yaml", "template file to write")
	initCmd.Flags().Bool("force", false, "overwrite an existing file")
}

func initOverrides(cmd *cobra.Command, args []string) error {
	v, err := ctqmc.ParseVariant(args[0])
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	overrides := &config.Overrides{
		Variant: v.String(),
		Params:  v.Baseline().Params(),
	}
	if err := config.SaveOverrides(path, overrides); err != nil {
		return err
	}

	logger.Successf("Wrote %d %s defaults to %s", len(overrides.Params), v, path)
	return nil
}
