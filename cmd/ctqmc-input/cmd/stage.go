package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/picogrid/ctqmc-input/pkg/config"
	"github.com/picogrid/ctqmc-input/pkg/ctqmc"
	"github.com/picogrid/ctqmc-input/pkg/logger"
	"github.com/picogrid/ctqmc-input/pkg/utils"
)

// stageOptions are the override sources shared by check and generate
type stageOptions struct {
	solver      string
	paramsFile  string
	sets        []string
	fromEnv     bool
	interactive bool
}

func addStageFlags(cmd *cobra.Command, opts *stageOptions) {
	cmd.Flags().StringVarP(&opts.solver, "solver", "s", "", "solver name (default from the params file or CTQMC_VARIANT)")
	cmd.Flags().StringVarP(&opts.paramsFile, "params", "p", "", "overrides file (YAML)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "override as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.fromEnv, "from-env", false, "stage CTQMC_<KEY> environment overrides")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose and edit overrides interactively")
}

// stage builds the parameter set: params file, then environment, then
// --set flags, then interactive edits. Later sources win per key.
func (o *stageOptions) stage() (*ctqmc.Params, error) {
	var file *config.Overrides
	if o.paramsFile != "" {
		var err error
		file, err = config.LoadOverrides(o.paramsFile)
		if err != nil {
			return nil, err
		}
	}

	solver := o.resolveSolver(file)
	if solver == "" {
		return nil, fmt.Errorf("no solver given (use --solver, a params file 'variant:' or CTQMC_VARIANT)")
	}

	p, err := ctqmc.New(solver)
	if err != nil {
		return nil, err
	}
	log := logger.WithPrefix(p.Variant().String())

	if file != nil {
		p.Set(file.Params...)
		log.WithField("source", o.paramsFile).Debugf("staged %d overrides", len(file.Params))
	}

	if o.fromEnv {
		params, err := utils.EnvOverrides(p.Baseline(), os.LookupEnv)
		if err != nil {
			return nil, fmt.Errorf("failed to read environment overrides: %w", err)
		}
		p.Set(params...)
		log.WithField("source", "env").Debugf("staged %d overrides", len(params))
	}

	for _, s := range o.sets {
		param, err := parseSet(s)
		if err != nil {
			return nil, err
		}
		p.Set(param)
		log.WithField("source", "--set").Debugf("staged %s = %s (%s)", param.Key, param.Value, param.Value.Kind())
	}

	if o.interactive {
		params, err := utils.PromptForOverrides(p.Baseline(), p.Overrides())
		if err != nil {
			return nil, fmt.Errorf("failed to get parameters: %w", err)
		}
		p.Set(params...)
	}

	return p, nil
}

func (o *stageOptions) resolveSolver(file *config.Overrides) string {
	if o.solver != "" {
		return o.solver
	}
	if file != nil && file.Variant != "" {
		return file.Variant
	}
	return viper.GetString("variant")
}

// parseSet splits a key=value flag and reads the value as a literal
func parseSet(s string) (ctqmc.Param, error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return ctqmc.Param{}, fmt.Errorf("invalid --set %q (expected key=value)", s)
	}
	return ctqmc.P(key, ctqmc.ParseLiteral(strings.TrimSpace(value))), nil
}
