package utils

import (
	"fmt"
	"strings"

	"github.com/picogrid/ctqmc-input/pkg/ctqmc"
)

// EnvPrefix prefixes parameter environment variables, e.g. CTQMC_NSWEEP
const EnvPrefix = "CTQMC_"

// EnvKey returns the environment variable that overrides a parameter
func EnvKey(param string) string {
	return EnvPrefix + strings.ToUpper(param)
}

// EnvOverrides collects overrides for baseline parameters from environment
// variables, in baseline order. Values are parsed as the default's type.
func EnvOverrides(baseline *ctqmc.Table, lookup func(string) (string, bool)) ([]ctqmc.Param, error) {
	var params []ctqmc.Param
	for _, def := range baseline.Params() {
		raw, ok := lookup(EnvKey(def.Key))
		if !ok || raw == "" {
			continue
		}

		v, err := ctqmc.ParseAs(def.Value.Kind(), raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvKey(def.Key), err)
		}
		params = append(params, ctqmc.P(def.Key, v))
	}
	return params, nil
}
