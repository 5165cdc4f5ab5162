package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/picogrid/ctqmc-input/pkg/ctqmc"
)

// ErrNotTerminal is returned when prompting is requested without a terminal
var ErrNotTerminal = errors.New("interactive mode requires a terminal on stdin")

// PromptForOverrides asks which baseline parameters to override and then
// prompts for each value. Already staged values are offered as defaults.
func PromptForOverrides(baseline *ctqmc.Table, staged []ctqmc.Param) ([]ctqmc.Param, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}

	current := make(map[string]ctqmc.Value, len(staged))
	var preselected []string
	for _, p := range staged {
		current[p.Key] = p.Value
		if baseline.Has(p.Key) {
			preselected = append(preselected, p.Key)
		}
	}

	var keys []string
	selectPrompt := &survey.MultiSelect{
		Message: "Parameters to set:",
		Options: baseline.Keys(),
		Default: preselected,
		Description: func(value string, index int) string {
			def, _ := baseline.Get(value)
			return fmt.Sprintf("%s, default %s", def.Kind(), def)
		},
		PageSize: 15,
	}
	if err := survey.AskOne(selectPrompt, &keys); err != nil {
		return nil, err
	}

	params := make([]ctqmc.Param, 0, len(keys))
	for _, key := range keys {
		def, _ := baseline.Get(key)
		if v, ok := current[key]; ok {
			def = v
		}

		value, err := promptValue(key, def, baselineKind(baseline, key))
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", key, err)
		}
		params = append(params, ctqmc.P(key, value))
	}

	return params, nil
}

// promptValue prompts for a single parameter of the given kind
func promptValue(key string, def ctqmc.Value, kind ctqmc.Kind) (ctqmc.Value, error) {
	prompt := &survey.Input{
		Message: fmt.Sprintf("%s (%s):", key, kind),
		Default: def.String(),
	}

	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(ValueValidator(kind))); err != nil {
		return ctqmc.Value{}, err
	}

	return ctqmc.ParseAs(kind, result)
}

// ValueValidator returns a survey validator accepting input of the given kind
func ValueValidator(kind ctqmc.Kind) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected text input, got %T", val)
		}
		_, err := ctqmc.ParseAs(kind, str)
		return err
	}
}

func baselineKind(baseline *ctqmc.Table, key string) ctqmc.Kind {
	def, _ := baseline.Get(key)
	return def.Kind()
}
