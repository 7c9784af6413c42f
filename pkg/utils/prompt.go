package utils

import (
	"fmt"
	"os"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hanskasan/booksim2/pkg/logger"
	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/hanskasan/booksim2/pkg/profile"
)

// SkipPromptsEnv disables interactive prompts when set to "true" (for
// CI/automation); values then come from the environment or defaults.
const SkipPromptsEnv = "BOOKSIM_SKIP_PROMPTS"

// askOne is replaced in tests
var askOne = survey.AskOne

// PromptForParameters asks for every parameter of schema and returns the
// answers as a ParameterSet. Environment variables (BOOKSIM_<NAME>)
// replace the schema defaults shown in the prompts.
func PromptForParameters(schema *params.Schema) (params.ParameterSet, error) {
	result := make(params.ParameterSet)
	skip := os.Getenv(SkipPromptsEnv) == "true"

	for _, name := range promptOrder(schema) {
		spec, err := schema.Describe(name)
		if err != nil {
			return nil, err
		}

		value, ok, err := promptForParameter(schema, spec, result, skip)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", name, err)
		}
		if ok {
			result[name] = value
		}
	}

	return result, nil
}

// promptOrder returns the schema names with every routing parameter moved
// right behind its topology, so the routing choices can be narrowed.
func promptOrder(schema *params.Schema) []string {
	names := schema.AllNames()
	for _, c := range schema.Constraints() {
		rc, ok := c.(params.RoutingConstraint)
		if !ok {
			continue
		}
		names = slices.DeleteFunc(names, func(n string) bool { return n == rc.Routing })
		at := slices.Index(names, rc.Topology) + 1
		names = slices.Insert(names, at, rc.Routing)
	}
	return names
}

// promptForParameter returns the value for one parameter. ok is false when
// the parameter is left for the binder to derive.
func promptForParameter(schema *params.Schema, spec params.ParameterSpec, answers params.ParameterSet, skip bool) (interface{}, bool, error) {
	def := defaultFor(spec, answers)

	// Check for environment variable override
	if envValue := os.Getenv(profile.EnvKey(profile.DefaultEnvPrefix, spec.Name)); envValue != "" {
		parsed, err := parseEnvValue(schema, spec.Name, envValue)
		if err != nil {
			if skip {
				return nil, false, err
			}
			logger.Warnf("Ignoring %s: %v", profile.EnvKey(profile.DefaultEnvPrefix, spec.Name), err)
		} else {
			if skip {
				return parsed, true, nil
			}
			def = parsed
		}
	}

	if skip {
		switch {
		case spec.Default != nil:
			return spec.Default, true, nil
		case spec.DefaultFrom != "":
			return nil, false, nil
		default:
			return nil, false, fmt.Errorf("required parameter %s not provided and no default available", spec.Name)
		}
	}

	switch spec.Type {
	case params.KindEnum:
		return promptEnum(spec, enumOptions(schema, spec, answers), def)
	case params.KindClock, params.KindPositive, params.KindNonNegative:
		return promptText(schema, spec, def)
	default:
		return nil, false, fmt.Errorf("unsupported parameter type: %s", spec.Type)
	}
}

// defaultFor is the value offered in the prompt
func defaultFor(spec params.ParameterSpec, answers params.ParameterSet) interface{} {
	if spec.Default != nil {
		return spec.Default
	}
	if spec.DefaultFrom != "" {
		return answers[spec.DefaultFrom]
	}
	return nil
}

// enumOptions narrows routing functions to those legal for the topology
// already chosen
func enumOptions(schema *params.Schema, spec params.ParameterSpec, answers params.ParameterSet) []string {
	for _, c := range schema.Constraints() {
		rc, ok := c.(params.RoutingConstraint)
		if !ok || rc.Routing != spec.Name {
			continue
		}
		if topology, ok := answers[rc.Topology].(string); ok {
			if legal := rc.Table.Legal(topology); len(legal) > 0 {
				return legal
			}
		}
	}
	return spec.Options
}

// parseEnvValue validates an environment value and returns it in the form
// the binder stores it
func parseEnvValue(schema *params.Schema, name, value string) (interface{}, error) {
	v, err := schema.ValidateValue(name, value)
	if err != nil {
		return nil, err
	}
	switch v.Kind {
	case params.KindPositive, params.KindNonNegative:
		return v.Int, nil
	default:
		return v.String(), nil
	}
}

func promptEnum(spec params.ParameterSpec, options []string, def interface{}) (interface{}, bool, error) {
	prompt := &survey.Select{
		Message: spec.Description,
		Options: options,
	}
	if s, ok := def.(string); ok && slices.Contains(options, s) {
		prompt.Default = s
	}

	var result string
	if err := askOne(prompt, &result); err != nil {
		return nil, false, err
	}
	return result, true, nil
}

func promptText(schema *params.Schema, spec params.ParameterSpec, def interface{}) (interface{}, bool, error) {
	message := spec.Description
	if spec.Type == params.KindClock {
		message += " (e.g., 1GHz, 500ps)"
	}

	prompt := &survey.Input{
		Message: message,
		Help:    spec.Domain(),
	}
	if def != nil {
		prompt.Default = fmt.Sprint(def)
	}

	var result string
	validator := func(val interface{}) error {
		_, err := schema.ValidateValue(spec.Name, val)
		return err
	}
	if err := askOne(prompt, &result, survey.WithValidator(survey.Required), survey.WithValidator(validator)); err != nil {
		return nil, false, err
	}

	value, err := parseEnvValue(schema, spec.Name, result)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}
