package classify

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"golang-statement-analyzer/pkg/errors"
)

// ruleFile is the on-disk shape of a custom rule set.
type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Pattern  string `yaml:"pattern"`
	Category string `yaml:"category"`
}

// LoadRules reads custom classification rules from a YAML file and returns
// them appended after the built-in table, so user rules act as a fallback
// tier rather than overriding the defaults. Patterns are compiled eagerly;
// a bad pattern fails the whole load.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileError(errors.CodeFileNotFound, path, err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.ConfigurationError(errors.CodeInvalidConfig,
			"rules_file", path, err).
			WithSuggestion("rules files must be YAML with a top-level 'rules' list")
	}

	rules := BuiltinRules()
	for i, entry := range file.Rules {
		if entry.Pattern == "" || entry.Category == "" {
			return nil, errors.ConfigurationError(errors.CodeInvalidConfig,
				"rules_file", path, nil).
				WithContext("rule_index", i).
				WithSuggestion("every rule needs both a pattern and a category")
		}
		compiled, err := regexp.Compile(entry.Pattern)
		if err != nil {
			return nil, errors.ConfigurationError(errors.CodeInvalidConfig,
				"rules_file", path, err).
				WithContext("pattern", entry.Pattern)
		}
		rules = append(rules, Rule{Pattern: compiled, Category: entry.Category})
	}
	return rules, nil
}
