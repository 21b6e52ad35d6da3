package plugin

import (
	"encoding/json"
	"fmt"

	"github.com/seuros/gopher-estree/src/estree"
	"github.com/seuros/gopher-estree/src/transform"
	"github.com/spf13/afero"
)

// RuleConfig selects and parameterizes one rewrite rule.
type RuleConfig struct {
	Name    string            `json:"name"`
	Options map[string]string `json:"options,omitempty"`
}

// Config is the JSON plugin configuration handed to the pipeline by a
// host. Keys are camelCase. A missing or empty rules list selects the
// default rule set.
type Config struct {
	Rules            []RuleConfig `json:"rules,omitempty"`
	MinEngineVersion string       `json:"minEngineVersion,omitempty"`
}

// DefaultConfig returns the configuration used when the host supplies
// none: the console call-argument replacement rule with its default
// replacement.
func DefaultConfig() *Config {
	return &Config{
		Rules: []RuleConfig{
			{Name: "console-arg-replace"},
		},
	}
}

// ParseConfig deserializes a JSON config document.
func ParseConfig(data []byte) (*Config, error) {
	if len(data) == 0 {
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to deserialize plugin config: %w", err)
	}

	if len(cfg.Rules) == 0 {
		cfg.Rules = DefaultConfig().Rules
	}

	return &cfg, nil
}

// LoadConfig reads and parses a JSON config file from the given
// filesystem.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin config from path: %w", err)
	}
	return ParseConfig(data)
}

// BuildRules validates the config against the running engine and
// constructs its rule set.
func (c *Config) BuildRules() ([]estree.Rule, error) {
	if err := CheckEngineVersion(c.MinEngineVersion); err != nil {
		return nil, err
	}

	rules := make([]estree.Rule, 0, len(c.Rules))
	for _, rc := range c.Rules {
		rule, err := transform.Build(rc.Name, rc.Options)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
