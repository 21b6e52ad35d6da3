package plugin

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 1)
	require.Equal(t, "console-arg-replace", cfg.Rules[0].Name)
}

func TestParseConfigCamelCase(t *testing.T) {
	data := []byte(`{
		"rules": [{"name": "console-arg-replace", "options": {"replacement": "redacted"}}],
		"minEngineVersion": "0.1.0"
	}`)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	require.Equal(t, "0.1.0", cfg.MinEngineVersion)
	require.Equal(t, "redacted", cfg.Rules[0].Options["replacement"])

	rules, err := cfg.BuildRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
}

func TestParseConfigInvalidJSON(t *testing.T) {
	_, err := ParseConfig([]byte(`{"rules": [`))
	require.Error(t, err)
}

func TestBuildRulesUnknownRule(t *testing.T) {
	cfg := &Config{Rules: []RuleConfig{{Name: "no-such-rule"}}}
	_, err := cfg.BuildRules()
	require.Error(t, err)
}

func TestBuildRulesVersionGate(t *testing.T) {
	cfg := &Config{
		Rules:            []RuleConfig{{Name: "console-arg-replace"}},
		MinEngineVersion: "99.0.0",
	}
	_, err := cfg.BuildRules()
	require.Error(t, err)

	cfg.MinEngineVersion = "0.1.0"
	_, err = cfg.BuildRules()
	require.NoError(t, err)
}

func TestLoadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/plugin.json",
		[]byte(`{"rules": [{"name": "console-arg-replace"}]}`), 0o644))

	cfg, err := LoadConfig(fs, "/plugin.json")
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 1)

	_, err = LoadConfig(fs, "/missing.json")
	require.Error(t, err)
}

func TestCheckEngineVersion(t *testing.T) {
	require.NoError(t, CheckEngineVersion(""))
	require.NoError(t, CheckEngineVersion("0.1.0"))
	require.NoError(t, CheckEngineVersion(EngineVersion))
	require.Error(t, CheckEngineVersion("99.0.0"))
	require.Error(t, CheckEngineVersion("not-a-version"))
}
