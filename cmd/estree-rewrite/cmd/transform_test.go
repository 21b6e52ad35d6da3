package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI against an in-memory filesystem and
// restores the shared command state afterwards.
func runCommand(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	prevFs := appFs
	appFs = fs
	t.Cleanup(func() {
		appFs = prevFs
		cfgFile = ""
		outputPath = ""
		writeInPlace = false
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestTransformCommandRewritesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.js", []byte(`console.log("hi")`), 0o644))

	_, err := runCommand(t, fs, "transform", "--output", "out.js", "in.js")
	require.NoError(t, err)

	out, err := afero.ReadFile(fs, "out.js")
	require.NoError(t, err)
	require.Equal(t, `console.log("from_plugin")`, string(out))
}

func TestTransformCommandPassThroughOnBadConfig(t *testing.T) {
	source := `console.log("hi")`

	tests := []struct {
		name   string
		config string
	}{
		{name: "unknown rule", config: `{"rules":[{"name":"no-such-rule"}]}`},
		{name: "unparseable config", config: `{"rules":`},
		{name: "engine version gate", config: `{"rules":[{"name":"console-arg-replace"}],"minEngineVersion":"99.0.0"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "in.js", []byte(source), 0o644))
			require.NoError(t, afero.WriteFile(fs, "config.json", []byte(tt.config), 0o644))

			// A broken config must not fail the command; the input is
			// emitted unchanged.
			_, err := runCommand(t, fs, "transform", "--config", "config.json", "--output", "out.js", "in.js")
			require.NoError(t, err)

			out, err := afero.ReadFile(fs, "out.js")
			require.NoError(t, err)
			require.Equal(t, source, string(out))
		})
	}
}

func TestTransformCommandWritesInPlace(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.js", []byte(`console.warn("x", 2)`), 0o644))

	_, err := runCommand(t, fs, "transform", "--write", "in.js")
	require.NoError(t, err)

	out, err := afero.ReadFile(fs, "in.js")
	require.NoError(t, err)
	require.Equal(t, `console.warn("from_plugin", 2)`, string(out))
}
