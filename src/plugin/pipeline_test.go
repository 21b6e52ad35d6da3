package plugin

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	pipeline, err := NewPipeline(nil, nil, nil)
	require.NoError(t, err)
	return pipeline
}

func TestProcessRewritesConsoleCalls(t *testing.T) {
	pipeline := newTestPipeline(t)

	tests := []struct {
		name   string
		input  string
		output string
	}{
		{
			name:   "basic rewrite",
			input:  `console.log("hello")`,
			output: `console.log("from_plugin")`,
		},
		{
			name:   "second argument preserved",
			input:  `console.error("oops", 2)`,
			output: `console.error("from_plugin", 2)`,
		},
		{
			name:   "non-console untouched",
			input:  `foo.log("hello")`,
			output: `foo.log("hello")`,
		},
		{
			name:   "zero arguments untouched",
			input:  `console.log()`,
			output: `console.log()`,
		},
		{
			name:   "nested call rewritten",
			input:  `outer(console.log("x"))`,
			output: `outer(console.log("from_plugin"))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, summary, err := pipeline.Process(context.Background(), "test.js", tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.output, output)
			require.NotEmpty(t, summary.RunID)
		})
	}
}

func TestProcessPassThroughOnParseError(t *testing.T) {
	pipeline := newTestPipeline(t)

	source := `console.log('single quotes')`
	output, _, err := pipeline.Process(context.Background(), "bad.js", source)

	require.Error(t, err)
	require.Equal(t, source, output, "failed transform must hand the source back unchanged")
}

func TestProcessSummary(t *testing.T) {
	pipeline := newTestPipeline(t)

	output, summary, err := pipeline.Process(context.Background(), "test.js", `console.log("hello")`)
	require.NoError(t, err)

	require.True(t, summary.Changed)
	require.Greater(t, summary.NodesVisited, 0)
	require.Equal(t, 1, summary.CallsInspected)
	require.Equal(t, len(output), summary.OutputBytes)
}

func TestProcessUnchangedSource(t *testing.T) {
	pipeline := newTestPipeline(t)

	source := `foo.bar("x")`
	output, summary, err := pipeline.Process(context.Background(), "test.js", source)
	require.NoError(t, err)
	require.Equal(t, source, output)
	require.False(t, summary.Changed)
}

func TestProcessIndependentRuns(t *testing.T) {
	pipeline := newTestPipeline(t)

	// Two different sources through the same pipeline; no state leaks.
	out1, _, err := pipeline.Process(context.Background(), "a.js", `console.log("a")`)
	require.NoError(t, err)
	out2, _, err := pipeline.Process(context.Background(), "b.js", `console.log("b")`)
	require.NoError(t, err)

	require.Equal(t, `console.log("from_plugin")`, out1)
	require.Equal(t, `console.log("from_plugin")`, out2)
}

func TestProcessCachedRun(t *testing.T) {
	pipeline := newTestPipeline(t)

	source := `console.log("hello")`
	out1, summary1, err := pipeline.Process(context.Background(), "a.js", source)
	require.NoError(t, err)
	require.False(t, summary1.CacheHit)

	// Second run hits the render cache but must produce the same text
	// and report the stats of the traversal that produced it.
	out2, summary2, err := pipeline.Process(context.Background(), "a.js", source)
	require.NoError(t, err)
	require.Equal(t, out1, out2)
	require.True(t, summary2.CacheHit)
	require.Equal(t, summary1.NodesVisited, summary2.NodesVisited)
	require.Equal(t, summary1.CallsInspected, summary2.CallsInspected)
	require.True(t, summary2.Changed)
}

func TestPipelineCategoryLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logging := NewConsoleLoggingConfig(LogLevelDebug)
	logging.Logger = NewConsoleLoggerWithOutput(LogLevelDebug, &stdout, &stderr)
	logging.CategoryLevels[LogCategoryParser] = LogLevelOff

	pipeline, err := NewPipeline(nil, logging, nil)
	require.NoError(t, err)

	_, _, err = pipeline.Process(context.Background(), "test.js", `console.log("hello")`)
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "category=host")
	require.Contains(t, out, "category=transform")
	require.NotContains(t, out, "category=parser", "CategoryLevels override must silence the parser category")
}

func TestNewPipelineRejectsBadConfig(t *testing.T) {
	_, err := NewPipeline(&Config{Rules: []RuleConfig{{Name: "no-such-rule"}}}, nil, nil)
	require.Error(t, err)

	_, err = NewPipeline(&Config{
		Rules:            []RuleConfig{{Name: "console-arg-replace"}},
		MinEngineVersion: "99.0.0",
	}, nil, nil)
	require.Error(t, err)
}
