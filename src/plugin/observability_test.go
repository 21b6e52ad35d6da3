package plugin

import (
	"context"
	"testing"
	"time"
)

func TestDefaultObservabilityConfig(t *testing.T) {
	config := DefaultObservabilityConfig()

	if !config.EnableTracing {
		t.Error("Tracing should be enabled by default")
	}
	if !config.EnableMetrics {
		t.Error("Metrics should be enabled by default")
	}

	foundEngine := false
	for _, attr := range config.TracingAttributes {
		if attr.Key == "transform.engine" && attr.Value.AsString() == "gopher-estree" {
			foundEngine = true
		}
	}
	if !foundEngine {
		t.Error("Default tracing attributes should include transform.engine")
	}
}

func TestObservabilityInstrumentation(t *testing.T) {
	instruments := initObservability()

	if instruments.tracer == nil {
		t.Error("Tracer should be initialized")
	}
	if instruments.meter == nil {
		t.Error("Meter should be initialized")
	}
	if instruments.runDuration == nil {
		t.Error("Run duration histogram should be initialized")
	}
	if instruments.runCount == nil {
		t.Error("Run count counter should be initialized")
	}
	if instruments.nodesVisited == nil {
		t.Error("Nodes visited counter should be initialized")
	}
}

func TestRunSpanLifecycle(t *testing.T) {
	instruments := initObservability()
	config := DefaultObservabilityConfig()

	ctx, spanCtx := instruments.startRunSpan(context.Background(), "run-1", "test.js", config)
	if ctx == nil {
		t.Fatal("context should not be nil")
	}
	if spanCtx.startTime.IsZero() {
		t.Error("span start time should be recorded")
	}

	summary := &RunSummary{
		RunID:          "run-1",
		SourceName:     "test.js",
		NodesVisited:   7,
		CallsInspected: 1,
		Changed:        true,
		ExecutionTime:  time.Millisecond,
	}
	// Must not panic with the default no-op global providers.
	instruments.finishRunSpan(spanCtx, summary, nil, config)
}

func TestRunSpanDisabledTracing(t *testing.T) {
	instruments := initObservability()
	config := DefaultObservabilityConfig()
	config.EnableTracing = false
	config.EnableMetrics = false

	_, spanCtx := instruments.startRunSpan(context.Background(), "run-2", "test.js", config)
	if spanCtx.span != nil {
		t.Error("no span should be created when tracing is disabled")
	}
	instruments.finishRunSpan(spanCtx, &RunSummary{}, nil, config)
}
