package plugin

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Instrumentation library name
	instrumentationName    = "github.com/seuros/gopher-estree/src/plugin"
	instrumentationVersion = EngineVersion
)

// ObservabilityConfig controls telemetry collection
type ObservabilityConfig struct {
	// EnableTracing enables OpenTelemetry distributed tracing
	EnableTracing bool

	// EnableMetrics enables OpenTelemetry metrics collection
	EnableMetrics bool

	// TracingAttributes are additional attributes to add to all spans
	TracingAttributes []attribute.KeyValue

	// MetricAttributes are additional attributes to add to all metrics
	MetricAttributes []attribute.KeyValue
}

// DefaultObservabilityConfig returns default observability configuration
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		EnableTracing: true,
		EnableMetrics: true,
		TracingAttributes: []attribute.KeyValue{
			attribute.String("transform.engine", "gopher-estree"),
			attribute.String("transform.engine.version", instrumentationVersion),
		},
		MetricAttributes: []attribute.KeyValue{
			attribute.String("transform.engine", "gopher-estree"),
		},
	}
}

// observabilityInstruments holds OpenTelemetry instruments
type observabilityInstruments struct {
	tracer trace.Tracer
	meter  metric.Meter

	// Metrics
	runDuration    metric.Float64Histogram
	runCount       metric.Int64Counter
	runErrors      metric.Int64Counter
	nodesVisited   metric.Int64Counter
	callsInspected metric.Int64Counter
	sourceChanged  metric.Int64Counter
}

// initObservability initializes OpenTelemetry instruments
func initObservability() *observabilityInstruments {
	tracer := otel.Tracer(instrumentationName, trace.WithInstrumentationVersion(instrumentationVersion))
	meter := otel.Meter(instrumentationName, metric.WithInstrumentationVersion(instrumentationVersion))

	instruments := &observabilityInstruments{
		tracer: tracer,
		meter:  meter,
	}

	var err error

	instruments.runDuration, err = meter.Float64Histogram(
		"transform.run.duration",
		metric.WithDescription("Duration of transform runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.runCount, err = meter.Int64Counter(
		"transform.run.count",
		metric.WithDescription("Number of transform runs executed"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.runErrors, err = meter.Int64Counter(
		"transform.run.errors",
		metric.WithDescription("Number of transform runs that fell back to pass-through"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.nodesVisited, err = meter.Int64Counter(
		"transform.nodes.visited",
		metric.WithDescription("Number of AST nodes visited"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.callsInspected, err = meter.Int64Counter(
		"transform.calls.inspected",
		metric.WithDescription("Number of call expressions evaluated against the rule set"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.sourceChanged, err = meter.Int64Counter(
		"transform.source.changed",
		metric.WithDescription("Number of runs whose output differs from the input"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return instruments
}

// RunSummary contains transform run metadata
type RunSummary struct {
	RunID         string
	SourceName    string
	SourceBytes   int
	OutputBytes   int
	ExecutionTime time.Duration

	NodesVisited   int
	CallsInspected int
	Changed        bool
	CacheHit       bool
}

// spanContext holds span-specific context information
type spanContext struct {
	span      trace.Span
	startTime time.Time
}

// startRunSpan creates a new tracing span for a transform run
func (oi *observabilityInstruments) startRunSpan(ctx context.Context, runID, sourceName string, config *ObservabilityConfig) (context.Context, *spanContext) {
	if !config.EnableTracing {
		return ctx, &spanContext{startTime: time.Now()}
	}

	attrs := make([]attribute.KeyValue, 0, len(config.TracingAttributes)+2)
	attrs = append(attrs, config.TracingAttributes...)
	attrs = append(attrs,
		attribute.String("transform.run.id", runID),
		attribute.String("transform.source", sourceName),
	)

	ctx, span := oi.tracer.Start(ctx, "transform.run",
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, &spanContext{
		span:      span,
		startTime: time.Now(),
	}
}

// finishRunSpan completes a run span with results
func (oi *observabilityInstruments) finishRunSpan(spanCtx *spanContext, summary *RunSummary, err error, config *ObservabilityConfig) {
	duration := time.Since(spanCtx.startTime)

	if config.EnableMetrics {
		attrs := metric.WithAttributes(config.MetricAttributes...)

		oi.runDuration.Record(context.Background(), duration.Seconds(), attrs)

		statusAttr := attribute.String("run.status", "success")
		if err != nil {
			statusAttr = attribute.String("run.status", "error")
			oi.runErrors.Add(context.Background(), 1, metric.WithAttributes(append(config.MetricAttributes, statusAttr)...))
		} else {
			oi.runCount.Add(context.Background(), 1, metric.WithAttributes(append(config.MetricAttributes, statusAttr)...))

			if summary.NodesVisited > 0 {
				oi.nodesVisited.Add(context.Background(), int64(summary.NodesVisited), attrs)
			}
			if summary.CallsInspected > 0 {
				oi.callsInspected.Add(context.Background(), int64(summary.CallsInspected), attrs)
			}
			if summary.Changed {
				oi.sourceChanged.Add(context.Background(), 1, attrs)
			}
		}
	}

	if config.EnableTracing && spanCtx.span != nil {
		spanCtx.span.SetAttributes(
			attribute.Int("transform.nodes.visited", summary.NodesVisited),
			attribute.Int("transform.calls.inspected", summary.CallsInspected),
			attribute.Bool("transform.source.changed", summary.Changed),
			attribute.Bool("transform.cache.hit", summary.CacheHit),
			attribute.Float64("transform.run.duration_ms", float64(duration.Nanoseconds())/1e6),
		)

		if err != nil {
			spanCtx.span.RecordError(err)
			spanCtx.span.SetStatus(codes.Error, err.Error())
		} else {
			spanCtx.span.SetStatus(codes.Ok, "")
		}

		spanCtx.span.End()
	}
}
