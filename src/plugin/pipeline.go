package plugin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seuros/gopher-estree/src/estree"
	"github.com/seuros/gopher-estree/src/parser"
)

// Pipeline wires the parser, the rewriter and the printer into a
// single source-to-source transform. A pipeline is safe to reuse
// across runs; each run gets a fresh rewriter so no state leaks
// between inputs.
type Pipeline struct {
	parser        *parser.Parser
	config        *Config
	logging       *LoggingConfig
	observability *observabilityInstruments
	obsConfig     *ObservabilityConfig
	cache         *estree.RenderCache
}

// NewPipeline creates a pipeline from a plugin config. Nil logging or
// observability configs fall back to the silent defaults.
func NewPipeline(cfg *Config, logging *LoggingConfig, obs *ObservabilityConfig) (*Pipeline, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logging == nil {
		logging = DefaultLoggingConfig()
	}
	if obs == nil {
		obs = DefaultObservabilityConfig()
	}

	// Validate the config up front so a bad rule name or version gate
	// fails at construction, not mid-run. Hosts that must never fail
	// degrade to pass-through on this error.
	if _, err := cfg.BuildRules(); err != nil {
		return nil, err
	}

	// Push per-category overrides down into the logger so category
	// gating has a single source of truth.
	if cl, ok := logging.Logger.(CategorizedLogger); ok {
		for category, level := range logging.CategoryLevels {
			cl.SetCategoryLevel(category, level)
		}
	}

	p, err := parser.New()
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		parser:        p,
		config:        cfg,
		logging:       logging,
		observability: initObservability(),
		obsConfig:     obs,
		cache:         estree.NewRenderCache(256),
	}, nil
}

// Process parses source, applies the configured rules and prints the
// result. On any stage failure the input source is returned unchanged
// along with the error; the transform never produces partial output.
func (p *Pipeline) Process(ctx context.Context, sourceName, source string) (string, *RunSummary, error) {
	startTime := time.Now()

	summary := &RunSummary{
		RunID:       uuid.NewString(),
		SourceName:  sourceName,
		SourceBytes: len(source),
	}

	_, spanCtx := p.observability.startRunSpan(ctx, summary.RunID, sourceName, p.obsConfig)

	if p.logging.LogStageTiming {
		p.logging.logAt(LogLevelInfo, LogCategoryHost, "Starting transform run", "run_id", summary.RunID, "source", sourceName, "bytes", len(source))
	} else {
		p.logging.logAt(LogLevelDebug, LogCategoryHost, "Starting transform run", "run_id", summary.RunID, "source", sourceName)
	}

	entry, hit, err := p.cache.Fetch(source, func() (estree.CachedRender, error) {
		return p.run(source, summary.RunID)
	})
	if err != nil {
		// Pass-through policy: the host always gets printable source
		// back, so a failed transform cannot break the build.
		p.logging.logAt(LogLevelError, LogCategoryHost, "Transform failed, passing source through unchanged", "run_id", summary.RunID, "error", err)
		p.observability.finishRunSpan(spanCtx, summary, err, p.obsConfig)
		return source, summary, err
	}

	summary.CacheHit = hit
	summary.NodesVisited = entry.Stats.NodesVisited
	summary.CallsInspected = entry.Stats.CallsInspected
	summary.OutputBytes = len(entry.Output)
	summary.Changed = entry.Output != source
	summary.ExecutionTime = time.Since(startTime)

	if hit {
		p.logging.logAt(LogLevelDebug, LogCategoryHost, "Render cache hit", "run_id", summary.RunID, "source", sourceName)
	}

	if p.logging.LogStageTiming {
		p.logging.logAt(LogLevelInfo, LogCategoryHost, "Transform run complete",
			"run_id", summary.RunID,
			"duration", summary.ExecutionTime,
			"changed", summary.Changed,
			"cache_hit", summary.CacheHit,
			"nodes_visited", summary.NodesVisited)
	}

	p.observability.finishRunSpan(spanCtx, summary, nil, p.obsConfig)
	return entry.Output, summary, nil
}

func (p *Pipeline) run(source, runID string) (estree.CachedRender, error) {
	program, err := p.parser.Parse(source)
	if err != nil {
		p.logging.logAt(LogLevelError, LogCategoryParser, "Failed to parse source, cannot perform transform", "run_id", runID, "error", err)
		return estree.CachedRender{}, err
	}
	p.logging.logAt(LogLevelDebug, LogCategoryParser, "Parsed source", "run_id", runID, "statements", len(program.Body))

	rules, err := p.config.BuildRules()
	if err != nil {
		p.logging.logAt(LogLevelError, LogCategoryConfig, "Failed to build rule set", "run_id", runID, "error", err)
		return estree.CachedRender{}, err
	}

	rewriter := estree.NewRewriter(rules...)
	rewritten := rewriter.Rewrite(program)
	stats := rewriter.Stats()

	if p.logging.LogRewrites {
		p.logging.logAt(LogLevelDebug, LogCategoryTransform, "Rewrite pass complete",
			"run_id", runID,
			"nodes_visited", stats.NodesVisited,
			"calls_inspected", stats.CallsInspected)
	}

	output, err := estree.NewPrinter().Print(rewritten)
	if err != nil {
		p.logging.logAt(LogLevelError, LogCategoryPrinter, "Failed to print transformed tree, cannot perform transform", "run_id", runID, "error", err)
		return estree.CachedRender{}, err
	}

	return estree.CachedRender{Output: output, Stats: stats}, nil
}
