// Package app wires the engine: storage, LLM provider, question sourcing,
// test assembly, scoring, and diagnostics behind one construction point.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/examiz/internal/assembly"
	"github.com/abhisek/examiz/internal/authoring"
	"github.com/abhisek/examiz/internal/behavior"
	"github.com/abhisek/examiz/internal/config"
	"github.com/abhisek/examiz/internal/insight"
	"github.com/abhisek/examiz/internal/llm"
	"github.com/abhisek/examiz/internal/scoring"
	"github.com/abhisek/examiz/internal/sourcing"
	"github.com/abhisek/examiz/internal/store"
)

// Options controls engine construction.
type Options struct {
	// DBPath locates the sqlite database file.
	DBPath string
	// Config carries the engine constants. Nil means defaults.
	Config *config.Config
	// Log receives structured logs. Nil means no logging.
	Log *zap.Logger
}

// Engine is one fully wired instance. Close it when done.
type Engine struct {
	Store       *store.Store
	Config      *config.Config
	Log         *zap.Logger
	Provider    llm.Provider // nil when no provider is configured
	Pipeline    *sourcing.Pipeline
	Replenisher *sourcing.Replenisher
	Assembler   *assembly.Assembler
	Scoring     *scoring.Engine
	Analyzer    *insight.Analyzer
}

// New opens the store and wires every service. When no LLM provider is
// configured the engine still works: generation paths serve the static
// fallback pool and diagnostics degrade to the placeholder narrative.
func New(ctx context.Context, opts Options) (*Engine, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider := buildProvider(ctx, cfg, st, log)

	authoringCfg := authoring.DefaultConfig()
	authoringCfg.ContextLimit = cfg.Inventory.ContextLimit

	fallback := authoring.FallbackGenerator{}
	var generator authoring.Generator = fallback
	var synth insight.NarrativeSynthesizer
	if provider != nil {
		generator = authoring.New(provider, authoringCfg)
		synth = authoring.NewSynthesizer(provider, authoringCfg)
	}

	replenisher := sourcing.NewReplenisher(
		st.Questions(), st.Subjects(), st.Topics(), generator,
		sourcing.ReplenisherConfig{
			Threshold: cfg.Inventory.Threshold,
			BatchCap:  cfg.Inventory.BatchCap,
			QueueSize: sourcing.DefaultReplenisherConfig().QueueSize,
		},
		log.Named("replenisher"),
	)

	pipeline := sourcing.NewPipeline(
		st.Questions(), st.Answers(), st.Subjects(), st.Topics(),
		generator, fallback, replenisher,
		log.Named("sourcing"),
	)

	assembler := assembly.New(
		pipeline, st.Tests(), st.Attempts(), st.Answers(), st.Questions(),
		assembly.Config{
			DefaultDuration:  cfg.Assembly.DefaultDuration,
			MarksPerQuestion: cfg.Scoring.MarksPerQuestion,
			RemedialSize:     cfg.Assembly.RemedialSize,
			RemedialDuration: cfg.Assembly.RemedialDuration,
		},
		log.Named("assembly"),
	)

	calc := behavior.NewCalculator(behavior.Config{
		NegativeMarkWeight:    cfg.Scoring.NegativeMarkWeight,
		RushSeconds:           cfg.Scoring.RushSeconds,
		OverthinkingSeconds:   cfg.Scoring.OverthinkingSeconds,
		ConfidentGuessSeconds: cfg.Scoring.ConfidentGuessSeconds,
	})
	recorder := behavior.NewRecorder(calc, st.Metrics())

	engine := scoring.NewEngine(
		st.Tests(), st.Attempts(), st.Answers(), st.Questions(),
		recorder,
		scoring.Thresholds{
			BlindGuessSeconds:   cfg.Scoring.BlindGuessSeconds,
			RushSeconds:         cfg.Scoring.RushSeconds,
			DeliberationSeconds: cfg.Scoring.DeliberationSeconds,
		},
		log.Named("scoring"),
	)

	analyzer := insight.NewAnalyzer(
		st.Attempts(), st.Tests(), st.Questions(), st.Answers(),
		st.Metrics(), st.Topics(), synth, calc,
		insight.Config{
			SampleLimit:     cfg.Diagnostics.SampleLimit,
			WeakTopicCutoff: cfg.Diagnostics.WeakTopicCutoff,
		},
		log.Named("insight"),
	)

	return &Engine{
		Store:       st,
		Config:      cfg,
		Log:         log,
		Provider:    provider,
		Pipeline:    pipeline,
		Replenisher: replenisher,
		Assembler:   assembler,
		Scoring:     engine,
		Analyzer:    analyzer,
	}, nil
}

// buildProvider discovers the LLM configuration and constructs the
// middleware-wrapped provider. Returns nil when nothing is configured.
func buildProvider(ctx context.Context, cfg *config.Config, st *store.Store, log *zap.Logger) llm.Provider {
	llmCfg, ok := llm.DiscoverConfig()
	if !ok {
		log.Info("no LLM provider configured, AI generation falls back to the static pool")
		return nil
	}
	llmCfg.Breaker.FailureThreshold = cfg.Breaker.FailureThreshold
	llmCfg.Breaker.CoolDown = time.Duration(cfg.Breaker.CoolDownSeconds) * time.Second

	provider, err := llm.NewProvider(ctx, llmCfg, st.Events())
	if err != nil {
		log.Warn("LLM provider setup failed, AI generation falls back to the static pool",
			zap.Error(err))
		return nil
	}
	log.Info("LLM provider ready", zap.String("provider", llmCfg.Provider))
	return provider
}

// Close drains the replenisher and closes the store.
func (e *Engine) Close() error {
	if e.Replenisher != nil {
		e.Replenisher.Close()
	}
	return e.Store.Close()
}
