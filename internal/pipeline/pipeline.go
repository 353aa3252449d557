// Package pipeline runs an evaluation end to end: translation pairs are
// scored in parallel, collected into a score table in provider order and
// ranked.
package pipeline

import (
	"context"
	"errors"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/core/rank"
	"github.com/baditaflorin/go_mt_eval/internal/metrics"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// Config controls how the pipeline schedules scoring work.
type Config struct {
	// Concurrency bounds the number of pairs scored at once.
	Concurrency int
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return Config{Concurrency: runtime.NumCPU()}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Concurrency <= 0 {
		return errors.New("concurrency must be positive")
	}
	return nil
}

// Pipeline scores translation pairs and aggregates win rates.
type Pipeline struct {
	config     Config
	scorer     ports.PairScorer
	aggregator *rank.Aggregator
	logger     ports.Logger
}

// New creates a pipeline.
func New(config Config, scorer ports.PairScorer, aggregator *rank.Aggregator, logger ports.Logger) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		config:     config,
		scorer:     scorer,
		aggregator: aggregator,
		logger:     logger,
	}, nil
}

// Run pulls the pairs from provider and evaluates them.
func (p *Pipeline) Run(ctx context.Context, provider ports.TranslationProvider) (domain.Report, error) {
	pairs, err := provider.Translations(ctx)
	if err != nil {
		p.logger.Error("Failed to load translations", "error", err)
		metrics.ObserveEvaluation(nil, err)
		return domain.Report{}, err
	}
	return p.Evaluate(ctx, pairs)
}

// Evaluate scores pairs and ranks the models.
func (p *Pipeline) Evaluate(ctx context.Context, pairs []domain.TranslationPair) (domain.Report, error) {
	start := time.Now()

	table, err := p.ScoreAll(ctx, pairs)
	if err != nil {
		metrics.ObserveEvaluation(nil, err)
		return domain.Report{}, err
	}

	ranking, err := p.aggregator.Rank(table)
	metrics.ObserveEvaluation(ranking, err)
	if err != nil {
		return domain.Report{Scores: table}, err
	}

	p.logger.Info("Evaluation completed",
		"pairs", len(pairs),
		"languages", table.Len(),
		"duration", time.Since(start),
	)
	return domain.Report{Scores: table, Ranking: ranking}, nil
}

// ScoreAll scores every pair with at most Concurrency workers. The table
// keeps the order in which languages and models first appear in pairs.
func (p *Pipeline) ScoreAll(ctx context.Context, pairs []domain.TranslationPair) (*domain.ScoreTable, error) {
	results := make([]domain.ModelScores, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Concurrency)
	for i, pair := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.scorer.ScorePair(pair.Reference, pair.Candidate, pair.TokenLocale())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := domain.NewScoreTable()
	for i, pair := range pairs {
		for _, kind := range domain.MetricKinds {
			if s, ok := results[i][kind]; ok {
				table.Set(pair.Language, pair.Model, s)
			}
		}
	}
	return table, nil
}
