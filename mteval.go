// Package mteval scores machine translations against reference translations
// with a smoothed n-gram precision (BLEU) and a longest-common-subsequence
// F-measure (ROUGE-L), and ranks translation models by how often they win.
//
// Scoring never fails: empty or punctuation-only texts score 0. Only ranking
// can fail, when the score table is empty or incomplete.
package mteval

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/logger"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/normalizer"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/renderer"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/stemmer"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_mt_eval/internal/core/evaluate"
	"github.com/baditaflorin/go_mt_eval/internal/core/ngram"
	"github.com/baditaflorin/go_mt_eval/internal/core/overlap"
	"github.com/baditaflorin/go_mt_eval/internal/core/rank"
	"github.com/baditaflorin/go_mt_eval/internal/pipeline"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
	"github.com/baditaflorin/go_mt_eval/internal/server"
	"github.com/baditaflorin/go_mt_eval/internal/warmup"
)

// Evaluator scores translation pairs and ranks models.
type Evaluator struct {
	normalizer ports.Normalizer
	scorer     *evaluate.PairScorer
	overlap    *overlap.Scorer
	aggregator *rank.Aggregator
	pipeline   *pipeline.Pipeline
	logger     ports.Logger
	warmed     bool
}

// Option defines a functional option for configuring an Evaluator.
type Option func(*evaluatorConfig)

type evaluatorConfig struct {
	NGram        ngram.Config
	Overlap      overlap.Config
	StemmerMode  stemmer.Mode
	Pipeline     pipeline.Config
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.Config

	// err records the first invalid option; New returns it.
	err error
}

// WithSmoothing turns additive smoothing of zero n-gram precisions on or off.
func WithSmoothing(enable bool) Option {
	return func(cfg *evaluatorConfig) {
		cfg.NGram.Smoothing = enable
	}
}

// WithEffectiveOrder toggles skipping n-gram orders longer than the candidate.
func WithEffectiveOrder(enable bool) Option {
	return func(cfg *evaluatorConfig) {
		cfg.NGram.EffectiveOrder = enable
	}
}

// WithStemming turns stemming in the overlap scorer on or off.
func WithStemming(enable bool) Option {
	return func(cfg *evaluatorConfig) {
		cfg.Overlap.Stemming = enable
	}
}

// WithStemmerMode selects the stemmer by name: "generic" applies English
// stemming to every language, "language" uses the target language's stemmer
// where one exists. New fails on any other name.
func WithStemmerMode(name string) Option {
	return func(cfg *evaluatorConfig) {
		mode, err := stemmer.ParseMode(name)
		if err != nil {
			if cfg.err == nil {
				cfg.err = err
			}
			return
		}
		cfg.StemmerMode = mode
	}
}

// WithLanguageAwareStemming is WithStemmerMode("language").
func WithLanguageAwareStemming() Option {
	return func(cfg *evaluatorConfig) {
		cfg.StemmerMode = stemmer.LanguageAware
	}
}

// WithLogger sets a custom logger.
func WithLogger(log l.Logger) Option {
	return func(cfg *evaluatorConfig) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// WithStructuredLogger sets a logger that already implements Logger.
func WithStructuredLogger(log Logger) Option {
	return func(cfg *evaluatorConfig) {
		cfg.Logger = log
	}
}

// WithQuietLogger discards all log output.
func WithQuietLogger() Option {
	return func(cfg *evaluatorConfig) {
		cfg.Logger = logger.NewNopLogger()
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *evaluatorConfig) {
		cfg.Normalizer = n
	}
}

// WithFastNormalizer selects the normalizer with the pooled ASCII fast path.
func WithFastNormalizer() Option {
	return func(cfg *evaluatorConfig) {
		cfg.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.FastNormalizerType)
	}
}

// WithConcurrency bounds the number of pairs scored in parallel.
func WithConcurrency(n int) Option {
	return func(cfg *evaluatorConfig) {
		cfg.Pipeline.Concurrency = n
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *evaluatorConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(config warmup.Config) Option {
	return func(cfg *evaluatorConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Evaluator. Without options it scores like the reference
// tooling: smoothing on, stemming on, generic stemmer.
func New(opts ...Option) (*Evaluator, error) {
	config := &evaluatorConfig{
		NGram:        ngram.DefaultConfig(),
		Overlap:      overlap.DefaultConfig(),
		StemmerMode:  stemmer.Generic,
		Pipeline:     pipeline.DefaultConfig(),
		WarmUpConfig: warmup.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}
	if config.err != nil {
		return nil, fmt.Errorf("invalid option: %w", config.err)
	}

	if config.Logger == nil {
		log, err := logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
		config.Logger = log
	}

	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	ng, err := ngram.NewScorer(config.NGram, config.Logger)
	if err != nil {
		return nil, fmt.Errorf("ngram scorer: %w", err)
	}
	ov, err := overlap.NewScorer(config.Overlap, config.Logger, stemmer.New(config.StemmerMode))
	if err != nil {
		return nil, fmt.Errorf("overlap scorer: %w", err)
	}

	scorer := evaluate.NewPairScorer(config.Normalizer, tokenizer.NewWordTokenizer(), ng, ov, config.Logger)
	aggregator := rank.NewAggregator(config.Logger)
	pipe, err := pipeline.New(config.Pipeline, scorer, aggregator, config.Logger)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	e := &Evaluator{
		normalizer: config.Normalizer,
		scorer:     scorer,
		overlap:    ov,
		aggregator: aggregator,
		pipeline:   pipe,
		logger:     config.Logger,
	}

	if config.WarmUp {
		e.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return e, nil
}

// Normalize returns the normalized form of text.
func (e *Evaluator) Normalize(text string) NormalizedText {
	return e.normalizer.Normalize(text)
}

// Score computes every metric for one reference/candidate pair.
func (e *Evaluator) Score(reference, candidate, language string) ModelScores {
	return e.scorer.ScorePair(reference, candidate, language)
}

// OverlapDetail returns precision, recall and F-measure of the overlap score.
func (e *Evaluator) OverlapDetail(reference, candidate, language string) OverlapDetail {
	return e.overlap.Detail(e.normalizer.Normalize(reference), e.normalizer.Normalize(candidate), language)
}

// Evaluate scores every pair and ranks the models.
func (e *Evaluator) Evaluate(ctx context.Context, pairs []TranslationPair) (Report, error) {
	return e.pipeline.Evaluate(ctx, pairs)
}

// Run evaluates the pairs supplied by provider.
func (e *Evaluator) Run(ctx context.Context, provider TranslationProvider) (Report, error) {
	return e.pipeline.Run(ctx, provider)
}

// Aggregate computes the win records of a complete score table.
func (e *Evaluator) Aggregate(scores *ScoreTable) (map[string]WinRecord, error) {
	return e.aggregator.Aggregate(scores)
}

// Render writes report in format ("table", "json" or "yaml").
func (e *Evaluator) Render(w io.Writer, report Report, format string) error {
	r, err := renderer.New(format)
	if err != nil {
		return err
	}
	return r.Render(w, report)
}

// Handler returns the HTTP handler serving /score, /evaluate, /health and /metrics.
func (e *Evaluator) Handler(requestTimeout time.Duration) fasthttp.RequestHandler {
	return server.New(server.Config{RequestTimeout: requestTimeout}, e.scorer, e.pipeline, e.logger).Handler
}

// WarmUp exercises the normalizer and scorers once.
func (e *Evaluator) WarmUp(ctx context.Context, config warmup.Config) {
	if e.warmed {
		e.logger.Debug("System already warmed up, skipping")
		return
	}

	mgr := warmup.NewManager(e.logger, config)
	mgr.RegisterNormalizer(e.normalizer)
	mgr.RegisterScorer(e.scorer)
	mgr.WarmUp(ctx)
	e.warmed = true
}

// ScoreWithDefaults scores one pair with the default configuration and no logging.
func ScoreWithDefaults(reference, candidate, language string) ModelScores {
	e, err := New(WithQuietLogger())
	if err != nil {
		return ModelScores{}
	}
	return e.Score(reference, candidate, language)
}
