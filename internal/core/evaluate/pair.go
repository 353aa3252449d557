// Package evaluate combines the text pipeline and both scorers into a single
// per-pair operation.
package evaluate

import (
	"time"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/metrics"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// PairScorer normalizes both texts once, tokenizes them for the n-gram scorer
// and hands the normalized text to the overlap scorer.
type PairScorer struct {
	normalizer ports.Normalizer
	tokenizer  ports.Tokenizer
	ngram      ports.NGramScorer
	overlap    ports.OverlapScorer
	logger     ports.Logger
}

// NewPairScorer wires the components of a pair scorer.
func NewPairScorer(
	normalizer ports.Normalizer,
	tokenizer ports.Tokenizer,
	ngram ports.NGramScorer,
	overlap ports.OverlapScorer,
	logger ports.Logger,
) *PairScorer {
	return &PairScorer{
		normalizer: normalizer,
		tokenizer:  tokenizer,
		ngram:      ngram,
		overlap:    overlap,
		logger:     logger,
	}
}

// ScorePair returns one score per metric kind for the raw texts. language is
// used for tokenization and language-aware stemming.
func (p *PairScorer) ScorePair(reference, candidate, language string) domain.ModelScores {
	start := time.Now()

	ref := p.normalizer.Normalize(reference)
	cand := p.normalizer.Normalize(candidate)

	scores := domain.ModelScores{
		domain.NGramPrecision: p.ngram.Score(
			p.tokenizer.Tokenize(ref, language),
			p.tokenizer.Tokenize(cand, language),
		),
		domain.OverlapFMeasure: p.overlap.ScoreLanguage(ref, cand, language),
	}

	elapsed := time.Since(start)
	metrics.ObservePair(language, scores, elapsed)
	p.logger.Debug("Scored pair",
		"language", language,
		"ngram", scores[domain.NGramPrecision].Value,
		"overlap", scores[domain.OverlapFMeasure].Value,
		"duration", elapsed,
	)
	return scores
}
