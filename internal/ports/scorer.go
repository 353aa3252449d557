package ports

import "github.com/baditaflorin/go_mt_eval/internal/core/domain"

// NGramScorer scores a candidate token sequence against a reference.
type NGramScorer interface {
	Score(reference, candidate domain.TokenSequence) domain.MetricScore
}

// OverlapScorer scores a candidate text against a reference by subsequence
// overlap. ScoreLanguage passes a language hint to the stemmer.
type OverlapScorer interface {
	Score(reference, candidate domain.NormalizedText) domain.MetricScore
	ScoreLanguage(reference, candidate domain.NormalizedText, language string) domain.MetricScore
}

// PairScorer computes every metric for one reference/candidate pair of raw texts.
type PairScorer interface {
	ScorePair(reference, candidate, language string) domain.ModelScores
}
