package ngram

import (
	"errors"
	"math"
	"strings"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// Config holds configuration for the n-gram precision scorer.
type Config struct {
	// MaxOrder is the highest n-gram order; orders 1..MaxOrder are weighted equally.
	MaxOrder int
	// Smoothing enables additive smoothing of zero-match orders.
	Smoothing bool
	// Epsilon is the count added to a zero-match numerator when smoothing.
	Epsilon float64
	// EffectiveOrder drops orders for which the candidate has no n-grams at
	// all, so texts shorter than MaxOrder tokens can still reach 1.0.
	EffectiveOrder bool
}

// DefaultConfig returns the reference configuration: orders 1..4, additive
// smoothing with epsilon 0.1, effective order on.
func DefaultConfig() Config {
	return Config{
		MaxOrder:       4,
		Smoothing:      true,
		Epsilon:        0.1,
		EffectiveOrder: true,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MaxOrder < 1 {
		return errors.New("maxOrder must be at least 1")
	}
	if c.Smoothing && (c.Epsilon <= 0 || c.Epsilon >= 1) {
		return errors.New("epsilon must be between 0 and 1 when smoothing is enabled")
	}
	return nil
}

// Result holds the full outcome of one scoring call.
type Result struct {
	Score           domain.MetricScore
	Matches         []int
	Totals          []int
	Precisions      []float64
	BrevityPenalty  float64
	ReferenceLength int
	CandidateLength int
}

// Scorer computes a smoothed, brevity-penalized geometric mean of modified
// n-gram precisions against a single reference.
type Scorer struct {
	config Config
	logger ports.Logger
}

// NewScorer creates a new n-gram scorer.
func NewScorer(config Config, logger ports.Logger) (*Scorer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Scorer{
		config: config,
		logger: logger,
	}, nil
}

// Score returns the n-gram precision score of candidate against reference.
func (s *Scorer) Score(reference, candidate domain.TokenSequence) domain.MetricScore {
	return s.Compute(reference, candidate).Score
}

// Compute returns the score together with the per-order counts.
func (s *Scorer) Compute(reference, candidate domain.TokenSequence) Result {
	maxOrder := s.config.MaxOrder
	res := Result{
		Score:           domain.MetricScore{Kind: domain.NGramPrecision},
		Matches:         make([]int, maxOrder),
		Totals:          make([]int, maxOrder),
		Precisions:      make([]float64, maxOrder),
		ReferenceLength: len(reference),
		CandidateLength: len(candidate),
	}

	if len(candidate) == 0 {
		s.logger.Debug("Empty candidate, n-gram score is zero", "reference_length", len(reference))
		return res
	}

	for n := 1; n <= maxOrder; n++ {
		res.Matches[n-1], res.Totals[n-1] = clippedMatches(reference, candidate, n)
	}
	res.BrevityPenalty = brevityPenalty(len(reference), len(candidate))

	// No unigram overlap means no higher-order overlap either.
	if res.Matches[0] == 0 {
		s.logger.Debug("No unigram matches, n-gram score is zero",
			"reference_length", len(reference),
			"candidate_length", len(candidate),
		)
		return res
	}

	var logSum float64
	orders := 0
	for n := 1; n <= maxOrder; n++ {
		matches, total := res.Matches[n-1], res.Totals[n-1]
		if total == 0 && s.config.EffectiveOrder {
			continue
		}
		denominator := float64(max(total, 1))
		p := float64(matches) / denominator
		if matches == 0 {
			if !s.config.Smoothing {
				s.logger.Debug("Zero matches without smoothing, n-gram score is zero", "order", n)
				return res
			}
			p = s.config.Epsilon / denominator
		}
		res.Precisions[n-1] = p
		logSum += math.Log(p)
		orders++
	}

	score := res.BrevityPenalty * math.Exp(logSum/float64(orders))
	res.Score.Value = clamp(score)

	s.logger.Debug("Computed n-gram score",
		"score", res.Score.Value,
		"matches", res.Matches,
		"totals", res.Totals,
		"brevity_penalty", res.BrevityPenalty,
	)
	return res
}

// clippedMatches counts candidate n-grams of order n, each clipped to the
// number of times it occurs in the reference.
func clippedMatches(reference, candidate domain.TokenSequence, n int) (matches, total int) {
	if len(candidate) < n {
		return 0, 0
	}
	candCounts := counts(candidate, n)
	refCounts := counts(reference, n)
	for gram, c := range candCounts {
		matches += min(c, refCounts[gram])
		total += c
	}
	return matches, total
}

// counts returns the multiset of n-grams. Tokens never contain a space, so
// joining with a space gives an unambiguous key.
func counts(tokens domain.TokenSequence, n int) map[string]int {
	out := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		out[strings.Join(tokens[i:i+n], " ")]++
	}
	return out
}

func brevityPenalty(refLen, candLen int) float64 {
	switch {
	case candLen == 0:
		return 0
	case candLen > refLen:
		return 1
	default:
		return math.Exp(1 - float64(refLen)/float64(candLen))
	}
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
