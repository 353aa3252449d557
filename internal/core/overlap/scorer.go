package overlap

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// Config holds configuration for the overlap scorer.
type Config struct {
	// Stemming reduces words to their stems before matching.
	Stemming bool
	// MinStemLength is the rune length a word must exceed to be stemmed.
	MinStemLength int
}

// DefaultConfig returns the reference configuration: stemming on for words
// longer than three runes.
func DefaultConfig() Config {
	return Config{
		Stemming:      true,
		MinStemLength: 3,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MinStemLength < 0 {
		return errors.New("minStemLength must not be negative")
	}
	return nil
}

// Scorer computes the F-measure of the longest common subsequence of words.
type Scorer struct {
	config  Config
	logger  ports.Logger
	stemmer ports.Stemmer
}

// NewScorer creates a new overlap scorer. The stemmer may be nil when
// stemming is disabled.
func NewScorer(config Config, logger ports.Logger, stemmer ports.Stemmer) (*Scorer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Stemming && stemmer == nil {
		return nil, errors.New("stemming is enabled but no stemmer was provided")
	}

	return &Scorer{
		config:  config,
		logger:  logger,
		stemmer: stemmer,
	}, nil
}

// Score returns the overlap F-measure of candidate against reference using
// language-independent stemming.
func (s *Scorer) Score(reference, candidate domain.NormalizedText) domain.MetricScore {
	return s.ScoreLanguage(reference, candidate, "")
}

// ScoreLanguage is Score with a language hint for the stemmer.
func (s *Scorer) ScoreLanguage(reference, candidate domain.NormalizedText, language string) domain.MetricScore {
	return domain.MetricScore{
		Kind:  domain.OverlapFMeasure,
		Value: s.Detail(reference, candidate, language).FMeasure,
	}
}

// Detail returns precision, recall and F-measure of the overlap.
func (s *Scorer) Detail(reference, candidate domain.NormalizedText, language string) domain.OverlapDetail {
	refWords := s.words(reference, language)
	candWords := s.words(candidate, language)

	detail := domain.OverlapDetail{
		ReferenceLength: len(refWords),
		CandidateLength: len(candWords),
	}
	if len(refWords) == 0 || len(candWords) == 0 {
		s.logger.Debug("Empty side, overlap score is zero",
			"reference_length", len(refWords),
			"candidate_length", len(candWords),
		)
		return detail
	}

	detail.LCSLength = lcsLength(refWords, candWords)
	detail.Precision = float64(detail.LCSLength) / float64(len(candWords))
	detail.Recall = float64(detail.LCSLength) / float64(len(refWords))
	if detail.Precision+detail.Recall > 0 {
		detail.FMeasure = 2 * detail.Precision * detail.Recall / (detail.Precision + detail.Recall)
	}

	s.logger.Debug("Computed overlap score",
		"lcs", detail.LCSLength,
		"precision", detail.Precision,
		"recall", detail.Recall,
		"f_measure", detail.FMeasure,
	)
	return detail
}

// words splits text on every rune that is not a letter or a number, so
// "mother's" yields "mother" and "s", and stems long words.
func (s *Scorer) words(text domain.NormalizedText, language string) []string {
	fields := strings.FieldsFunc(string(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if !s.config.Stemming {
		return fields
	}
	for i, w := range fields {
		if utf8.RuneCountInString(w) > s.config.MinStemLength {
			fields[i] = s.stemmer.Stem(w, language)
		}
	}
	return fields
}

// lcsLength returns the length of the longest common subsequence using two
// rolling rows over the shorter sequence.
func lcsLength(a, b []string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
