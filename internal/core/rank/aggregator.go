package rank

import (
	"sort"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// Aggregator turns a complete score table into per-model win records.
type Aggregator struct {
	logger ports.Logger
}

// NewAggregator creates a new aggregator.
func NewAggregator(logger ports.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate counts, for every language and metric, the model with the
// strictly highest score. Ties go to the model inserted first for that
// language. Every model is charged two comparisons per language.
func (a *Aggregator) Aggregate(scores *domain.ScoreTable) (map[string]domain.WinRecord, error) {
	records, err := a.aggregate(scores)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.WinRecord, len(records))
	for _, r := range records {
		out[r.Model] = r
	}
	return out, nil
}

// Rank is Aggregate returned as a slice ordered by mean win rate, highest
// first. Models with equal rates keep their insertion order.
func (a *Aggregator) Rank(scores *domain.ScoreTable) ([]domain.WinRecord, error) {
	records, err := a.aggregate(scores)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MeanWinRate > records[j].MeanWinRate
	})
	return records, nil
}

func (a *Aggregator) aggregate(scores *domain.ScoreTable) ([]domain.WinRecord, error) {
	languages := scores.Languages()
	if len(languages) == 0 {
		a.logger.Error("Cannot aggregate an empty score table")
		return nil, &domain.EmptyInputError{What: "score table has no languages"}
	}

	models := scores.Models(languages[0])
	if err := checkConsistency(scores, languages, models); err != nil {
		a.logger.Error("Inconsistent score table", "error", err)
		return nil, err
	}

	index := make(map[string]int, len(models))
	records := make([]domain.WinRecord, len(models))
	for i, m := range models {
		index[m] = i
		records[i].Model = m
	}

	for _, lang := range languages {
		for _, kind := range domain.MetricKinds {
			var (
				winner string
				best   float64
				found  bool
			)
			for _, m := range scores.Models(lang) {
				s, _ := scores.Score(lang, m, kind)
				if !found || s.Value > best {
					winner, best, found = m, s.Value, true
				}
			}

			r := &records[index[winner]]
			switch kind {
			case domain.NGramPrecision:
				r.NGramWins++
			case domain.OverlapFMeasure:
				r.OverlapWins++
			}
			a.logger.Debug("Comparison winner",
				"language", lang,
				"metric", kind,
				"model", winner,
				"score", best,
			)
		}
	}

	comparisons := len(domain.MetricKinds) * len(languages)
	for i := range records {
		r := &records[i]
		r.TotalWins = r.NGramWins + r.OverlapWins
		r.TotalComparisons = comparisons
		r.MeanWinRate = float64(r.TotalWins) / float64(comparisons) * 100
	}

	a.logger.Info("Aggregated win rates",
		"languages", len(languages),
		"models", len(models),
	)
	return records, nil
}

// checkConsistency verifies that every language carries the same model set
// as the first one and that every model has every metric.
func checkConsistency(scores *domain.ScoreTable, languages, models []string) error {
	want := make(map[string]bool, len(models))
	for _, m := range models {
		want[m] = true
	}

	for _, lang := range languages {
		got := scores.Models(lang)
		seen := make(map[string]bool, len(got))
		for _, m := range got {
			if !want[m] {
				return &domain.InconsistentScoreTableError{
					Language: lang,
					Model:    m,
					Reason:   "model is not scored for language " + languages[0],
				}
			}
			seen[m] = true

			var missing []string
			for _, kind := range domain.MetricKinds {
				if _, ok := scores.Score(lang, m, kind); !ok {
					missing = append(missing, string(kind))
				}
			}
			if len(missing) > 0 {
				return &domain.InconsistentScoreTableError{
					Language: lang,
					Model:    m,
					Missing:  missing,
					Reason:   "metric scores missing",
				}
			}
		}

		var missing []string
		for _, m := range models {
			if !seen[m] {
				missing = append(missing, m)
			}
		}
		if len(missing) > 0 {
			return &domain.InconsistentScoreTableError{
				Language: lang,
				Missing:  missing,
				Reason:   "models not scored",
			}
		}
	}
	return nil
}
