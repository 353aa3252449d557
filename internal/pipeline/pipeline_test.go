package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/logger"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/normalizer"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/provider"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/stemmer"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/core/evaluate"
	"github.com/baditaflorin/go_mt_eval/internal/core/ngram"
	"github.com/baditaflorin/go_mt_eval/internal/core/overlap"
	"github.com/baditaflorin/go_mt_eval/internal/core/rank"
)

func newPipeline(t *testing.T, concurrency int) *Pipeline {
	t.Helper()
	log := logger.NewNopLogger()

	ng, err := ngram.NewScorer(ngram.DefaultConfig(), log)
	require.NoError(t, err)
	ov, err := overlap.NewScorer(overlap.DefaultConfig(), log, stemmer.New(stemmer.Generic))
	require.NoError(t, err)
	scorer := evaluate.NewPairScorer(normalizer.NewDefaultNormalizer(), tokenizer.NewWordTokenizer(), ng, ov, log)

	p, err := New(Config{Concurrency: concurrency}, scorer, rank.NewAggregator(log), log)
	require.NoError(t, err)
	return p
}

type staticProvider struct {
	pairs []domain.TranslationPair
	err   error
}

func (s staticProvider) Translations(context.Context) ([]domain.TranslationPair, error) {
	return s.pairs, s.err
}

func TestRunSample(t *testing.T) {
	report, err := newPipeline(t, 4).Run(context.Background(), provider.NewSampleProvider())
	require.NoError(t, err)

	assert.Equal(t, []string{"German", "Polish"}, report.Scores.Languages())
	assert.Equal(t, []string{provider.ModelLlama, provider.ModelPerplexity, provider.ModelMBERT}, report.Scores.Models("German"))
	require.Len(t, report.Ranking, 3)

	total := 0
	for _, r := range report.Ranking {
		assert.Equal(t, 4, r.TotalComparisons)
		total += r.TotalWins
	}
	assert.Equal(t, 4, total)

	for i := 1; i < len(report.Ranking); i++ {
		assert.GreaterOrEqual(t, report.Ranking[i-1].MeanWinRate, report.Ranking[i].MeanWinRate)
	}
}

func TestScoreAllKeepsProviderOrder(t *testing.T) {
	var pairs []domain.TranslationPair
	for _, lang := range []string{"Polish", "German", "French"} {
		for _, model := range []string{"zeta", "alpha", "mu"} {
			pairs = append(pairs, domain.TranslationPair{
				Language:  lang,
				Model:     model,
				Reference: "the story swinging off branches",
				Candidate: "the story swinging " + model,
			})
		}
	}

	// Sequential execution is the reference; parallel must match it.
	want, err := newPipeline(t, 1).ScoreAll(context.Background(), pairs)
	require.NoError(t, err)
	got, err := newPipeline(t, 8).ScoreAll(context.Background(), pairs)
	require.NoError(t, err)

	assert.Equal(t, []string{"Polish", "German", "French"}, got.Languages())
	assert.Equal(t, []string{"zeta", "alpha", "mu"}, got.Models("German"))
	assert.Equal(t, want.Entries(), got.Entries())
}

func TestRunIdenticalCandidateWinsEverything(t *testing.T) {
	ref := "THE STORY. Swinging off branches, playing in valleys....."
	pairs := []domain.TranslationPair{
		{Language: "English", Model: "echo", Reference: ref, Candidate: "the story swinging off branches playing in valleys"},
		{Language: "English", Model: "other", Reference: ref, Candidate: "a tale of trees"},
	}

	report, err := newPipeline(t, 2).Evaluate(context.Background(), pairs)
	require.NoError(t, err)

	s, ok := report.Scores.Score("English", "echo", domain.NGramPrecision)
	require.True(t, ok)
	assert.InDelta(t, 1.0, s.Value, 1e-12)
	s, ok = report.Scores.Score("English", "echo", domain.OverlapFMeasure)
	require.True(t, ok)
	assert.InDelta(t, 1.0, s.Value, 1e-12)

	assert.Equal(t, "echo", report.Ranking[0].Model)
	assert.Equal(t, 100.0, report.Ranking[0].MeanWinRate)
}

func TestRunErrors(t *testing.T) {
	p := newPipeline(t, 2)

	_, err := p.Run(context.Background(), staticProvider{})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	boom := errors.New("boom")
	_, err = p.Run(context.Background(), staticProvider{err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = p.Run(context.Background(), staticProvider{pairs: []domain.TranslationPair{
		{Language: "German", Model: "A"},
		{Language: "German", Model: "B"},
		{Language: "Polish", Model: "A"},
	}})
	assert.ErrorIs(t, err, domain.ErrInconsistentScoreTable)
}

func TestScoreAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newPipeline(t, 2).ScoreAll(ctx, []domain.TranslationPair{{Language: "German", Model: "A"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{}.Validate())
}
