package warmup

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/logger"
	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
)

type countingNormalizer struct{ calls atomic.Int64 }

func (c *countingNormalizer) Normalize(text string) domain.NormalizedText {
	c.calls.Add(1)
	return domain.NormalizedText(strings.ToLower(text))
}

type countingScorer struct {
	calls     atomic.Int64
	languages sync.Map
}

func (c *countingScorer) ScorePair(_, _, language string) domain.ModelScores {
	c.calls.Add(1)
	c.languages.Store(language, true)
	return domain.ModelScores{}
}

func TestWarmUp(t *testing.T) {
	norm := &countingNormalizer{}
	scorer := &countingScorer{}

	m := NewManager(logger.NewNopLogger(), Config{
		Concurrency: 3,
		Iterations:  10,
		SampleWords: 20,
		Languages:   []string{"German", "Polish"},
	})
	m.RegisterNormalizer(norm)
	m.RegisterScorer(scorer)

	stats := m.WarmUp(context.Background())
	assert.Equal(t, 30, stats.Normalizations)
	assert.Equal(t, 30, stats.PairsScored)
	assert.Equal(t, int64(30), norm.calls.Load())
	assert.Equal(t, int64(30), scorer.calls.Load())

	_, german := scorer.languages.Load("German")
	_, polish := scorer.languages.Load("Polish")
	assert.True(t, german)
	assert.True(t, polish)
}

func TestWarmUpStopsOnCancel(t *testing.T) {
	scorer := &countingScorer{}
	m := NewManager(logger.NewNopLogger(), Config{Concurrency: 2, Iterations: 1000, SampleWords: 10, Duration: time.Minute})
	m.RegisterScorer(scorer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats := m.WarmUp(ctx)
	assert.Equal(t, 0, stats.PairsScored)
}

func TestGenerateText(t *testing.T) {
	text := generateSampleText(16)
	assert.Len(t, strings.Fields(text), 16)
	assert.Contains(t, text, ". ")

	similar := generateSimilarText(text, 0.5)
	words := strings.Fields(similar)
	assert.Len(t, words, 16)
	assert.Equal(t, "replaced", words[0])
	assert.Equal(t, strings.Fields(text)[15], words[15])
}
