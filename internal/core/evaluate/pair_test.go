package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/logger"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/normalizer"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/stemmer"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/core/ngram"
	"github.com/baditaflorin/go_mt_eval/internal/core/overlap"
)

func newPairScorer(t *testing.T) *PairScorer {
	t.Helper()
	log := logger.NewNopLogger()

	ng, err := ngram.NewScorer(ngram.DefaultConfig(), log)
	require.NoError(t, err)
	ov, err := overlap.NewScorer(overlap.DefaultConfig(), log, stemmer.New(stemmer.Generic))
	require.NoError(t, err)

	return NewPairScorer(normalizer.NewDefaultNormalizer(), tokenizer.NewWordTokenizer(), ng, ov, log)
}

func TestScorePairIdentityAfterNormalization(t *testing.T) {
	p := newPairScorer(t)
	scores := p.ScorePair(
		"THE STORY. Swinging off branches, playing in valleys.....",
		"the story swinging off branches playing in valleys",
		"English",
	)

	require.Len(t, scores, len(domain.MetricKinds))
	assert.InDelta(t, 1.0, scores[domain.NGramPrecision].Value, 1e-12)
	assert.InDelta(t, 1.0, scores[domain.OverlapFMeasure].Value, 1e-12)
	assert.Equal(t, domain.NGramPrecision, scores[domain.NGramPrecision].Kind)
	assert.Equal(t, domain.OverlapFMeasure, scores[domain.OverlapFMeasure].Kind)
}

func TestScorePairEmptyCandidate(t *testing.T) {
	p := newPairScorer(t)
	scores := p.ScorePair("Die Geschichte", "", "German")
	assert.Equal(t, 0.0, scores[domain.NGramPrecision].Value)
	assert.Equal(t, 0.0, scores[domain.OverlapFMeasure].Value)

	scores = p.ScorePair("", "...!!!", "German")
	assert.Equal(t, 0.0, scores[domain.NGramPrecision].Value)
	assert.Equal(t, 0.0, scores[domain.OverlapFMeasure].Value)
}

func TestScorePairRange(t *testing.T) {
	p := newPairScorer(t)
	texts := []string{
		"",
		"Schwingend von Ästen, spielend in Tälern.....",
		"Huśtając się z gałęzi, bawiąc się w dolinach.....",
		"Should I be pampered in mother's lap every day?",
		"Sollte ich jeden Tag auf dem Schoß meiner Mutter verwöhnt werden?",
	}
	for _, ref := range texts {
		for _, cand := range texts {
			for kind, s := range p.ScorePair(ref, cand, "de") {
				assert.GreaterOrEqual(t, s.Value, 0.0, "%s ref=%q cand=%q", kind, ref, cand)
				assert.LessOrEqual(t, s.Value, 1.0, "%s ref=%q cand=%q", kind, ref, cand)
			}
		}
	}
}

func TestScorePairPrefersCloserCandidate(t *testing.T) {
	p := newPairScorer(t)
	ref := "Ich sollte jeden Tag im Schoß meiner Mutter verwöhnt werden."
	near := p.ScorePair(ref, "Ich sollte jeden Tag im Schoß meiner Mutter verwöhnt sein.", "German")
	far := p.ScorePair(ref, "Sollte ich täglich auf Mamas Knien sitzen?", "German")

	for _, kind := range domain.MetricKinds {
		assert.Greater(t, near[kind].Value, far[kind].Value, kind)
	}
}
