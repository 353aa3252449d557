package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
)

func TestWordTokenizer(t *testing.T) {
	tests := []struct {
		name     string
		text     domain.NormalizedText
		language string
		want     domain.TokenSequence
	}{
		{
			name:     "empty",
			text:     "",
			language: "english",
			want:     domain.TokenSequence{},
		},
		{
			name:     "english possessive",
			text:     "should i be pampered in mother's lap",
			language: "english",
			want:     domain.TokenSequence{"should", "i", "be", "pampered", "in", "mother", "'s", "lap"},
		},
		{
			name:     "english negation",
			text:     "i can't and won't",
			language: "en_XX",
			want:     domain.TokenSequence{"i", "ca", "n't", "and", "wo", "n't"},
		},
		{
			name:     "french elision",
			text:     "l'homme qu'il aime",
			language: "fr",
			want:     domain.TokenSequence{"l'", "homme", "qu'", "il", "aime"},
		},
		{
			name:     "german whitespace",
			text:     "ich sollte jeden tag in mutters schoß",
			language: "german",
			want:     domain.TokenSequence{"ich", "sollte", "jeden", "tag", "in", "mutters", "schoß"},
		},
		{
			name:     "polish keeps apostrophes",
			text:     "o'neill bawiąc się",
			language: "pl_PL",
			want:     domain.TokenSequence{"o'neill", "bawiąc", "się"},
		},
		{
			name:     "german clitic",
			text:     "wie geht's dir",
			language: "de_DE",
			want:     domain.TokenSequence{"wie", "geht", "'s", "dir"},
		},
		{
			name:     "unknown language uses clitic split",
			text:     "mother's lap",
			language: "klingonese",
			want:     domain.TokenSequence{"mother", "'s", "lap"},
		},
	}

	tok := NewWordTokenizer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tok.Tokenize(tc.text, tc.language)
			assert.Equal(t, len(tc.want), len(got))
			if len(tc.want) > 0 {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestWordTokenizerIsDeterministic(t *testing.T) {
	tok := NewWordTokenizer()
	text := domain.NormalizedText("the story swinging off branches it's mine")
	first := tok.Tokenize(text, "english")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tok.Tokenize(text, "english"))
	}
}
