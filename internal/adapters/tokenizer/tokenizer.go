package tokenizer

import (
	"strings"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/locale"
	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// rule splits one whitespace-delimited word into tokens.
type rule func(word string) []string

// WordTokenizer splits normalized text on whitespace and applies the
// contraction rules of the resolved language. Languages without rules of their
// own, unknown ones included, get the Treebank clitic split.
type WordTokenizer struct {
	rules    map[string]rule
	fallback rule
}

// NewWordTokenizer creates a tokenizer with the built-in language rules.
func NewWordTokenizer() ports.Tokenizer {
	return &WordTokenizer{
		rules: map[string]rule{
			"en": splitEnglishClitic,
			"fr": elisionRule(frenchElisions),
			"it": elisionRule(italianElisions),
			"ca": elisionRule(catalanElisions),
		},
		fallback: splitEnglishClitic,
	}
}

// Tokenize splits text into tokens for language.
func (t *WordTokenizer) Tokenize(text domain.NormalizedText, language string) domain.TokenSequence {
	words := strings.Fields(string(text))
	split, ok := t.rules[locale.Code(language)]
	if !ok {
		split = t.fallback
	}

	tokens := make(domain.TokenSequence, 0, len(words))
	for _, w := range words {
		if strings.IndexByte(w, '\'') < 0 {
			tokens = append(tokens, w)
			continue
		}
		tokens = append(tokens, split(w)...)
	}
	return tokens
}

var englishClitics = []string{"'s", "'re", "'ve", "'ll", "'d", "'m"}

// splitEnglishClitic follows the Penn Treebank convention: "can't" -> "ca" "n't",
// "mother's" -> "mother" "'s".
func splitEnglishClitic(word string) []string {
	if strings.HasSuffix(word, "n't") && len(word) > len("n't") {
		return []string{word[:len(word)-len("n't")], "n't"}
	}
	for _, c := range englishClitics {
		if strings.HasSuffix(word, c) && len(word) > len(c) {
			return []string{word[:len(word)-len(c)], c}
		}
	}
	return []string{word}
}

var (
	frenchElisions  = []string{"l'", "d'", "j'", "m'", "n'", "s'", "t'", "c'", "qu'", "jusqu'", "lorsqu'", "puisqu'"}
	italianElisions = []string{"l'", "d'", "c'", "un'", "dell'", "all'", "dall'", "nell'", "sull'", "quest'", "quell'"}
	catalanElisions = []string{"l'", "d'", "m'", "n'", "s'", "t'"}
)

// elisionRule splits a leading elided article or pronoun: "l'homme" -> "l'" "homme".
func elisionRule(prefixes []string) rule {
	return func(word string) []string {
		for _, p := range prefixes {
			if strings.HasPrefix(word, p) && len(word) > len(p) {
				return []string{p, word[len(p):]}
			}
		}
		return []string{word}
	}
}
