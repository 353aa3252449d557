package ports

import "github.com/baditaflorin/go_mt_eval/internal/core/domain"

// Tokenizer splits normalized text into word tokens for a language.
// Unknown languages fall back to generic rules.
type Tokenizer interface {
	Tokenize(text domain.NormalizedText, language string) domain.TokenSequence
}

// Stemmer reduces a word to its stem. The language may be ignored.
type Stemmer interface {
	Stem(word, language string) string
}
