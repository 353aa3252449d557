package stemmer

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
	"github.com/kljensen/snowball/english"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/locale"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// Mode selects how the stemming language is chosen.
type Mode int

const (
	// Generic applies the English Snowball stemmer to every language, which is
	// what the reference ROUGE implementation does.
	Generic Mode = iota
	// LanguageAware uses the Snowball stemmer of the target language when one
	// exists and falls back to Generic otherwise.
	LanguageAware
)

// ParseMode maps a configuration name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "", "generic":
		return Generic, nil
	case "language", "language-aware":
		return LanguageAware, nil
	default:
		return Generic, fmt.Errorf("unknown stemmer mode %q", name)
	}
}

func (m Mode) String() string {
	if m == LanguageAware {
		return "language"
	}
	return "generic"
}

// snowballLanguages maps ISO 639-1 codes to Snowball language names.
var snowballLanguages = map[string]string{
	"en": "english",
	"es": "spanish",
	"fr": "french",
	"hu": "hungarian",
	"no": "norwegian",
	"nb": "norwegian",
	"ru": "russian",
	"sv": "swedish",
}

// SnowballStemmer implements ports.Stemmer on top of the Snowball algorithms.
type SnowballStemmer struct {
	mode Mode
}

// New creates a stemmer for the given mode.
func New(mode Mode) ports.Stemmer {
	return &SnowballStemmer{mode: mode}
}

// Stem returns the stem of word. Words the stemmer rejects are returned unchanged.
func (s *SnowballStemmer) Stem(word, language string) string {
	if s.mode == LanguageAware {
		if name, ok := snowballLanguages[locale.Code(language)]; ok && name != "english" {
			stemmed, err := snowball.Stem(word, name, true)
			if err == nil && stemmed != "" {
				return stemmed
			}
			return word
		}
	}
	if stemmed := english.Stem(word, true); stemmed != "" {
		return stemmed
	}
	return word
}
