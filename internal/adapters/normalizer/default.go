package normalizer

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/pool"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

const apostrophe = '\''

// DefaultNormalizer implements the reference normalization: NFC, Unicode
// lowercasing, punctuation removal except word-interior apostrophes and
// whitespace collapsing.
type DefaultNormalizer struct {
	runePool *pool.RuneBufferPool
}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{runePool: pool.NewRuneBufferPool(1024)}
}

// Normalize canonicalizes text. It accepts any string, including the empty one.
func (n *DefaultNormalizer) Normalize(text string) domain.NormalizedText {
	if text == "" {
		return ""
	}

	// A Caser is stateful, so each call gets its own.
	lowered := cases.Lower(language.Und).String(norm.NFC.String(text))

	buffer := n.runePool.Get()
	defer n.runePool.Put(buffer)

	for _, r := range lowered {
		switch {
		case isApostrophe(r):
			*buffer = append(*buffer, apostrophe)
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			*buffer = append(*buffer, r)
		case unicode.IsSpace(r):
			*buffer = append(*buffer, ' ')
		}
	}

	return domain.NormalizedText(norm.NFC.String(collapse(*buffer)))
}

// isApostrophe also accepts the typographic apostrophe and the modifier letter
// apostrophe, which translation engines emit in contractions.
func isApostrophe(r rune) bool {
	return r == apostrophe || r == '’' || r == 'ʼ'
}

// collapse turns non-interior apostrophes into spaces, squeezes runs of
// spaces and trims both ends. Input runes are letters, numbers, spaces and
// plain apostrophes only.
func collapse(runes []rune) string {
	out := make([]rune, 0, len(runes))
	pendingSpace := false
	for i, r := range runes {
		if r == apostrophe && !interior(runes, i) {
			r = ' '
		}
		if r == ' ' {
			pendingSpace = len(out) > 0
			continue
		}
		if pendingSpace {
			out = append(out, ' ')
			pendingSpace = false
		}
		out = append(out, r)
	}
	return string(out)
}

func interior(runes []rune, i int) bool {
	return i > 0 && i < len(runes)-1 &&
		unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1])
}
