package normalizer

import (
	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/pool"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// ASCII byte classes used by FastNormalizer.
const (
	classDrop byte = iota
	classKeep
	classLower
	classSpace
	classApostrophe
)

// FastNormalizer produces the same output as DefaultNormalizer but handles
// pure ASCII input with a precomputed byte table and pooled buffers. Any
// non-ASCII input is delegated to the default implementation.
type FastNormalizer struct {
	asciiTable [128]byte
	bytePool   *pool.BufferPool
	fallback   ports.Normalizer
}

// NewFastNormalizer creates a new fast normalizer with precomputed tables.
func NewFastNormalizer() ports.Normalizer {
	n := &FastNormalizer{
		bytePool: pool.NewBufferPool(8192),
		fallback: NewDefaultNormalizer(),
	}

	for i := 0; i < 128; i++ {
		b := byte(i)
		switch {
		case b >= 'a' && b <= 'z', b >= '0' && b <= '9':
			n.asciiTable[i] = classKeep
		case b >= 'A' && b <= 'Z':
			n.asciiTable[i] = classLower
		case b == ' ', b == '\t', b == '\n', b == '\v', b == '\f', b == '\r':
			n.asciiTable[i] = classSpace
		case b == apostrophe:
			n.asciiTable[i] = classApostrophe
		default:
			n.asciiTable[i] = classDrop
		}
	}

	return n
}

// Normalize canonicalizes text.
func (n *FastNormalizer) Normalize(text string) domain.NormalizedText {
	if len(text) == 0 {
		return ""
	}

	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			return n.fallback.Normalize(text)
		}
	}

	filtered := n.bytePool.Get()
	defer n.bytePool.Put(filtered)

	for i := 0; i < len(text); i++ {
		b := text[i]
		switch n.asciiTable[b] {
		case classKeep:
			*filtered = append(*filtered, b)
		case classLower:
			*filtered = append(*filtered, b+('a'-'A'))
		case classSpace:
			*filtered = append(*filtered, ' ')
		case classApostrophe:
			*filtered = append(*filtered, apostrophe)
		}
	}

	src := *filtered
	out := make([]byte, 0, len(src))
	pendingSpace := false
	for i, b := range src {
		if b == apostrophe && !(i > 0 && i < len(src)-1 && isASCIILetter(src[i-1]) && isASCIILetter(src[i+1])) {
			b = ' '
		}
		if b == ' ' {
			pendingSpace = len(out) > 0
			continue
		}
		if pendingSpace {
			out = append(out, ' ')
			pendingSpace = false
		}
		out = append(out, b)
	}

	return domain.NormalizedText(out)
}

func isASCIILetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
