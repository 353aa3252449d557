package ports

import "github.com/baditaflorin/go_mt_eval/internal/core/domain"

// Normalizer defines the interface for text normalization.
type Normalizer interface {
	Normalize(text string) domain.NormalizedText
}
