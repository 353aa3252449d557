package ports

import (
	"context"
	"io"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
)

// TranslationProvider supplies the reference and candidate texts to evaluate.
type TranslationProvider interface {
	Translations(ctx context.Context) ([]domain.TranslationPair, error)
}

// ResultsRenderer presents a finished evaluation.
type ResultsRenderer interface {
	Render(w io.Writer, report domain.Report) error
}
