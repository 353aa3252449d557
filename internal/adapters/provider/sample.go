package provider

import (
	"context"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
)

// SampleSource is the English script the sample translations were made from.
const SampleSource = `THE STORY

Swinging off branches, playing in valleys.....
Should I be pampered in mother's lap every day.....
`

// Sample model names.
const (
	ModelLlama      = "LLama 3.1 405B"
	ModelPerplexity = "Perplexity"
	ModelMBERT      = "mBERT"
)

type sampleLanguage struct {
	name       string
	locale     string
	reference  string
	candidates []sampleCandidate
}

type sampleCandidate struct {
	model string
	text  string
}

var sampleLanguages = []sampleLanguage{
	{
		name:   "German",
		locale: "de_DE",
		reference: `DIE GESCHICHTE

Schwingend von Ästen, spielend in Tälern
Sollte ich jeden Tag auf dem Schoß meiner Mutter verwöhnt werden......`,
		candidates: []sampleCandidate{
			{model: ModelLlama, text: `DIE GESCHICHTE

Von Ästen schwingend, in Tälern spielend

Ich sollte jeden Tag in Mutters Schoß gehätschelt werden.......
`},
			{model: ModelPerplexity, text: `DIE GESCHICHTE
Vom Schwingen der Äste, Spielen in Tälern
Ich sollte jeden Tag in Mamas Schoß gewiegt werden........
`},
			{model: ModelMBERT, text: `DIE GESCHICHTE
Schwingen von Ästen, Spielen in Tälern.
Sollte ich jeden Tag auf dem Schoß meiner Mutter sitzen.
`},
		},
	},
	{
		name:   "Polish",
		locale: "pl_PL",
		reference: `HISTORIA

Huśtając się z gałęzi, bawiąc się w dolinach
Powinienem być codziennie tulony na kolanach matki........`,
		candidates: []sampleCandidate{
			{model: ModelLlama, text: `HISTORIA

Huśtając się na gałęziach, bawiąc się w dolinach.......
`},
			{model: ModelPerplexity, text: `HISTORIA
Huśtając się z gałęzi, bawiąc się w dolinach
Powinienem być codziennie tulony w ramionach matki........
`},
			{model: ModelMBERT, text: `HISTORIA
Huśtanie się z gałęzi, zabawa w dolinach.
Czy powinienem codziennie być pieszczony na kolanach matki.
`},
		},
	},
}

// SampleProvider serves a small built-in corpus: German and Polish reference
// translations of SampleSource and the output of three translation models.
type SampleProvider struct{}

// NewSampleProvider creates the built-in sample provider.
func NewSampleProvider() *SampleProvider {
	return &SampleProvider{}
}

// Source returns the untranslated script.
func (p *SampleProvider) Source() string {
	return SampleSource
}

// Translations returns one pair per (language, model) in a fixed order.
func (p *SampleProvider) Translations(ctx context.Context) ([]domain.TranslationPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var pairs []domain.TranslationPair
	for _, lang := range sampleLanguages {
		for _, c := range lang.candidates {
			pairs = append(pairs, domain.TranslationPair{
				Language:  lang.name,
				Locale:    lang.locale,
				Model:     c.model,
				Reference: lang.reference,
				Candidate: c.text,
			})
		}
	}
	return pairs, nil
}
