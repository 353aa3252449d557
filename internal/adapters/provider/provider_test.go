package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/logger"
	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
)

func TestSampleProvider(t *testing.T) {
	pairs, err := NewSampleProvider().Translations(context.Background())
	require.NoError(t, err)
	require.Len(t, pairs, 6)

	assert.Equal(t, "German", pairs[0].Language)
	assert.Equal(t, "de_DE", pairs[0].Locale)
	assert.Equal(t, ModelLlama, pairs[0].Model)
	assert.Equal(t, ModelPerplexity, pairs[1].Model)
	assert.Equal(t, ModelMBERT, pairs[2].Model)
	assert.Equal(t, "Polish", pairs[3].Language)
	assert.Equal(t, "pl_PL", pairs[5].Locale)

	for _, p := range pairs {
		assert.NotEmpty(t, p.Reference)
		assert.NotEmpty(t, p.Candidate)
	}
}

func TestSampleProviderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSampleProvider().Translations(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestManifestProvider(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "source.txt", "One. Two! Three?")
	writeFile(t, dir, "ref_de.txt", "Die Geschichte")
	writeFile(t, dir, "a_de.txt", "Die Geschichte.")
	writeFile(t, dir, "manifest.yaml", `
source: source.txt
languages:
  - name: German
    locale: de_DE
    reference: ref_de.txt
    candidates:
      - model: A
        file: a_de.txt
      - model: B
        text: "Eine Geschichte"
      - model: C
        file: missing.txt
  - name: Polish
    reference_text: Historia
    candidates:
      - model: A
        text: Historia
`)

	p := NewManifestProvider(filepath.Join(dir, "manifest.yaml"), logger.NewNopLogger())
	pairs, err := p.Translations(context.Background())
	require.NoError(t, err)

	want := []domain.TranslationPair{
		{Language: "German", Locale: "de_DE", Model: "A", Reference: "Die Geschichte", Candidate: "Die Geschichte."},
		{Language: "German", Locale: "de_DE", Model: "B", Reference: "Die Geschichte", Candidate: "Eine Geschichte"},
		{Language: "German", Locale: "de_DE", Model: "C", Reference: "Die Geschichte", Candidate: ""},
		{Language: "Polish", Model: "A", Reference: "Historia", Candidate: "Historia"},
	}
	assert.Equal(t, want, pairs)

	src, err := p.Source()
	require.NoError(t, err)
	assert.Equal(t, "One. Two! Three?", src)
}

func TestManifestValidation(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "no languages", manifest: "languages: []\n"},
		{name: "unnamed language", manifest: "languages:\n  - locale: de\n"},
		{name: "duplicate language", manifest: "languages:\n  - name: German\n  - name: German\n"},
		{name: "unnamed model", manifest: "languages:\n  - name: German\n    candidates:\n      - text: hallo\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "m.yaml", tc.manifest)
			_, err := NewManifestProvider(filepath.Join(dir, "m.yaml"), logger.NewNopLogger()).Translations(context.Background())
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}

func TestManifestMissingFile(t *testing.T) {
	_, err := NewManifestProvider(filepath.Join(t.TempDir(), "nope.yaml"), logger.NewNopLogger()).Translations(context.Background())
	assert.Error(t, err)
}
