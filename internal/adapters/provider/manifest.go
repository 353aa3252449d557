package provider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// Manifest describes an evaluation on disk.
//
//	source: english_script.txt
//	languages:
//	  - name: German
//	    locale: de_DE
//	    reference: chatgpt_german.txt
//	    candidates:
//	      - model: LLama 3.1 405B
//	        file: llama_german.txt
//	      - model: mBERT
//	        text: "DIE GESCHICHTE ..."
//
// Relative paths resolve against the manifest directory. Files that do not
// exist are read as empty text.
type Manifest struct {
	Source    string             `yaml:"source"`
	Languages []ManifestLanguage `yaml:"languages"`
}

// ManifestLanguage is one target language of a manifest.
type ManifestLanguage struct {
	Name          string              `yaml:"name"`
	Locale        string              `yaml:"locale"`
	Reference     string              `yaml:"reference"`
	ReferenceText string              `yaml:"reference_text"`
	Candidates    []ManifestCandidate `yaml:"candidates"`
}

// ManifestCandidate is one model output, either a file or inline text.
type ManifestCandidate struct {
	Model string `yaml:"model"`
	File  string `yaml:"file"`
	Text  string `yaml:"text"`
}

// ManifestProvider reads translation pairs from a manifest file.
type ManifestProvider struct {
	path   string
	dir    string
	logger ports.Logger
}

// NewManifestProvider creates a provider for the manifest at path.
func NewManifestProvider(path string, logger ports.Logger) *ManifestProvider {
	return &ManifestProvider{
		path:   path,
		dir:    filepath.Dir(path),
		logger: logger,
	}
}

// Load parses and validates the manifest.
func (p *ManifestProvider) Load() (*Manifest, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", p.path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every language and candidate is named.
func (m *Manifest) Validate() error {
	if len(m.Languages) == 0 {
		return &domain.MalformedInputError{Field: "languages", Reason: "at least one language is required"}
	}
	seen := make(map[string]bool, len(m.Languages))
	for i, lang := range m.Languages {
		if lang.Name == "" {
			return &domain.MalformedInputError{Field: fmt.Sprintf("languages[%d].name", i), Reason: "must not be empty"}
		}
		if seen[lang.Name] {
			return &domain.MalformedInputError{Field: fmt.Sprintf("languages[%d].name", i), Reason: fmt.Sprintf("duplicate language %q", lang.Name)}
		}
		seen[lang.Name] = true
		for j, c := range lang.Candidates {
			if c.Model == "" {
				return &domain.MalformedInputError{Field: fmt.Sprintf("languages[%d].candidates[%d].model", i, j), Reason: "must not be empty"}
			}
		}
	}
	return nil
}

// Source returns the text of the manifest's source script, if any.
func (p *ManifestProvider) Source() (string, error) {
	m, err := p.Load()
	if err != nil {
		return "", err
	}
	if m.Source == "" {
		return "", nil
	}
	return p.readText(m.Source)
}

// Translations loads the manifest and every referenced file.
func (p *ManifestProvider) Translations(ctx context.Context) ([]domain.TranslationPair, error) {
	m, err := p.Load()
	if err != nil {
		return nil, err
	}

	var pairs []domain.TranslationPair
	for _, lang := range m.Languages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		reference := lang.ReferenceText
		if lang.Reference != "" {
			if reference, err = p.readText(lang.Reference); err != nil {
				return nil, err
			}
		}

		for _, c := range lang.Candidates {
			candidate := c.Text
			if c.File != "" {
				if candidate, err = p.readText(c.File); err != nil {
					return nil, err
				}
			}
			pairs = append(pairs, domain.TranslationPair{
				Language:  lang.Name,
				Locale:    lang.Locale,
				Model:     c.Model,
				Reference: reference,
				Candidate: candidate,
			})
		}
	}

	p.logger.Info("Loaded manifest",
		"path", p.path,
		"languages", len(m.Languages),
		"pairs", len(pairs),
	)
	return pairs, nil
}

// readText reads a file relative to the manifest. A missing file is empty text.
func (p *ManifestProvider) readText(name string) (string, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.dir, path)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		p.logger.Warn("Text file not found, using empty text", "path", path)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
