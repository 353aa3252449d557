package domain

import "encoding/json"

// ModelScores maps a metric kind to the score a model obtained.
type ModelScores map[MetricKind]MetricScore

// ScoreTable maps language -> model -> metric -> score and remembers the order
// in which languages and models were first inserted.
type ScoreTable struct {
	languages []string
	entries   map[string]*languageScores
}

type languageScores struct {
	models []string
	scores map[string]ModelScores
}

// NewScoreTable creates an empty table.
func NewScoreTable() *ScoreTable {
	return &ScoreTable{entries: make(map[string]*languageScores)}
}

// Set records a score, adding the language and model on first use.
// Setting the same (language, model, kind) again overwrites the value but keeps its position.
func (t *ScoreTable) Set(language, model string, score MetricScore) {
	if t.entries == nil {
		t.entries = make(map[string]*languageScores)
	}
	ls, ok := t.entries[language]
	if !ok {
		ls = &languageScores{scores: make(map[string]ModelScores)}
		t.entries[language] = ls
		t.languages = append(t.languages, language)
	}
	ms, ok := ls.scores[model]
	if !ok {
		ms = make(ModelScores, len(MetricKinds))
		ls.scores[model] = ms
		ls.models = append(ls.models, model)
	}
	ms[score.Kind] = score
}

// Languages returns the languages in insertion order.
func (t *ScoreTable) Languages() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.languages))
	copy(out, t.languages)
	return out
}

// Models returns the models scored for a language in insertion order.
func (t *ScoreTable) Models(language string) []string {
	if t == nil {
		return nil
	}
	ls, ok := t.entries[language]
	if !ok {
		return nil
	}
	out := make([]string, len(ls.models))
	copy(out, ls.models)
	return out
}

// Score looks up a single score.
func (t *ScoreTable) Score(language, model string, kind MetricKind) (MetricScore, bool) {
	if t == nil {
		return MetricScore{}, false
	}
	ls, ok := t.entries[language]
	if !ok {
		return MetricScore{}, false
	}
	ms, ok := ls.scores[model]
	if !ok {
		return MetricScore{}, false
	}
	s, ok := ms[kind]
	return s, ok
}

// Len returns the number of languages in the table.
func (t *ScoreTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.languages)
}

// ModelEntry is the serialized form of one model's scores.
type ModelEntry struct {
	Model  string                 `json:"model" yaml:"model"`
	Scores map[MetricKind]float64 `json:"scores" yaml:"scores"`
}

// LanguageEntry is the serialized form of one language.
type LanguageEntry struct {
	Language string       `json:"language" yaml:"language"`
	Models   []ModelEntry `json:"models" yaml:"models"`
}

// Entries flattens the table into ordered plain structures for reporting collaborators.
func (t *ScoreTable) Entries() []LanguageEntry {
	if t == nil {
		return nil
	}
	out := make([]LanguageEntry, 0, len(t.languages))
	for _, lang := range t.languages {
		ls := t.entries[lang]
		entry := LanguageEntry{Language: lang, Models: make([]ModelEntry, 0, len(ls.models))}
		for _, model := range ls.models {
			scores := make(map[MetricKind]float64, len(ls.scores[model]))
			for kind, s := range ls.scores[model] {
				scores[kind] = s.Value
			}
			entry.Models = append(entry.Models, ModelEntry{Model: model, Scores: scores})
		}
		out = append(out, entry)
	}
	return out
}

// MarshalJSON keeps language and model order, which a plain map would lose.
func (t *ScoreTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Entries())
}

// MarshalYAML keeps language and model order.
func (t *ScoreTable) MarshalYAML() (interface{}, error) {
	return t.Entries(), nil
}

// UnmarshalJSON rebuilds a table from its ordered form.
func (t *ScoreTable) UnmarshalJSON(data []byte) error {
	var entries []LanguageEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*t = *FromEntries(entries)
	return nil
}

// FromEntries rebuilds a table from ordered entries. Metric kinds are applied
// in MetricKinds order so the result does not depend on map iteration.
func FromEntries(entries []LanguageEntry) *ScoreTable {
	t := NewScoreTable()
	for _, le := range entries {
		for _, me := range le.Models {
			for _, kind := range MetricKinds {
				if v, ok := me.Scores[kind]; ok {
					t.Set(le.Language, me.Model, MetricScore{Kind: kind, Value: v})
				}
			}
		}
	}
	return t
}
