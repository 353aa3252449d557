// Package locale resolves the loose language identifiers found in evaluation
// inputs ("German", "de", "de_DE", "en_XX") to ISO 639 base languages.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// names covers the English language names used by sentence tokenizer models.
var names = map[string]language.Tag{
	"catalan":    language.Catalan,
	"czech":      language.Czech,
	"danish":     language.Danish,
	"dutch":      language.Dutch,
	"english":    language.English,
	"estonian":   language.Estonian,
	"finnish":    language.Finnish,
	"french":     language.French,
	"german":     language.German,
	"greek":      language.Greek,
	"hungarian":  language.Hungarian,
	"italian":    language.Italian,
	"malayalam":  language.Malayalam,
	"norwegian":  language.Norwegian,
	"polish":     language.Polish,
	"portuguese": language.Portuguese,
	"russian":    language.Russian,
	"slovene":    language.Slovenian,
	"slovenian":  language.Slovenian,
	"spanish":    language.Spanish,
	"swedish":    language.Swedish,
	"turkish":    language.Turkish,
}

// Resolve returns the base language for id. The second result is false when
// id is empty or not recognized.
func Resolve(id string) (language.Base, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return language.Base{}, false
	}
	if tag, ok := names[id]; ok {
		base, _ := tag.Base()
		return base, true
	}

	id = strings.ReplaceAll(id, "_", "-")
	if tag, err := language.Parse(id); err == nil {
		if base, conf := tag.Base(); conf == language.Exact {
			return base, true
		}
	}
	// Locale codes such as mBART's "en_XX" carry regions the parser rejects.
	if i := strings.IndexByte(id, '-'); i > 0 {
		if base, err := language.ParseBase(id[:i]); err == nil {
			return base, true
		}
	}
	return language.Base{}, false
}

// Code returns the ISO 639-1 (or 639-3 when no two-letter code exists) code
// for id, or "" when id is not recognized.
func Code(id string) string {
	base, ok := Resolve(id)
	if !ok {
		return ""
	}
	return base.String()
}
