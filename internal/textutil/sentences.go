// Package textutil holds small helpers for inspecting source scripts.
package textutil

import (
	"strings"

	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// MinSentences is the recommended minimum size of an evaluation script.
const MinSentences = 100

// CountSentences counts the non-blank segments between runs of '.', '!' and '?'.
func CountSentences(text string) int {
	n := 0
	for _, s := range strings.FieldsFunc(text, isTerminator) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

// CheckScriptSize logs the sentence count and warns when the script is
// shorter than MinSentences. It returns the count.
func CheckScriptSize(text string, logger ports.Logger) int {
	n := CountSentences(text)
	logger.Info("Source script size", "sentences", n)
	if n < MinSentences {
		logger.Warn("Script contains fewer sentences than recommended, consider using a longer script",
			"sentences", n,
			"recommended", MinSentences,
		)
	}
	return n
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
