package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/logger"
)

func TestCountSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "punctuation only", in: "...!?", want: 0},
		{name: "no terminator", in: "one sentence", want: 1},
		{name: "mixed", in: "One. Two! Three? Four", want: 4},
		{name: "runs of dots", in: "Wait..... what?!", want: 2},
		{name: "blank segments", in: "A.  . \n. B.", want: 2},
		{
			name: "story",
			in:   "THE STORY\n\nSwinging off branches, playing in valleys.....\nShould I be pampered in mother's lap every day.....\n",
			want: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CountSentences(tc.in))
		})
	}
}

type recordingLogger struct {
	logger.NopLogger
	warnings []string
}

func (r *recordingLogger) Warn(msg string, _ ...interface{}) {
	r.warnings = append(r.warnings, msg)
}

func TestCheckScriptSize(t *testing.T) {
	log := &recordingLogger{}
	assert.Equal(t, 2, CheckScriptSize("One. Two.", log))
	assert.Len(t, log.warnings, 1)

	log = &recordingLogger{}
	long := strings.Repeat("Sentence. ", MinSentences)
	assert.Equal(t, MinSentences, CheckScriptSize(long, log))
	assert.Empty(t, log.warnings)
}
