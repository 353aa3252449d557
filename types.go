package mteval

import (
	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
	"github.com/baditaflorin/go_mt_eval/internal/warmup"
)

type (
	NormalizedText      = domain.NormalizedText
	MetricKind          = domain.MetricKind
	MetricScore         = domain.MetricScore
	ModelScores         = domain.ModelScores
	OverlapDetail       = domain.OverlapDetail
	ScoreTable          = domain.ScoreTable
	WinRecord           = domain.WinRecord
	TranslationPair     = domain.TranslationPair
	Report              = domain.Report
	TranslationProvider = ports.TranslationProvider
	Logger              = ports.Logger
	WarmUpConfig        = warmup.Config
)

const (
	NGramPrecision  = domain.NGramPrecision
	OverlapFMeasure = domain.OverlapFMeasure
)

var (
	ErrEmptyInput             = domain.ErrEmptyInput
	ErrInconsistentScoreTable = domain.ErrInconsistentScoreTable
	ErrMalformedInput         = domain.ErrMalformedInput
)

// NewScoreTable creates an empty score table.
func NewScoreTable() *ScoreTable {
	return domain.NewScoreTable()
}

// DefaultWarmUpConfig returns the default warm-up configuration.
func DefaultWarmUpConfig() WarmUpConfig {
	return warmup.DefaultConfig()
}
