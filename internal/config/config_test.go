package config

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, logger.LevelInfo, cfg.LogLevel())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*1024*1024, cfg.Server.MaxRequestSize)
	assert.True(t, cfg.Server.WarmUp)
	assert.True(t, cfg.Scoring.Smoothing)
	assert.True(t, cfg.Scoring.Stemming)
	assert.Equal(t, "generic", cfg.Scoring.StemmerMode)
	assert.Equal(t, runtime.NumCPU(), cfg.Scoring.Concurrency)
	assert.Equal(t, "table", cfg.Scoring.Format)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"MTEVAL_LOG_LEVEL":    "debug",
		"MTEVAL_PORT":         "9090",
		"MTEVAL_SMOOTHING":    "false",
		"MTEVAL_STEMMER_MODE": "language",
		"MTEVAL_CONCURRENCY":  "3",
		"MTEVAL_READ_TIMEOUT": "5s",
		"MTEVAL_FORMAT":       "yaml",
		"PORT":                "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, logger.LevelDebug, cfg.LogLevel())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Scoring.Smoothing)
	assert.Equal(t, "language", cfg.Scoring.StemmerMode)
	assert.Equal(t, 3, cfg.Scoring.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "yaml", cfg.Scoring.Format)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"MTEVAL_LOG_LEVEL":    "loud",
		"MTEVAL_PORT":         "70000",
		"MTEVAL_STEMMER_MODE": "porter",
		"MTEVAL_NORMALIZER":   "turbo",
		"MTEVAL_FORMAT":       "xml",
		"MTEVAL_CONCURRENCY":  "-1",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{key: value}))
			assert.Error(t, err)
		})
	}

	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{"MTEVAL_PORT": "abc"}))
	assert.Error(t, err)
}
