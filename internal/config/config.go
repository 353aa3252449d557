// Package config loads process configuration for the mteval binary from the
// environment (prefix MTEVAL_) after reading an optional .env file.
package config

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/baditaflorin/go_mt_eval/internal/adapters/logger"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/normalizer"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/renderer"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/stemmer"
)

// Prefix is prepended to every environment variable name.
const Prefix = "MTEVAL_"

type LogConfig struct {
	Level string `env:"LOG_LEVEL,default=info"`
	JSON  bool   `env:"LOG_JSON,default=false"`
	File  string `env:"LOG_FILE"`
}

type ServerConfig struct {
	Port           int           `env:"PORT,default=8080"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	MaxRequestSize int           `env:"MAX_REQUEST_SIZE,default=10485760"`
	Concurrency    int           `env:"SERVER_CONCURRENCY,default=0"`
	WarmUp         bool          `env:"WARM_UP,default=true"`
}

type ScoringConfig struct {
	Smoothing   bool   `env:"SMOOTHING,default=true"`
	Stemming    bool   `env:"STEMMING,default=true"`
	StemmerMode string `env:"STEMMER_MODE,default=generic"`
	Normalizer  string `env:"NORMALIZER,default=default"`
	Concurrency int    `env:"CONCURRENCY"`
	Format      string `env:"FORMAT,default=table"`
}

type Config struct {
	Log     LogConfig
	Server  ServerConfig
	Scoring ScoringConfig
}

// Load reads .env, if present, and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through lookuper. Names are looked up with Prefix.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper(Prefix, lookuper),
	}); err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}
	if cfg.Scoring.Concurrency == 0 {
		cfg.Scoring.Concurrency = runtime.NumCPU()
	}
	return &cfg, cfg.Validate()
}

// Validate checks value ranges and enum names.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%sPORT must be between 1 and 65535, got %d", Prefix, c.Server.Port)
	}
	if c.Server.MaxRequestSize <= 0 {
		return fmt.Errorf("%sMAX_REQUEST_SIZE must be positive", Prefix)
	}
	if c.Server.Concurrency < 0 {
		return fmt.Errorf("%sSERVER_CONCURRENCY must not be negative", Prefix)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%sREQUEST_TIMEOUT must be positive", Prefix)
	}
	if c.Scoring.Concurrency < 0 {
		return fmt.Errorf("%sCONCURRENCY must not be negative", Prefix)
	}
	if _, err := stemmer.ParseMode(c.Scoring.StemmerMode); err != nil {
		return err
	}
	if _, err := normalizer.ParseNormalizerType(c.Scoring.Normalizer); err != nil {
		return err
	}
	if _, err := renderer.New(c.Scoring.Format); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logger.Level {
	level, _ := logger.ParseLevel(c.Log.Level)
	return level
}
