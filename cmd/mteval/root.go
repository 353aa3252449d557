package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mteval "github.com/baditaflorin/go_mt_eval"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/logger"
	"github.com/baditaflorin/go_mt_eval/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries what every subcommand needs.
type app struct {
	cfg    *config.Config
	logger *logger.StdLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "mteval",
		Short:         "Score machine translations with BLEU and ROUGE-L and rank the models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg

			log, err := createLogger(cfg)
			if err != nil {
				return err
			}
			a.logger = log
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.logger != nil {
				return a.logger.Close()
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("log-json", false, "write logs as JSON")
	flags.String("log-file", "", "log file path (empty = stderr)")
	flags.Bool("smoothing", true, "smooth zero n-gram precisions")
	flags.Bool("stemming", true, "stem words before computing the overlap score")
	flags.String("stemmer", "", "stemmer mode: generic or language")
	flags.String("normalizer", "", "normalizer: default or fast")
	flags.Int("concurrency", 0, "pairs scored in parallel (0 = number of CPUs)")

	cmd.AddCommand(
		newScoreCmd(a),
		newEvaluateCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// applyFlags overrides environment configuration with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("log-level") {
		cfg.Log.Level, err = flags.GetString("log-level")
	}
	if err == nil && flags.Changed("log-json") {
		cfg.Log.JSON, err = flags.GetBool("log-json")
	}
	if err == nil && flags.Changed("log-file") {
		cfg.Log.File, err = flags.GetString("log-file")
	}
	if err == nil && flags.Changed("smoothing") {
		cfg.Scoring.Smoothing, err = flags.GetBool("smoothing")
	}
	if err == nil && flags.Changed("stemming") {
		cfg.Scoring.Stemming, err = flags.GetBool("stemming")
	}
	if err == nil && flags.Changed("stemmer") {
		cfg.Scoring.StemmerMode, err = flags.GetString("stemmer")
	}
	if err == nil && flags.Changed("normalizer") {
		cfg.Scoring.Normalizer, err = flags.GetString("normalizer")
	}
	if err == nil && flags.Changed("concurrency") {
		var n int
		if n, err = flags.GetInt("concurrency"); err == nil && n > 0 {
			cfg.Scoring.Concurrency = n
		}
	}
	return err
}

// createLogger creates the logger described by cfg.
func createLogger(cfg *config.Config) (*logger.StdLogger, error) {
	var output io.Writer = os.Stderr
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}
	return logger.NewCustomStdLogger(logger.Options{
		Output:     output,
		JSONFormat: cfg.Log.JSON,
		Level:      cfg.LogLevel(),
	})
}

// evaluatorOptions translates the scoring configuration into facade options.
func (a *app) evaluatorOptions(extra ...mteval.Option) []mteval.Option {
	opts := []mteval.Option{
		mteval.WithStructuredLogger(a.logger),
		mteval.WithSmoothing(a.cfg.Scoring.Smoothing),
		mteval.WithStemming(a.cfg.Scoring.Stemming),
		mteval.WithStemmerMode(a.cfg.Scoring.StemmerMode),
		mteval.WithConcurrency(a.cfg.Scoring.Concurrency),
	}
	if a.cfg.Scoring.Normalizer == "fast" {
		opts = append(opts, mteval.WithFastNormalizer())
	}
	return append(opts, extra...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "mteval", version)
		},
	}
}
