package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mteval "github.com/baditaflorin/go_mt_eval"
)

func newScoreCmd(a *app) *cobra.Command {
	var (
		reference, candidate         string
		referenceFile, candidateFile string
		language, format             string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one candidate translation against a reference",
		Example: `  mteval score --reference "Die Geschichte" --candidate "Eine Geschichte" --language German
  mteval score --reference-file ref.txt --candidate-file out.txt --language pl_PL --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if reference, err = textOrFile(reference, referenceFile, "reference"); err != nil {
				return err
			}
			if candidate, err = textOrFile(candidate, candidateFile, "candidate"); err != nil {
				return err
			}
			if format == "" {
				format = a.cfg.Scoring.Format
			}

			e, err := mteval.New(a.evaluatorOptions()...)
			if err != nil {
				return err
			}

			lang := language
			if lang == "" {
				lang = "unknown"
			}
			table := mteval.NewScoreTable()
			for _, s := range e.Score(reference, candidate, language) {
				table.Set(lang, "candidate", s)
			}
			return e.Render(cmd.OutOrStdout(), mteval.Report{Scores: table}, format)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&reference, "reference", "", "reference text")
	flags.StringVar(&candidate, "candidate", "", "candidate text")
	flags.StringVar(&referenceFile, "reference-file", "", "read the reference from a file")
	flags.StringVar(&candidateFile, "candidate-file", "", "read the candidate from a file")
	flags.StringVarP(&language, "language", "l", "", "target language name or locale, e.g. German or de_DE")
	flags.StringVarP(&format, "format", "f", "", "output format: table, json or yaml")
	return cmd
}

// textOrFile returns text, or the content of file when one is given.
func textOrFile(text, file, what string) (string, error) {
	if file == "" {
		return text, nil
	}
	if text != "" {
		return "", errors.New("both --" + what + " and --" + what + "-file given")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", what, err)
	}
	return string(data), nil
}
