package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mteval "github.com/baditaflorin/go_mt_eval"
	"github.com/baditaflorin/go_mt_eval/internal/adapters/provider"
	"github.com/baditaflorin/go_mt_eval/internal/textutil"
)

// sourcedProvider is a translation provider that also knows the untranslated script.
type sourcedProvider interface {
	mteval.TranslationProvider
	Source() (string, error)
}

type sampleSource struct {
	*provider.SampleProvider
}

func (s sampleSource) Source() (string, error) {
	return s.SampleProvider.Source(), nil
}

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		manifest string
		sample   bool
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score every model on every language and rank them by win rate",
		Example: `  mteval evaluate --sample
  mteval evaluate --manifest data/manifest.yaml --format yaml --output results/report.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if manifest != "" && sample {
				return fmt.Errorf("--manifest and --sample are mutually exclusive")
			}
			if format == "" {
				format = a.cfg.Scoring.Format
			}

			var p sourcedProvider = sampleSource{provider.NewSampleProvider()}
			if manifest != "" {
				p = provider.NewManifestProvider(manifest, a.logger)
			}

			source, err := p.Source()
			if err != nil {
				return err
			}
			if source != "" {
				textutil.CheckScriptSize(source, a.logger)
			}

			e, err := mteval.New(a.evaluatorOptions()...)
			if err != nil {
				return err
			}

			report, err := e.Run(cmd.Context(), p)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return e.Render(w, report, format)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&manifest, "manifest", "m", "", "YAML manifest listing references and model outputs")
	flags.BoolVar(&sample, "sample", false, "evaluate the built-in German/Polish sample (default without --manifest)")
	flags.StringVarP(&format, "format", "f", "", "output format: table, json or yaml")
	flags.StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}
