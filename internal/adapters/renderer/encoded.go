package renderer

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
)

// JSONRenderer writes the report as indented JSON.
type JSONRenderer struct{}

// Render writes the report to w.
func (JSONRenderer) Render(w io.Writer, report domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// YAMLRenderer writes the report as YAML.
type YAMLRenderer struct{}

// Render writes the report to w.
func (YAMLRenderer) Render(w io.Writer, report domain.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
