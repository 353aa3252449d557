// Package renderer presents evaluation reports as console tables, JSON or YAML.
package renderer

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// Format selects a renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML}

// New returns the renderer for a format name.
func New(name string) (ports.ResultsRenderer, error) {
	switch Format(strings.ToLower(name)) {
	case "", FormatTable:
		return NewTableRenderer(), nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML, "yml":
		return YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}
