// File: internal/render/json.go
package render

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/pierrepo/principal-axes/internal/inertia"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonSummary is the machine-readable report document.
type jsonSummary struct {
	Input     string             `json:"input"`
	AtomCount int                `json:"atom_count"`
	Scale     float64            `json:"scale"`
	Result    inertia.Result     `json:"result"`
	Segments  [3]inertia.Segment `json:"segments"`
}

// jsonReporter writes the computation result as an indented JSON document.
type jsonReporter struct {
	w io.WriteCloser
}

// NewJSONReporter creates a Reporter emitting JSON.
// It takes ownership of the writer.
func NewJSONReporter(w io.WriteCloser) Reporter {
	return &jsonReporter{w: w}
}

func (r *jsonReporter) Write(s *Summary) error {
	doc := jsonSummary{
		Input:     s.Input,
		AtomCount: s.AtomCount,
		Scale:     s.Scale,
		Result:    s.Result,
		Segments:  s.Segments,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("render: marshal json report: %w", err)
	}
	out = append(out, '\n')
	if _, err := r.w.Write(out); err != nil {
		return fmt.Errorf("render: write json report: %w", err)
	}
	return nil
}

func (r *jsonReporter) Close() error { return r.w.Close() }
