// File: internal/render/reporter.go

// Package render writes the principal-axes results: a PyMOL .pml script (or a
// JSON document) for visualization, and a human-readable console report.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrepo/principal-axes/internal/inertia"
)

// Summary is everything a reporter needs about one completed computation.
type Summary struct {
	Input     string
	AtomCount int
	Scale     float64
	LineWidth int
	Result    inertia.Result
	Segments  [3]inertia.Segment
}

// Reporter writes a Summary to an output in some format.
type Reporter interface {
	// Write renders a single computation result.
	Write(s *Summary) error
	// Close finalizes the output and releases any underlying file handle.
	Close() error
}

// nopWriteCloser wraps an io.Writer and provides a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error { return nil }

// New creates a reporter for the given format writing to outputPath.
// An empty path or "stdout" writes to standard output.
func New(format, outputPath string) (Reporter, error) {
	var writer io.WriteCloser
	isStdOut := outputPath == "" || outputPath == "stdout"

	if isStdOut {
		writer = &nopWriteCloser{os.Stdout}
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("render: create output file %s: %w", outputPath, err)
		}
		writer = f
	}

	switch format {
	case "pml":
		return NewPyMOLReporter(writer), nil
	case "json":
		return NewJSONReporter(writer), nil
	default:
		if !isStdOut {
			writer.Close()
		}
		return nil, fmt.Errorf("render: unsupported output format: %s", format)
	}
}

// OutputPath derives the visualization path for an input file: a trailing
// ".pdb" is replaced by "_axes" plus the format extension; other inputs get
// the suffix appended.
func OutputPath(input, format string) string {
	ext := "." + format
	if strings.HasSuffix(input, ".pdb") {
		return strings.TrimSuffix(input, ".pdb") + "_axes" + ext
	}
	return input + "_axes" + ext
}
