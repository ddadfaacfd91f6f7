// File: internal/render/pymol.go
package render

import (
	"fmt"
	"io"
)

// pymolReporter writes a PyMOL script drawing the three principal axes as
// colored CGO line objects from the centroid.
type pymolReporter struct {
	w io.WriteCloser
}

// NewPyMOLReporter creates a Reporter emitting a .pml script.
// It takes ownership of the writer.
func NewPyMOLReporter(w io.WriteCloser) Reporter {
	return &pymolReporter{w: w}
}

func (r *pymolReporter) Write(s *Summary) error {
	if _, err := fmt.Fprintln(r.w, "from cgo import *"); err != nil {
		return fmt.Errorf("render: write pml: %w", err)
	}
	for i, seg := range s.Segments {
		_, err := fmt.Fprintf(r.w,
			"axis%d=  [ BEGIN, LINES, COLOR, %.1f, %.1f, %.1f, "+
				"VERTEX, %8.3f, %8.3f, %8.3f, VERTEX, %8.3f, %8.3f, %8.3f, END ]\n",
			i+1, seg.Color.R, seg.Color.G, seg.Color.B,
			seg.Start.X, seg.Start.Y, seg.Start.Z,
			seg.End.X, seg.End.Y, seg.End.Z)
		if err != nil {
			return fmt.Errorf("render: write pml: %w", err)
		}
	}
	for i := 1; i <= 3; i++ {
		if _, err := fmt.Fprintf(r.w, "cmd.load_cgo(axis%d, 'axis%d')\n", i, i); err != nil {
			return fmt.Errorf("render: write pml: %w", err)
		}
	}
	if _, err := fmt.Fprintf(r.w, "cmd.set('cgo_line_width', %d)\n", s.LineWidth); err != nil {
		return fmt.Errorf("render: write pml: %w", err)
	}
	return nil
}

func (r *pymolReporter) Close() error { return r.w.Close() }
