// File: internal/render/console.go
package render

import (
	"fmt"
	"io"

	"github.com/pierrepo/principal-axes/internal/geom"
)

var axisReportNames = [3]string{"First", "Second", "Third"}
var axisReportColors = [3]string{"red", "green", "blue"}

func vec(p geom.Point) string {
	return fmt.Sprintf("[%8.3f %8.3f %8.3f]", p.X, p.Y, p.Z)
}

// Report prints the human-readable summary: atom count, geometric center,
// the solver's unordered eigenpairs as a diagnostic, then the three axes in
// descending-eigenvalue order, and finally the PyMOL invocation suggestion.
func Report(w io.Writer, s *Summary, scriptPath string) {
	fmt.Fprintf(w, "%d CA atoms found in %s\n", s.AtomCount, s.Input)
	fmt.Fprintf(w, "Coordinates of the geometric center:\n%s\n", vec(s.Result.Centroid))

	fmt.Fprintln(w, "(Unordered) eigen values:")
	for _, ax := range s.Result.Raw {
		fmt.Fprintf(w, "%14.3f", ax.Eigenvalue)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "(Unordered) eigen vectors:")
	for _, ax := range s.Result.Raw {
		fmt.Fprintln(w, vec(ax.Direction))
	}

	fmt.Fprintln(w, "Inertia axis are now ordered !")
	for i, ax := range s.Result.Axes {
		fmt.Fprintf(w, "\n%s principal axis (in %s)\n", axisReportNames[i], axisReportColors[i])
		fmt.Fprintf(w, "coordinates: %s\n", vec(ax.Direction))
		fmt.Fprintf(w, "eigen value: %.3f\n", ax.Eigenvalue)
	}

	fmt.Fprintln(w, "\nYou can view principal axes with PyMOL:")
	fmt.Fprintf(w, "pymol %s %s\n", scriptPath, s.Input)
}
