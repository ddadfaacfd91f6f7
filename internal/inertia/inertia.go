// File: internal/inertia/inertia.go

// Package inertia computes the principal axes of a point set from the
// eigendecomposition of its second-moment (inertia) tensor.
package inertia

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/pierrepo/principal-axes/internal/geom"
)

// ErrNoAtoms is returned when the input contains no points; the centroid and
// tensor of an empty set are undefined.
var ErrNoAtoms = errors.New("inertia: no alpha-carbon atoms in input")

// Axis pairs an eigenvalue of the inertia tensor with its unit eigenvector.
// The eigenvector sign is solver-defined and must be treated as arbitrary.
type Axis struct {
	Eigenvalue float64    `json:"eigenvalue"`
	Direction  geom.Point `json:"direction"`
}

// RGB is a color with components in [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Segment is a renderable line from the centroid to a scaled axis endpoint.
type Segment struct {
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
	Color RGB        `json:"color"`
}

// Result holds the centroid and the three principal axes of a point set.
//
// Axes is ordered by descending eigenvalue: Axes[0] is the largest
// (first principal) axis. Raw preserves the solver's native pair order for
// diagnostics only; it must never be consumed as if it were ordered.
type Result struct {
	Centroid geom.Point `json:"centroid"`
	Axes     [3]Axis    `json:"axes"`
	Raw      [3]Axis    `json:"-"`
}

// Conventional axis colors: first axis red, second green, third blue.
var axisColors = [3]RGB{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// ComputeAxes computes the centroid and ordered principal axes of points.
//
// The tensor is the raw second moment of the centered coordinates, summed
// over points with no division by N. The input slice is not modified.
func ComputeAxes(points []geom.Point) (Result, error) {
	if len(points) == 0 {
		return Result{}, ErrNoAtoms
	}
	centroid := geom.Centroid(points)

	// tensor[i][j] = sum over points of centered[i]*centered[j]
	var t [3][3]float64
	for _, p := range points {
		c := p.Sub(centroid)
		v := [3]float64{c.X, c.Y, c.Z}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				t[i][j] += v[i] * v[j]
			}
		}
	}

	sym := mat.NewSymDense(3, []float64{
		t[0][0], t[0][1], t[0][2],
		t[1][0], t[1][1], t[1][2],
		t[2][0], t[2][1], t[2][2],
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return Result{}, errors.New("inertia: eigendecomposition failed to converge")
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	res := Result{Centroid: centroid}
	for i := 0; i < 3; i++ {
		res.Raw[i] = Axis{
			Eigenvalue: vals[i],
			Direction:  geom.Point{X: vecs.At(0, i), Y: vecs.At(1, i), Z: vecs.At(2, i)},
		}
	}

	// The solver's pair order is unspecified; rank by eigenvalue, largest
	// first. The sort is stable so exactly equal eigenvalues keep the
	// solver's relative order, which keeps the output deterministic.
	order := []int{0, 1, 2}
	sort.SliceStable(order, func(a, b int) bool {
		return vals[order[a]] > vals[order[b]]
	})
	for rank, i := range order {
		res.Axes[rank] = res.Raw[i]
	}
	return res, nil
}

// Segments returns the renderable line segments for the three ordered axes.
// The endpoint of axis k (k = 1, 2, 3) is centroid + (4-k)*scale*direction,
// so the first principal axis draws longest.
func (r Result) Segments(scale float64) [3]Segment {
	var segs [3]Segment
	for k, ax := range r.Axes {
		weight := float64(3-k) * scale
		segs[k] = Segment{
			Start: r.Centroid,
			End:   r.Centroid.Add(ax.Direction.Scale(weight)),
			Color: axisColors[k],
		}
	}
	return segs
}
