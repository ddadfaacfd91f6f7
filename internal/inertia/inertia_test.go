// File: internal/inertia/inertia_test.go
package inertia

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pierrepo/principal-axes/internal/geom"
)

func TestComputeAxes_NoAtoms(t *testing.T) {
	_, err := ComputeAxes(nil)
	assert.ErrorIs(t, err, ErrNoAtoms)
}

func TestComputeAxes_Tetrahedron(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 2, Z: 0},
		{X: 0, Y: 0, Z: 2},
	}

	res, err := ComputeAxes(points)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, res.Centroid.X, 1e-12)
	assert.InDelta(t, 0.5, res.Centroid.Y, 1e-12)
	assert.InDelta(t, 0.5, res.Centroid.Z, 1e-12)

	// Eigenvalues are ordered descending.
	assert.GreaterOrEqual(t, res.Axes[0].Eigenvalue, res.Axes[1].Eigenvalue)
	assert.GreaterOrEqual(t, res.Axes[1].Eigenvalue, res.Axes[2].Eigenvalue)

	// The eigenvalue sum equals the tensor trace, which is the sum of
	// squared centered-coordinate magnitudes.
	var trace float64
	for _, p := range points {
		c := p.Sub(res.Centroid)
		trace += c.Dot(c)
	}
	sum := res.Axes[0].Eigenvalue + res.Axes[1].Eigenvalue + res.Axes[2].Eigenvalue
	assert.InDelta(t, trace, sum, 1e-9)

	// Input slice is untouched.
	assert.Equal(t, geom.Point{X: 2}, points[1])
}

func TestComputeAxes_EigenvectorsOrthonormal(t *testing.T) {
	// An elongated, non-degenerate cloud.
	points := []geom.Point{
		{X: -10, Y: 1, Z: 0}, {X: -5, Y: -1, Z: 0.5}, {X: 0, Y: 1.5, Z: -0.5}, {X: 5, Y: -0.5, Z: 0.2}, {X: 10, Y: 0.5, Z: -0.2},
	}
	res, err := ComputeAxes(points)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1, res.Axes[i].Direction.Norm(), 1e-9, "axis %d should be unit length", i+1)
		for j := i + 1; j < 3; j++ {
			dot := res.Axes[i].Direction.Dot(res.Axes[j].Direction)
			assert.InDelta(t, 0, dot, 1e-9, "axes %d and %d should be orthogonal", i+1, j+1)
		}
	}

	// The dominant axis follows the x spread, up to the solver's sign choice.
	assert.InDelta(t, 1, math.Abs(res.Axes[0].Direction.X), 0.05)
}

func TestComputeAxes_SinglePointIsDegenerate(t *testing.T) {
	p := geom.Point{X: 3.5, Y: -1.25, Z: 7}
	res, err := ComputeAxes([]geom.Point{p})
	require.NoError(t, err)

	assert.Equal(t, p, res.Centroid)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, res.Axes[i].Eigenvalue, 1e-12)
	}
}

func TestComputeAxes_Deterministic(t *testing.T) {
	points := []geom.Point{
		{X: 1, Y: 2, Z: 3}, {X: 4, Y: 0, Z: -1}, {X: -2, Y: 5, Z: 0}, {X: 0, Y: 0, Z: 8},
	}
	first, err := ComputeAxes(points)
	require.NoError(t, err)
	second, err := ComputeAxes(points)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeAxes_EqualEigenvaluesStayStable(t *testing.T) {
	// A square in the xy plane has two equal in-plane eigenvalues; the stable
	// sort must keep the solver's relative order, so repeated runs agree.
	points := []geom.Point{
		{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
	}
	first, err := ComputeAxes(points)
	require.NoError(t, err)
	second, err := ComputeAxes(points)
	require.NoError(t, err)

	assert.Equal(t, first.Axes, second.Axes)
	// The z axis carries no spread and must rank last.
	assert.InDelta(t, 0, first.Axes[2].Eigenvalue, 1e-12)
	assert.InDelta(t, 1, math.Abs(first.Axes[2].Direction.Z), 1e-9)
}

func TestSegments_ScalingLaw(t *testing.T) {
	points := []geom.Point{
		{X: -10, Y: 1, Z: 0}, {X: -5, Y: -1, Z: 0.5}, {X: 0, Y: 1.5, Z: -0.5}, {X: 5, Y: -0.5, Z: 0.2}, {X: 10, Y: 0.5, Z: -0.2},
	}
	res, err := ComputeAxes(points)
	require.NoError(t, err)

	const scale = 20.0
	segs := res.Segments(scale)
	for k, seg := range segs {
		weight := float64(3 - k)
		assert.Equal(t, res.Centroid, seg.Start, "segment %d starts at the centroid", k+1)
		want := res.Centroid.Add(res.Axes[k].Direction.Scale(weight * scale))
		assert.InDelta(t, 0, seg.End.Sub(want).Norm(), 1e-9)
		assert.InDelta(t, weight*scale, seg.End.Sub(seg.Start).Norm(), 1e-9)
	}

	// Fixed color convention: red, green, blue.
	assert.Equal(t, RGB{1, 0, 0}, segs[0].Color)
	assert.Equal(t, RGB{0, 1, 0}, segs[1].Color)
	assert.Equal(t, RGB{0, 0, 1}, segs[2].Color)
}
