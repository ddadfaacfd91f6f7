// File: internal/geom/point.go
package geom

import "math"

// Point is a position or direction in 3-space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point) Scale(s float64) Point { return Point{s * p.X, s * p.Y, s * p.Z} }
func (p Point) Dot(q Point) float64   { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }
func (p Point) Norm() float64         { return math.Sqrt(p.Dot(p)) }

// Centroid returns the component-wise mean of the given points.
// Callers must ensure points is non-empty.
func Centroid(points []Point) Point {
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}
