// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package spread measures how evenly a point set covers the unit sphere,
// using its Delaunay triangulation and the dual Voronoi cells.
package spread

import (
	"fmt"
	"math"

	"github.com/2dChan/s2vogel/s2delaunay"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Report summarizes the spread of a point set.
type Report struct {
	NumPoints int

	// MinSeparation is the smallest angle between any two points.
	MinSeparation s1.Angle
	// MaxNeighborSeparation is the longest Delaunay edge.
	MaxNeighborSeparation s1.Angle

	// Voronoi cell areas in steradians.
	MinCellArea float64
	MaxCellArea float64
	TotalArea   float64
}

// AreaRatio returns MaxCellArea / MinCellArea, 1 for a perfectly even set.
func (r *Report) AreaRatio() float64 {
	if r.MinCellArea == 0 {
		return math.Inf(1)
	}
	return r.MaxCellArea / r.MinCellArea
}

func (r *Report) String() string {
	return fmt.Sprintf("%d points, separation %.4f°..%.4f°, cell area %.6f..%.6f sr (ratio %.3f, total %.6f)",
		r.NumPoints, r.MinSeparation.Degrees(), r.MaxNeighborSeparation.Degrees(),
		r.MinCellArea, r.MaxCellArea, r.AreaRatio(), r.TotalArea)
}

// Measure triangulates points and reports their spread. It needs at least
// 4 points.
func Measure(points s2.PointVector) (*Report, error) {
	dt, err := s2delaunay.NewTriangulation(points)
	if err != nil {
		return nil, err
	}
	return MeasureTriangulation(dt), nil
}

// MeasureTriangulation reports the spread of an existing triangulation.
func MeasureTriangulation(dt *s2delaunay.Triangulation) *Report {
	r := &Report{
		NumPoints:     len(dt.Vertices),
		MinSeparation: s1.InfAngle(),
		MinCellArea:   math.Inf(1),
	}

	// The nearest neighbour of every vertex is one of its Delaunay neighbours.
	for _, e := range dt.Edges() {
		d := dt.Vertices[e[0]].Distance(dt.Vertices[e[1]])
		r.MinSeparation = min(r.MinSeparation, d)
		r.MaxNeighborSeparation = max(r.MaxNeighborSeparation, d)
	}

	for _, area := range CellAreas(dt) {
		r.MinCellArea = min(r.MinCellArea, area)
		r.MaxCellArea = max(r.MaxCellArea, area)
		r.TotalArea += area
	}

	return r
}

// CellAreas returns the area of the Voronoi cell around each vertex.
func CellAreas(dt *s2delaunay.Triangulation) []float64 {
	centers := make(s2.PointVector, len(dt.Triangles))
	for i := range dt.Triangles {
		centers[i] = triangleCircumcenter(dt.TriangleVertices(i))
	}

	areas := make([]float64, len(dt.Vertices))
	for vIdx, site := range dt.Vertices {
		it := dt.IncidentTriangles(vIdx)
		for i, tIdx := range it {
			next := it[(i+1)%len(it)]
			areas[vIdx] += s2.PointArea(site, centers[tIdx], centers[next])
		}
	}
	return areas
}

// triangleCircumcenter returns the circumcenter on the same hemisphere as the triangle.
func triangleCircumcenter(p1, p2, p3 s2.Point) s2.Point {
	v1 := p1.Sub(p2.Vector)
	v2 := p2.Sub(p3.Vector)

	circumcenter := v1.Cross(v2)
	if circumcenter.Dot(p1.Vector.Add(p2.Vector).Add(p3.Vector)) < 0 {
		circumcenter = circumcenter.Mul(-1)
	}

	return s2.Point{Vector: circumcenter.Normalize()}
}
