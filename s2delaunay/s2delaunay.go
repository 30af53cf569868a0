// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2delaunay computes Delaunay triangulations of point sets on the
// unit sphere as the convex hull of the points.
package s2delaunay

import (
	"errors"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

type Triangulation struct {
	Vertices  s2.PointVector
	Triangles [][3]int
	// NOTE: Sort in CCW per vertex(look out of sphere)
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the triangles around vertex vIdx in CCW order.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (s2.Point, s2.Point, s2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Edges returns every undirected edge once, as (lower, higher) vertex indices.
// Each edge borders two CCW triangles, in one of them it runs upwards.
func (dt *Triangulation) Edges() [][2]int {
	edges := make([][2]int, 0, len(dt.Triangles)*3/2)
	for _, t := range dt.Triangles {
		for j := range 3 {
			a, b := t[j], t[(j+1)%3]
			if a < b {
				edges = append(edges, [2]int{a, b})
			}
		}
	}
	return edges
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return errors.New("s2delaunay: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation triangulates vertices, which must all lie on the unit sphere.
func NewTriangulation(vertices s2.PointVector, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 4 {
		return nil,
			errors.New("s2delaunay: insufficient vertices for triangulation (minimum 4 required)")
	}
	numTriangles := 2 * (numVertices - 2)

	hull := make([]r3.Vector, numVertices)
	for i, p := range vertices {
		hull[i] = p.Vector
	}
	indices := new(quickhull.QuickHull).ConvexHull(hull, true, true, opts.Eps).Indices
	if len(indices) != numTriangles*3 {
		return nil, errors.New("s2delaunay: inconsistent number of indices returned from QuickHull")
	}

	dt := &Triangulation{
		Vertices:  vertices,
		Triangles: make([][3]int, numTriangles),
	}
	for i := range dt.Triangles {
		copy(dt.Triangles[i][:], indices[i*3:i*3+3])
		sortTriangleVerticesCCW(&dt.Triangles[i], vertices)
	}
	dt.indexIncidentTriangles()

	return dt, nil
}

// indexIncidentTriangles fills the per-vertex incident triangle lists as a
// CSR layout: the triangles of vertex v are
// IncidentTriangleIndices[IncidentTriangleOffsets[v]:IncidentTriangleOffsets[v+1]].
func (dt *Triangulation) indexIncidentTriangles() {
	numVertices := len(dt.Vertices)
	offsets := make([]int, numVertices+1)
	for _, t := range dt.Triangles {
		for _, v := range t {
			offsets[v+1]++
		}
	}
	for v := range numVertices {
		offsets[v+1] += offsets[v]
	}

	indices := make([]int, offsets[numVertices])
	fill := make([]int, numVertices)
	copy(fill, offsets)
	for tIdx, t := range dt.Triangles {
		for _, v := range t {
			indices[fill[v]] = tIdx
			fill[v]++
		}
	}

	dt.IncidentTriangleIndices = indices
	dt.IncidentTriangleOffsets = offsets
	for v := range numVertices {
		sortIncidentTriangleIndicesCCW(v, dt.IncidentTriangles(v), dt.Triangles)
	}
}

func sortTriangleVerticesCCW(t *[3]int, v s2.PointVector) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0.Vector).Cross(p2.Sub(p0.Vector))
	if norm.Dot(p0.Vector) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	for i := 1; i < n; i++ {
		nxt := NextVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			if PrevVertex(tris[incidentTris[j]], vIdx) == nxt {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

// PrevVertex returns the vertex preceding vIdx in triangle t.
func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

// NextVertex returns the vertex following vIdx in triangle t.
func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
