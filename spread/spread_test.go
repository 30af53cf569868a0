// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package spread

import (
	"fmt"
	"math"
	"testing"

	"github.com/2dChan/s2vogel"
	"github.com/2dChan/s2vogel/s2delaunay"
	"github.com/2dChan/s2vogel/utils"
	"github.com/golang/geo/s2"
)

func TestMeasure_InsufficientPoints(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		if _, err := Measure(mustGenerate(t, n)); err == nil {
			t.Errorf("Measure(%v points) error = nil, want non-nil", n)
		}
	}
}

func TestMeasure_TotalArea(t *testing.T) {
	tests := []struct {
		name   string
		points s2.PointVector
	}{
		{"spiral 64", mustGenerate(t, 64)},
		{"spiral 1000", mustGenerate(t, 1000)},
		{"random 500", utils.GenerateRandomPoints(500, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustMeasure(t, tt.points)
			if r.NumPoints != len(tt.points) {
				t.Errorf("r.NumPoints = %v, want %v", r.NumPoints, len(tt.points))
			}
			if math.Abs(r.TotalArea-4*math.Pi) > 1e-9 {
				t.Errorf("r.TotalArea = %v, want 4π", r.TotalArea)
			}
			if r.MinCellArea <= 0 || r.MinCellArea > r.MaxCellArea {
				t.Errorf("cell area range = [%v, %v], want 0 < min <= max", r.MinCellArea, r.MaxCellArea)
			}
			if r.MinSeparation <= 0 || r.MinSeparation > r.MaxNeighborSeparation {
				t.Errorf("separation range = [%v, %v], want 0 < min <= max", r.MinSeparation,
					r.MaxNeighborSeparation)
			}
		})
	}
}

func TestMeasure_MinSeparationIsNearestPair(t *testing.T) {
	points := mustGenerate(t, 200)
	r := mustMeasure(t, points)

	want := math.Inf(1)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			want = min(want, points[i].Distance(points[j]).Radians())
		}
	}
	if got := r.MinSeparation.Radians(); math.Abs(got-want) > 1e-15 {
		t.Errorf("r.MinSeparation = %v, want %v", got, want)
	}
}

func TestMeasure_SpiralBeatsRandom(t *testing.T) {
	for _, n := range []int{100, 1000} {
		t.Run(fmt.Sprintf("N%d", n), func(t *testing.T) {
			spiral := mustMeasure(t, mustGenerate(t, n))
			random := mustMeasure(t, utils.GenerateRandomPoints(n, 0))

			if spiral.MinSeparation <= random.MinSeparation {
				t.Errorf("spiral MinSeparation = %v, want > random %v", spiral.MinSeparation,
					random.MinSeparation)
			}
			if spiral.AreaRatio() >= random.AreaRatio() {
				t.Errorf("spiral AreaRatio() = %v, want < random %v", spiral.AreaRatio(),
					random.AreaRatio())
			}
		})
	}
}

func TestCellAreas_Octahedron(t *testing.T) {
	points := s2.PointVector{
		s2.PointFromCoords(1, 0, 0),
		s2.PointFromCoords(-1, 0, 0),
		s2.PointFromCoords(0, 1, 0),
		s2.PointFromCoords(0, -1, 0),
		s2.PointFromCoords(0, 0, 1),
		s2.PointFromCoords(0, 0, -1),
	}
	dt, err := s2delaunay.NewTriangulation(points)
	if err != nil {
		t.Fatalf("s2delaunay.NewTriangulation(...) error = %v, want nil", err)
	}

	want := 4 * math.Pi / 6
	for i, got := range CellAreas(dt) {
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("CellAreas(...)[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestReport_AreaRatio(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		want     float64
	}{
		{"even", 0.5, 0.5, 1},
		{"uneven", 0.25, 1, 4},
		{"empty cell", 0, 1, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{MinCellArea: tt.min, MaxCellArea: tt.max}
			if got := r.AreaRatio(); got != tt.want {
				t.Errorf("r.AreaRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangleCircumcenter(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 s2.Point
		want       s2.Point
	}{
		{
			"xyz orthonormal",
			s2.PointFromCoords(1, 0, 0),
			s2.PointFromCoords(0, 1, 0),
			s2.PointFromCoords(0, 0, 1),
			s2.PointFromCoords(1, 1, 1),
		},
		{
			"xyz orthonormal reversed",
			s2.PointFromCoords(0, 0, 1),
			s2.PointFromCoords(0, 1, 0),
			s2.PointFromCoords(1, 0, 0),
			s2.PointFromCoords(1, 1, 1),
		},
		{
			"southern octant",
			s2.PointFromCoords(1, 0, 0),
			s2.PointFromCoords(0, -1, 0),
			s2.PointFromCoords(0, 0, -1),
			s2.PointFromCoords(1, -1, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := triangleCircumcenter(tt.p0, tt.p1, tt.p2)
			if got.Distance(tt.want) > 1e-9 {
				t.Errorf("triangleCircumcenter(...) = %v, want %v", got, tt.want)
			}
		})
	}
}

// Benchmarks

func BenchmarkMeasure(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("N%d", n), func(b *testing.B) {
			points, err := s2vogel.Generate(n)
			if err != nil {
				b.Fatalf("s2vogel.Generate(%v) error = %v, want nil", n, err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := Measure(points); err != nil {
					b.Fatalf("Measure(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustGenerate(t *testing.T, n int) s2.PointVector {
	t.Helper()
	points, err := s2vogel.Generate(n)
	if err != nil {
		t.Fatalf("s2vogel.Generate(%v) error = %v, want nil", n, err)
	}
	return points
}

func mustMeasure(t *testing.T, points s2.PointVector) *Report {
	t.Helper()
	r, err := Measure(points)
	if err != nil {
		t.Fatalf("Measure(%v points) error = %v, want nil", len(points), err)
	}
	return r
}
