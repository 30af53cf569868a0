// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2vogel places points on the unit sphere along a golden-angle
// spiral (Vogel/Fibonacci sphere sampling).
package s2vogel

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// GoldenAngle is π(3 − √5), the azimuthal step between consecutive points.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// ErrInvalidCount is returned by Generate for a negative point count.
var ErrInvalidCount = errors.New("s2vogel: point count must be non-negative")

// Generate returns n points on the unit sphere in spiral order, from the
// north pole downwards. Heights are evenly spaced in (-1, 1) and symmetric
// about the equator; n == 1 yields the single point (1, 0, 0).
//
// Points are not re-normalized, coordinates are exactly those of the spiral.
func Generate(n int) (s2.PointVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	points := make(s2.PointVector, n)
	for i := range n {
		// Integer numerator keeps z[i] == -z[n-1-i] exactly.
		z := float64(n-2*i-1) / float64(n)
		r := math.Sqrt(math.Max(0, 1-z*z))
		sin, cos := math.Sincos(GoldenAngle * float64(i))
		points[i] = s2.Point{Vector: r3.Vector{X: r * cos, Y: r * sin, Z: z}}
	}

	return points, nil
}
