// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded random point sets, the baseline spiral
// sampling is compared against.
package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// GenerateRandomPoints returns cnt points drawn uniformly by area from the
// unit sphere: height uniform in [-1, 1), longitude uniform in [-π, π).
// The same seed always yields the same points.
func GenerateRandomPoints(cnt int, seed int64) s2.PointVector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make(s2.PointVector, cnt)

	for i := range points {
		z := 2*random.Float64() - 1
		lng := (2*random.Float64() - 1) * math.Pi
		r := math.Sqrt(math.Max(0, 1-z*z))
		sin, cos := math.Sincos(lng)
		points[i] = s2.Point{Vector: r3.Vector{X: r * cos, Y: r * sin, Z: z}}
	}

	return points
}
