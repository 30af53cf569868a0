// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package glsl renders point sets as GLSL array literals.
package glsl

import (
	"errors"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
)

const (
	defaultPrecision = 6

	header    = "vec3[]("
	footer    = ");\n"
	indent    = "  "
	separator = ",\n"
)

type FormatOptions struct {
	Precision int
}

type FormatOption func(*FormatOptions) error

// WithPrecision sets the number of digits after the decimal point.
func WithPrecision(precision int) FormatOption {
	return func(o *FormatOptions) error {
		if precision < 0 {
			return errors.New("glsl: precision must be non-negative")
		}
		o.Precision = precision
		return nil
	}
}

// FormatArrayLiteral returns points as a vec3 array literal, one entry per line:
//
//	vec3[](
//	  vec3(x0, y0, z0),
//	  vec3(x1, y1, z1));
//
// An empty point set yields "vec3[]();\n".
func FormatArrayLiteral(points s2.PointVector, setters ...FormatOption) (string, error) {
	opts := FormatOptions{
		Precision: defaultPrecision,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return "", err
		}
	}

	if len(points) == 0 {
		return header + footer, nil
	}

	entries := make([]string, len(points))
	buf := make([]byte, 0, 64)
	for i, p := range points {
		buf = append(buf[:0], indent...)
		buf = appendVec3(buf, p, opts.Precision)
		entries[i] = string(buf)
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	sb.WriteString(strings.Join(entries, separator))
	sb.WriteString(footer)
	return sb.String(), nil
}

func appendVec3(buf []byte, p s2.Point, precision int) []byte {
	buf = append(buf, "vec3("...)
	buf = strconv.AppendFloat(buf, p.X, 'f', precision, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, p.Y, 'f', precision, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, p.Z, 'f', precision, 64)
	return append(buf, ')')
}
