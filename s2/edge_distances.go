// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package s2

// This file defines functions for computing distances and interpolating
// along edges.

import (
	"math"

	"github.com/akhenakh/s2cells/s1"
	"github.com/pkg/errors"
)

// DistanceFraction returns the distance ratio of the point X along an edge AB.
// If X is on the line segment AB, this is the fraction T such
// that X == Interpolate(T, A, B).
//
// All three points must be unit length and A must differ from B.
func DistanceFraction(x, a, b Point) (float64, error) {
	for _, p := range []struct {
		name string
		pt   Point
	}{{"x", x}, {"a", a}, {"b", b}} {
		if err := checkUnit(p.name, p.pt); err != nil {
			return 0, err
		}
	}
	if a == b {
		return 0, errors.Wrapf(ErrDegenerateEdge, "a = b = %v", a)
	}
	d0 := x.Angle(a.Vector)
	d1 := x.Angle(b.Vector)
	return float64(d0 / (d0 + d1)), nil
}

// Interpolate returns the point X along the line segment AB whose distance from A
// is the given fraction "t" of the distance AB. Does NOT require that "t" be
// between 0 and 1. Note that all distances are measured on the surface of
// the sphere, so this is more complicated than just computing (1-t)*a + t*b
// and normalizing the result.
func Interpolate(t float64, a, b Point) Point {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	ab := a.Angle(b.Vector)
	return InterpolateAtDistance(s1.Angle(t)*ab, a, b)
}

// InterpolateAtDistance returns the point X along the line segment AB whose
// distance from A is the angle ax.
func InterpolateAtDistance(ax s1.Angle, a, b Point) Point {
	aRad := ax.Radians()

	// The tangent vector at A towards B. PointCross keeps it perpendicular
	// to A even if A=B or A=-B, but it is not unit length.
	normal := a.PointCross(b)
	tangent := normal.Vector.Cross(a.Vector)

	// Normalizing the linear combination keeps errors from building up when
	// results are fed into further interpolations.
	return Point{(a.Mul(math.Cos(aRad)).Add(tangent.Mul(math.Sin(aRad) / tangent.Norm()))).Normalize()}
}
