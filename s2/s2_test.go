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

import (
	"math"
	"math/rand"

	"github.com/akhenakh/s2cells/r3"
	"github.com/akhenakh/s2cells/s1"
)

// rnd is seeded so that failures are reproducible.
var rnd = rand.New(rand.NewSource(20231016))

func float64Eq(x, y float64) bool { return float64Near(x, y, epsilon) }

func float64Near(x, y, eps float64) bool { return math.Abs(x-y) <= eps }

// randomUniformInt returns a uniformly distributed integer in the range [0,n).
func randomUniformInt(n int) int {
	return rnd.Intn(n)
}

// randomUniformFloat64 returns a uniformly distributed value in the range [min, max).
func randomUniformFloat64(min, max float64) float64 {
	return min + rnd.Float64()*(max-min)
}

// randomPoint returns a random unit vector.
func randomPoint() Point {
	return PointFromCoords(randomUniformFloat64(-1, 1),
		randomUniformFloat64(-1, 1), randomUniformFloat64(-1, 1))
}

// randomCellIDForLevel returns a random CellID at the given level.
// The distribution is uniform over the space of cell ids, but only
// approximately uniform over the surface of the sphere.
func randomCellIDForLevel(level int) CellID {
	face := randomUniformInt(numFaces)
	pos := rnd.Uint64() & uint64((1<<posBits)-1)
	return CellIDFromFacePosLevel(face, pos, level)
}

// randomCellID returns a random CellID at a randomly chosen
// level. The distribution is uniform over the space of cell ids,
// but only approximately uniform over the surface of the sphere.
func randomCellID() CellID {
	return randomCellIDForLevel(randomUniformInt(maxLevel + 1))
}

// randomLatLng returns a LatLng distributed uniformly over the sphere.
func randomLatLng() LatLng {
	return LatLngFromPoint(randomPoint())
}

// pointFromDegrees is shorthand for PointFromLatLng(LatLngFromDegrees(lat, lng)).
func pointFromDegrees(lat, lng float64) Point {
	return PointFromLatLng(LatLngFromDegrees(lat, lng))
}

// unnormalized returns a copy of p scaled away from unit length.
func unnormalized(p Point, scale float64) Point {
	return Point{r3.Vector{X: p.X * scale, Y: p.Y * scale, Z: p.Z * scale}}
}

// capFromDegrees builds a cap around (lat, lng) with the given radius, all in degrees.
func capFromDegrees(lat, lng, radius float64) Cap {
	return CapFromCenterAngle(pointFromDegrees(lat, lng), s1.AngleFromDegrees(radius))
}
