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

	"github.com/akhenakh/s2cells/r1"
	"github.com/akhenakh/s2cells/r3"
	"github.com/akhenakh/s2cells/s1"
)

// This file holds the slice-at-a-time entry points backed by the SIMD
// kernels in the *_hwy.go files. Results agree with the scalar functions to
// within a few ulps per coordinate.

// STToUVBatch converts every s- or t-value in s to the corresponding u- or
// v-value, writing to u. Only min(len(s), len(u)) values are converted.
func STToUVBatch(s, u []float64) {
	BaseSTtoUVBatch(s, u)
}

// PointsFromLatLngs converts a slice of LatLngs to Points.
func PointsFromLatLngs(lls []LatLng) []Point {
	n := len(lls)
	if n == 0 {
		return nil
	}
	lats := make([]float64, n)
	lngs := make([]float64, n)
	for i, ll := range lls {
		lats[i] = ll.Lat.Radians()
		lngs[i] = ll.Lng.Radians()
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	BasePointsFromLatLngsBatch(lats, lngs, xs, ys, zs)

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{r3.Vector{X: xs[i], Y: ys[i], Z: zs[i]}}
	}
	return points
}

// CellIDsFromLatLngs returns the leaf cell containing each LatLng. Points
// lying within rounding distance of a leaf cell boundary may land in the
// neighbouring leaf compared to CellIDFromLatLng, which remains the
// reference for single conversions.
func CellIDsFromLatLngs(lls []LatLng) []CellID {
	points := PointsFromLatLngs(lls)
	ids := make([]CellID, len(points))
	for i, p := range points {
		ids[i] = CellIDFromPoint(p)
	}
	return ids
}

// ContainsPoints reports, for each point, whether the cap contains it. It
// applies the same squared chord test as ContainsPoint to the whole slice.
func (c Cap) ContainsPoints(points []Point) []bool {
	n := len(points)
	out := make([]bool, n)
	if n == 0 || c.IsEmpty() {
		return out
	}
	if c.IsFull() {
		for i := range out {
			out[i] = true
		}
		return out
	}

	xs, ys, zs := splitCoords(points)
	d2 := make([]float64, n)
	BaseChordDistance2Batch(c.center.X, c.center.Y, c.center.Z, xs, ys, zs, d2)

	limit := 2 * c.height
	for i, d := range d2 {
		out[i] = d <= limit
	}
	return out
}

// CapFromPoints returns a cap containing every point. The center is the
// normalized sum of the points, or the first point if they sum to zero. The
// cap is empty if there are no points.
func CapFromPoints(points []Point) Cap {
	if len(points) == 0 {
		return EmptyCap()
	}
	xs, ys, zs := splitCoords(points)
	sx, sy, sz := BaseCoordSums(xs, ys, zs)
	center := Point{r3.Vector{X: sx, Y: sy, Z: sz}}
	if center.Norm2() == 0 {
		center = points[0]
	}
	center = Point{center.Normalize()}

	d2 := make([]float64, len(points))
	BaseChordDistance2Batch(center.X, center.Y, center.Z, xs, ys, zs, d2)
	_, maxD2 := BaseMinMax(d2)

	// The padding covers the difference in rounding between the kernel and
	// ContainsPoint. The center is set directly so it is not renormalized.
	return Cap{center: center, height: math.Min(0.5*maxD2*(1+4*dblEpsilon), fullHeight)}
}

// RectFromLatLngs returns a rectangle containing every valid LatLng. Invalid
// entries are skipped. The longitude range is the one obtained by adding the
// points in order with Rect.AddPoint.
func RectFromLatLngs(lls []LatLng) Rect {
	lats := make([]float64, 0, len(lls))
	lng := s1.EmptyInterval()
	for _, ll := range lls {
		if !ll.IsValid() {
			continue
		}
		lats = append(lats, ll.Lat.Radians())
		lng = lng.AddPoint(ll.Lng.Radians())
	}
	if len(lats) == 0 {
		return EmptyRect()
	}
	lo, hi := BaseMinMax(lats)
	return Rect{Lat: r1.Interval{Lo: lo, Hi: hi}, Lng: lng}
}

// splitCoords returns the coordinates of points in SoA layout.
func splitCoords(points []Point) (xs, ys, zs []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	zs = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}
