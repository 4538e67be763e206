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
	"testing"

	"github.com/akhenakh/s2cells/s1"
	"github.com/google/go-cmp/cmp"
)

func TestSTToUVBatch(t *testing.T) {
	// Lengths that are not multiples of the vector width exercise the tail.
	for _, n := range []int{0, 1, 3, 4, 7, 8, 17, 64, 101} {
		s := make([]float64, n)
		for i := range s {
			s[i] = randomUniformFloat64(0, 1)
		}
		if n > 2 {
			s[0], s[1], s[2] = 0, 0.5, 1
		}
		u := make([]float64, n)
		STToUVBatch(s, u)
		for i := range s {
			if want := stToUV(s[i]); !float64Near(u[i], want, 1e-15) {
				t.Errorf("n=%d: STToUVBatch(%v) = %v, want %v", n, s[i], u[i], want)
			}
		}
	}

	// Only the overlapping prefix is written.
	u := []float64{9, 9, 9}
	STToUVBatch([]float64{1, 1}, u)
	if diff := cmp.Diff([]float64{1, 1, 9}, u); diff != "" {
		t.Errorf("STToUVBatch with a short input mismatch (-want +got):\n%s", diff)
	}
}

func TestPointsFromLatLngs(t *testing.T) {
	if got := PointsFromLatLngs(nil); got != nil {
		t.Errorf("PointsFromLatLngs(nil) = %v, want nil", got)
	}

	lls := []LatLng{
		LatLngFromDegrees(0, 0),
		LatLngFromDegrees(90, 0),
		LatLngFromDegrees(-90, 45),
		LatLngFromDegrees(0, 180),
		LatLngFromDegrees(45, -135),
	}
	for i := 0; i < 200; i++ {
		lls = append(lls, randomLatLng())
	}

	got := PointsFromLatLngs(lls)
	if len(got) != len(lls) {
		t.Fatalf("PointsFromLatLngs returned %d points, want %d", len(got), len(lls))
	}
	for i, ll := range lls {
		want := PointFromLatLng(ll)
		if !float64Near(got[i].X, want.X, 1e-14) || !float64Near(got[i].Y, want.Y, 1e-14) || !float64Near(got[i].Z, want.Z, 1e-14) {
			t.Errorf("PointsFromLatLngs()[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestCellIDsFromLatLngs(t *testing.T) {
	var lls []LatLng
	for i := 0; i < 200; i++ {
		lls = append(lls, randomLatLng())
	}
	got := CellIDsFromLatLngs(lls)
	for i, ll := range lls {
		want := CellIDFromLatLng(ll)
		if !got[i].IsLeaf() {
			t.Errorf("CellIDsFromLatLngs()[%d] = %v is not a leaf", i, got[i])
		}
		// Ids may differ in the last few levels for points on leaf boundaries.
		if got[i].Parent(20) != want.Parent(20) {
			t.Errorf("CellIDsFromLatLngs()[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestCapContainsPoints(t *testing.T) {
	var points []Point
	for i := 0; i < 101; i++ {
		points = append(points, randomPoint())
	}
	caps := []Cap{
		EmptyCap(),
		FullCap(),
		CapFromPoint(points[0]),
		capFromDegrees(0, 0, 45),
		capFromDegrees(-30, 120, 100),
		CapFromCenterAngle(randomPoint(), 1),
	}
	for _, c := range caps {
		got := c.ContainsPoints(points)
		if len(got) != len(points) {
			t.Fatalf("%v.ContainsPoints returned %d results, want %d", c, len(got), len(points))
		}
		for i, p := range points {
			if want := c.ContainsPoint(p); got[i] != want {
				t.Errorf("%v.ContainsPoints()[%d] = %v, want %v", c, i, got[i], want)
			}
		}
	}

	if got := capFromDegrees(0, 0, 10).ContainsPoints(nil); len(got) != 0 {
		t.Errorf("ContainsPoints(nil) = %v, want empty", got)
	}
}

func TestCapFromPoints(t *testing.T) {
	if got := CapFromPoints(nil); !got.IsEmpty() {
		t.Errorf("CapFromPoints(nil) = %v, want empty", got)
	}

	p := randomPoint()
	single := CapFromPoints([]Point{p})
	if !single.ContainsPoint(p) {
		t.Errorf("CapFromPoints(%v) = %v does not contain the point", p, single)
	}
	if single.Radius() > 1e-12 {
		t.Errorf("CapFromPoints(%v).Radius() = %v, want ~0", p, single.Radius())
	}

	x := PointFromCoords(1, 0, 0)
	antipodal := CapFromPoints([]Point{x, Point{x.Mul(-1)}})
	if !antipodal.IsFull() {
		t.Errorf("CapFromPoints(antipodal pair) = %v, want full", antipodal)
	}

	for i := 0; i < 50; i++ {
		center := randomPoint()
		radius := randomUniformFloat64(0, 1.5)
		var pts []Point
		for j := 0; j < 1+randomUniformInt(40); j++ {
			pts = append(pts, InterpolateAtDistance(s1.Angle(randomUniformFloat64(0, radius)), center, randomPoint()))
		}
		c := CapFromPoints(pts)
		for _, q := range pts {
			if !c.ContainsPoint(q) {
				t.Errorf("CapFromPoints(...) = %v does not contain %v", c, q)
			}
		}
		// The centroid cap is at most twice the size of the generating cap.
		if c.Radius().Radians() > 2*radius+1e-12 {
			t.Errorf("CapFromPoints(...).Radius() = %v, want at most %v", c.Radius(), 2*radius)
		}
	}
}

func TestRectFromLatLngs(t *testing.T) {
	if got := RectFromLatLngs(nil); !got.IsEmpty() {
		t.Errorf("RectFromLatLngs(nil) = %v, want empty", got)
	}
	if got := RectFromLatLngs([]LatLng{LatLngFromDegrees(100, 0)}); !got.IsEmpty() {
		t.Errorf("RectFromLatLngs(invalid) = %v, want empty", got)
	}

	lls := []LatLng{
		LatLngFromDegrees(10, 170),
		LatLngFromDegrees(-5, -175),
		LatLngFromDegrees(95, 0),
		LatLngFromDegrees(20, 179),
	}
	for i := 0; i < 37; i++ {
		lls = append(lls, randomLatLng())
	}
	for _, n := range []int{1, 2, 4, 9, len(lls)} {
		want := EmptyRect()
		for _, ll := range lls[:n] {
			want = want.AddPoint(ll)
		}
		if got := RectFromLatLngs(lls[:n]); got != want {
			t.Errorf("RectFromLatLngs(%d points) = %v, want %v", n, got, want)
		}
	}

	got := RectFromLatLngs(lls[:4])
	if want := rectFromDegrees(-5, 170, 20, -175); !rectsApproxEqual(got, want) {
		t.Errorf("RectFromLatLngs(antimeridian points) = %v, want %v", got, want)
	}
}
