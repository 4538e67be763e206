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

package r1

import (
	"math/rand"
	"testing"
)

// Some standard intervals for use throughout the tests.
var (
	unit    = Interval{0, 1}
	negunit = Interval{-1, 0}
	half    = Interval{0.5, 0.5}
	empty   = EmptyInterval()
)

func TestIsEmpty(t *testing.T) {
	var zero Interval
	if unit.IsEmpty() {
		t.Errorf("%v should not be empty", unit)
	}
	if half.IsEmpty() {
		t.Errorf("%v should not be empty", half)
	}
	if !empty.IsEmpty() {
		t.Errorf("%v should be empty", empty)
	}
	if zero.IsEmpty() {
		t.Errorf("zero Interval %v should not be empty", zero)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		interval Interval
		want     float64
	}{
		{unit, 0.5},
		{negunit, -0.5},
		{half, 0.5},
	}
	for _, test := range tests {
		got := test.interval.Center()
		if got != test.want {
			t.Errorf("%v.Center() = %v, want %v", test.interval, got, test.want)
		}
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		interval Interval
		want     float64
	}{
		{unit, 1},
		{negunit, 1},
		{half, 0},
	}
	for _, test := range tests {
		if l := test.interval.Length(); l != test.want {
			t.Errorf("%v.Length() = %v, want %v", test.interval, l, test.want)
		}
	}
	if l := empty.Length(); l >= 0 {
		t.Errorf("empty interval has non-negative length")
	}
}

func TestIntervalContains(t *testing.T) {
	tests := []struct {
		interval         Interval
		p                float64
		contains         bool
		interiorContains bool
	}{
		{unit, 0.5, true, true},
		{unit, 0, true, false},
		{unit, 1, true, false},
		{unit, 2, false, false},
		{half, 0.5, true, false},
		{empty, 0.5, false, false},
	}
	for _, test := range tests {
		if got := test.interval.Contains(test.p); got != test.contains {
			t.Errorf("%v.Contains(%v) = %v, want %v", test.interval, test.p, got, test.contains)
		}
		if got := test.interval.InteriorContains(test.p); got != test.interiorContains {
			t.Errorf("%v.InteriorContains(%v) = %v, want %v", test.interval, test.p, got, test.interiorContains)
		}
	}
}

func TestIntervalOperations(t *testing.T) {
	tests := []struct {
		have               Interval
		other              Interval
		contains           bool
		interiorContains   bool
		intersects         bool
		interiorIntersects bool
	}{
		{empty, empty, true, true, false, false},
		{empty, unit, false, false, false, false},
		{unit, half, true, true, true, true},
		{unit, unit, true, false, true, true},
		{unit, empty, true, true, false, false},
		{unit, negunit, false, false, true, false},
		{unit, Interval{0, 0.5}, true, false, true, true},
		{half, Interval{0, 0.5}, false, false, true, false},
	}

	for _, test := range tests {
		if got := test.have.ContainsInterval(test.other); got != test.contains {
			t.Errorf("%v.ContainsInterval(%v) = %t, want %t", test.have, test.other, got, test.contains)
		}
		if got := test.have.InteriorContainsInterval(test.other); got != test.interiorContains {
			t.Errorf("%v.InteriorContainsInterval(%v) = %t, want %t", test.have, test.other, got, test.interiorContains)
		}
		if got := test.have.Intersects(test.other); got != test.intersects {
			t.Errorf("%v.Intersects(%v) = %t, want %t", test.have, test.other, got, test.intersects)
		}
		if got := test.have.InteriorIntersects(test.other); got != test.interiorIntersects {
			t.Errorf("%v.InteriorIntersects(%v) = %t, want %t", test.have, test.other, got, test.interiorIntersects)
		}
	}
}

func TestIntersection(t *testing.T) {
	tests := []struct {
		x, y Interval
		want Interval
	}{
		{unit, half, half},
		{unit, negunit, Interval{0, 0}},
		{negunit, half, empty},
		{unit, empty, empty},
		{empty, unit, empty},
	}
	for _, test := range tests {
		if got := test.x.Intersection(test.y); !got.Equal(test.want) {
			t.Errorf("%v.Intersection(%v) = %v, want equal to %v", test.x, test.y, got, test.want)
		}
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		x, y Interval
		want Interval
	}{
		{Interval{99, 100}, empty, Interval{99, 100}},
		{empty, Interval{99, 100}, Interval{99, 100}},
		{Interval{5, 3}, Interval{0, -2}, empty},
		{Interval{0, -2}, Interval{5, 3}, empty},
		{unit, unit, unit},
		{unit, negunit, Interval{-1, 1}},
		{negunit, unit, Interval{-1, 1}},
		{half, unit, unit},
	}
	for _, test := range tests {
		if got := test.x.Union(test.y); !got.Equal(test.want) {
			t.Errorf("%v.Union(%v) = %v, want %v", test.x, test.y, got, test.want)
		}
	}
}

func TestAddPoint(t *testing.T) {
	tests := []struct {
		interval Interval
		point    float64
		want     Interval
	}{
		{empty, 5, Interval{5, 5}},
		{Interval{5, 5}, -1, Interval{-1, 5}},
		{Interval{-1, 5}, 0, Interval{-1, 5}},
		{Interval{-1, 5}, 6, Interval{-1, 6}},
	}
	for _, test := range tests {
		if got := test.interval.AddPoint(test.point); !got.Equal(test.want) {
			t.Errorf("%v.AddPoint(%v) = %v, want equal to %v", test.interval, test.point, got, test.want)
		}
	}
}

func TestClampPoint(t *testing.T) {
	tests := []struct {
		interval Interval
		clamp    float64
		want     float64
	}{
		{Interval{0.1, 0.4}, 0.3, 0.3},
		{Interval{0.1, 0.4}, -7.0, 0.1},
		{Interval{0.1, 0.4}, 0.6, 0.4},
	}
	for _, test := range tests {
		if got := test.interval.ClampPoint(test.clamp); got != test.want {
			t.Errorf("%v.ClampPoint(%v) = %v, want %v", test.interval, test.clamp, got, test.want)
		}
	}
}

func TestExpanded(t *testing.T) {
	tests := []struct {
		interval Interval
		margin   float64
		want     Interval
	}{
		{empty, 0.45, empty},
		{unit, 0.5, Interval{-0.5, 1.5}},
		{unit, -0.5, Interval{0.5, 0.5}},
		{unit, -0.51, empty},
	}
	for _, test := range tests {
		if got := test.interval.Expanded(test.margin); !got.Equal(test.want) {
			t.Errorf("%v.Expanded(%v) = %v, want %v", test.interval, test.margin, got, test.want)
		}
	}
}

func TestApproxEqual(t *testing.T) {
	const lo = 4 * epsilon
	const hi = 6 * epsilon
	tests := []struct {
		interval Interval
		other    Interval
		want     bool
	}{
		{empty, empty, true},
		{Interval{0, 0}, empty, true},
		{empty, Interval{0, 0}, true},
		{Interval{1, 1}, empty, true},
		{Interval{0, lo}, empty, false},
		{Interval{1, 1 + hi}, empty, false},
		{Interval{1, 1}, Interval{1, 1}, true},
		{Interval{1, 1}, Interval{1 - lo, 1 - lo}, false},
		{Interval{1, 2}, Interval{1 + lo / 8, 2 - lo / 8}, true},
	}
	for _, test := range tests {
		if got := test.interval.ApproxEqual(test.other); got != test.want {
			t.Errorf("%v.ApproxEqual(%v) = %t, want %t", test.interval, test.other, got, test.want)
		}
	}
}

// The laws below must hold for arbitrary pairs, not only the hand-picked ones above.
func TestIntervalLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randInterval := func() Interval {
		if rng.Intn(8) == 0 {
			return EmptyInterval()
		}
		return IntervalFromPointPair(rng.Float64()*4-2, rng.Float64()*4-2)
	}
	for iter := 0; iter < 1000; iter++ {
		x, y := randInterval(), randInterval()
		if got, want := x.ContainsInterval(y), x.Union(y).Equal(x); got != want {
			t.Errorf("%v.ContainsInterval(%v) = %v, but Union equality = %v", x, y, got, want)
		}
		if got, want := x.Intersects(y), !x.Intersection(y).IsEmpty(); got != want {
			t.Errorf("%v.Intersects(%v) = %v, but non-empty Intersection = %v", x, y, got, want)
		}
	}
}
