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
	"testing"
)

// maxCellSize is the upper bound on the number of leaf cells along an edge.
const maxCellSize = 1 << maxLevel

func TestCellObjectSize(t *testing.T) {
	c := CellFromCellID(CellIDFromFace(0))
	if got := c.SizeIJ(); got != maxCellSize {
		t.Errorf("face cell SizeIJ() = %d, want %d", got, maxCellSize)
	}
	leaf := CellFromCellID(CellIDFromFace(0).ChildBeginAtLevel(maxLevel))
	if got := leaf.SizeIJ(); got != 1 {
		t.Errorf("leaf cell SizeIJ() = %d, want 1", got)
	}
	if !leaf.IsLeaf() || c.IsLeaf() {
		t.Errorf("IsLeaf() mismatch: face %v, leaf %v", c.IsLeaf(), leaf.IsLeaf())
	}
}

func TestCellFaces(t *testing.T) {
	vertexCounts := make(map[Point]int)

	for face := 0; face < numFaces; face++ {
		id := CellIDFromFace(face)
		cell := CellFromCellID(id)

		if cell.ID() != id {
			t.Errorf("cell.ID() != id; %v != %v", cell.ID(), id)
		}
		if cell.Face() != face {
			t.Errorf("cell.Face() != face; %v != %v", cell.Face(), face)
		}
		if cell.Level() != 0 {
			t.Errorf("cell.Level() != 0; %v != 0", cell.Level())
		}
		// Top-level faces have alternating orientations to get RHS coordinates.
		if cell.Orientation() != cell.Face()&swapMask {
			t.Errorf("cell.Orientation() != orientation; %v != %v", cell.Orientation(), cell.Face()&swapMask)
		}
		if cell.IsLeaf() {
			t.Errorf("cell should not be a leaf: IsLeaf = %v", cell.IsLeaf())
		}
		for k := 0; k < 4; k++ {
			vertexCounts[cell.VertexRaw(k)]++
			if d := cell.Vertex(k).Dot(cell.Edge(k).Vector); !float64Eq(0.0, d) {
				t.Errorf("dot product of vertex and edge failed, got %v, want 0", d)
			}
			if d := cell.Vertex((k + 1) & 3).Dot(cell.Edge(k).Vector); !float64Eq(0.0, d) {
				t.Errorf("dot product for edge and next vertex failed, got %v, want 0", d)
			}
			if d := cell.Vertex(k).Vector.Cross(cell.Vertex((k + 1) & 3).Vector).Normalize().Dot(cell.Edge(k).Vector); !float64Eq(1.0, d) {
				t.Errorf("dot product of cross product for vertices failed, got %v, want 1.0", d)
			}
		}
	}

	// Each cube corner is shared by three faces.
	for k, v := range vertexCounts {
		if v != 3 {
			t.Errorf("vertex %v counts wrong, got %d, want 3", k, v)
		}
	}
	if len(vertexCounts) != 8 {
		t.Errorf("found %d distinct vertices, want 8", len(vertexCounts))
	}
}

func TestCellChildren(t *testing.T) {
	testCellChildren(t, CellFromCellID(CellIDFromFace(0)))
	testCellChildren(t, CellFromCellID(CellIDFromFace(3)))
	testCellChildren(t, CellFromCellID(CellIDFromFace(5)))
	for i := 0; i < 100; i++ {
		testCellChildren(t, CellFromCellID(randomCellIDForLevel(randomUniformInt(maxLevel))))
	}

	leaf := CellFromCellID(randomCellIDForLevel(maxLevel))
	if _, ok := leaf.Children(); ok {
		t.Errorf("leaf cell %v should not have children", leaf.ID())
	}
}

func testCellChildren(t *testing.T, cell Cell) {
	t.Helper()
	children, ok := cell.Children()
	if !ok {
		t.Fatalf("%v.Children() reported a leaf", cell.ID())
	}

	childID := cell.ID().ChildBegin()
	var exactSum, approxSum float64
	for i, ci := range children {
		if ci.ID() != childID {
			t.Errorf("child %d of %v has id %v, want %v", i, cell.ID(), ci.ID(), childID)
		}

		direct := CellFromCellID(ci.ID())
		if direct.Face() != ci.Face() || direct.Level() != ci.Level() || direct.Orientation() != ci.Orientation() {
			t.Errorf("child %v: (face, level, orientation) = (%d, %d, %d), want (%d, %d, %d)",
				ci.ID(), ci.Face(), ci.Level(), ci.Orientation(),
				direct.Face(), direct.Level(), direct.Orientation())
		}
		if !ci.BoundUV().ApproxEqual(direct.BoundUV()) {
			t.Errorf("child %v: BoundUV() = %v, want %v", ci.ID(), ci.BoundUV(), direct.BoundUV())
		}
		if !ci.Center().ApproxEqual(ci.ID().Point()) {
			t.Errorf("child %v: Center() = %v, want %v", ci.ID(), ci.Center(), ci.ID().Point())
		}
		for k := 0; k < 4; k++ {
			if !direct.Vertex(k).ApproxEqual(ci.Vertex(k)) {
				t.Errorf("child %v: Vertex(%d) = %v, want %v", ci.ID(), k, ci.Vertex(k), direct.Vertex(k))
			}
		}

		if !cell.ContainsCell(ci) || !cell.IntersectsCell(ci) {
			t.Errorf("%v should contain and intersect its child %v", cell.ID(), ci.ID())
		}
		if ci.ContainsCell(cell) {
			t.Errorf("child %v should not contain its parent %v", ci.ID(), cell.ID())
		}
		if !cell.ContainsPoint(ci.Center()) {
			t.Errorf("%v should contain the center of its child %v", cell.ID(), ci.ID())
		}
		for j := 0; j < 4; j++ {
			if j != i && ci.IntersectsCell(children[j]) {
				t.Errorf("siblings %v and %v should not intersect", ci.ID(), children[j].ID())
			}
		}

		exactSum += ci.ExactArea()
		approxSum += ci.ApproxArea()
		childID = childID.Next()
	}

	// Areas of the children add up to the area of the parent. Exact area
	// loses relative precision for tiny cells.
	if cell.Level() <= 20 {
		if got := math.Abs(math.Log(cell.ExactArea() / exactSum)); got > math.Abs(math.Log1p(1e-6)) {
			t.Errorf("%v: ExactArea() = %v, sum of children = %v", cell.ID(), cell.ExactArea(), exactSum)
		}
	}
	if got := math.Abs(math.Log(cell.ApproxArea() / approxSum)); got > math.Abs(math.Log(1.03)) {
		t.Errorf("%v: ApproxArea() = %v, sum of children = %v", cell.ID(), cell.ApproxArea(), approxSum)
	}
	avgSum := (children[0].AverageArea() + children[1].AverageArea()) +
		(children[2].AverageArea() + children[3].AverageArea())
	if cell.AverageArea() != avgSum {
		t.Errorf("%v: AverageArea() = %v, sum of children = %v", cell.ID(), cell.AverageArea(), avgSum)
	}
}

func TestCellAreas(t *testing.T) {
	var total float64
	for face := 0; face < numFaces; face++ {
		total += CellFromCellID(CellIDFromFace(face)).ExactArea()
	}
	if !float64Near(total, 4*math.Pi, 1e-13) {
		t.Errorf("sum of face areas = %v, want 4π", total)
	}

	for i := 0; i < 200; i++ {
		c := CellFromCellID(randomCellIDForLevel(2 + randomUniformInt(19)))
		exact, approx := c.ExactArea(), c.ApproxArea()
		if math.Abs(approx/exact-1) > 0.03 {
			t.Errorf("%v: ApproxArea() = %v, ExactArea() = %v", c.ID(), approx, exact)
		}
		if c.Level() >= 5 && math.Abs(approx/exact-1) > 0.001 {
			t.Errorf("%v: ApproxArea() = %v not within 0.1%% of ExactArea() = %v", c.ID(), approx, exact)
		}
		if got, want := c.AverageArea(), AvgAreaMetric.Value(c.Level()); got != want {
			t.Errorf("%v: AverageArea() = %v, want %v", c.ID(), got, want)
		}
	}
}

func TestCellContainsPoint(t *testing.T) {
	for i := 0; i < 500; i++ {
		p := randomPoint()
		if c := CellFromPoint(p); !c.ContainsPoint(p) {
			t.Errorf("CellFromPoint(%v) = %v does not contain the point", p, c.ID())
		}
		if got, want := CellFromPoint(p).ID(), CellIDFromPoint(p); got != want {
			t.Errorf("CellFromPoint(%v).ID() = %v, want %v", p, got, want)
		}
	}

	for i := 0; i < 200; i++ {
		c := CellFromCellID(randomCellID())
		if !c.ContainsPoint(c.Center()) {
			t.Errorf("%v does not contain its center", c.ID())
		}
		// The cell is closed, so its exact corners belong to it.
		for k := 0; k < 4; k++ {
			if !c.ContainsPoint(c.VertexRaw(k)) {
				t.Errorf("%v does not contain its vertex %d", c.ID(), k)
			}
		}
		if c.ContainsPoint(Point{c.Center().Mul(-1)}) {
			t.Errorf("%v contains the antipode of its center", c.ID())
		}
	}

	// Points on the boundary between two faces belong to both face cells.
	p := PointFromCoords(1, 1, 0)
	if !CellFromCellID(CellIDFromFace(0)).ContainsPoint(p) || !CellFromCellID(CellIDFromFace(1)).ContainsPoint(p) {
		t.Errorf("face boundary point %v should be contained by faces 0 and 1", p)
	}
	if CellFromCellID(CellIDFromFace(2)).ContainsPoint(p) {
		t.Errorf("face boundary point %v should not be contained by face 2", p)
	}
}

func TestCellBounds(t *testing.T) {
	cells := []Cell{}
	for face := 0; face < numFaces; face++ {
		cells = append(cells, CellFromCellID(CellIDFromFace(face)))
	}
	for i := 0; i < 300; i++ {
		cells = append(cells, CellFromCellID(randomCellID()))
	}

	for _, c := range cells {
		capBound := c.CapBound()
		rectBound := c.RectBound()
		if !capBound.ContainsPoint(c.Center()) {
			t.Errorf("%v.CapBound() = %v does not contain the center", c.ID(), capBound)
		}
		if !rectBound.ContainsPoint(c.Center()) {
			t.Errorf("%v.RectBound() = %v does not contain the center", c.ID(), rectBound)
		}
		for k := 0; k < 4; k++ {
			if !capBound.ContainsPoint(c.Vertex(k)) {
				t.Errorf("%v.CapBound() = %v does not contain vertex %d", c.ID(), capBound, k)
			}
			if !rectBound.ContainsPoint(c.VertexRaw(k)) {
				t.Errorf("%v.RectBound() = %v does not contain vertex %d", c.ID(), rectBound, k)
			}
		}
		if got := c.CellUnionBound(); len(got) != 1 || got[0] != c.ID() {
			t.Errorf("%v.CellUnionBound() = %v, want [%v]", c.ID(), got, c.ID())
		}
	}
}

func TestCellRectBoundPoles(t *testing.T) {
	north := CellFromCellID(CellIDFromFace(2)).RectBound()
	if !north.Lng.IsFull() || north.Lat.Hi != math.Pi/2 {
		t.Errorf("face 2 RectBound() = %v, want full longitude up to the north pole", north)
	}
	if want := math.Asin(math.Sqrt(1.0 / 3)); north.Lat.Lo > want {
		t.Errorf("face 2 RectBound().Lat.Lo = %v, want <= %v", north.Lat.Lo, want)
	}

	south := CellFromCellID(CellIDFromFace(5)).RectBound()
	if !south.Lng.IsFull() || south.Lat.Lo != -math.Pi/2 {
		t.Errorf("face 5 RectBound() = %v, want full longitude down to the south pole", south)
	}

	// A cell touching the pole gets every longitude.
	polar := CellFromPoint(PointFromCoords(0, 0, 1))
	for polar.Level() > 10 {
		polar = CellFromCellID(polar.ID().ImmediateParent())
	}
	if got := polar.RectBound(); !got.Lng.IsFull() {
		t.Errorf("%v.RectBound() = %v, want full longitude", polar.ID(), got)
	}
}

func TestCellEdgesAreInward(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := CellFromCellID(randomCellIDForLevel(randomUniformInt(20)))
		center := c.Center()
		for k := 0; k < 4; k++ {
			if d := center.Dot(c.EdgeRaw(k).Vector); d <= 0 {
				t.Errorf("%v: center is not on the inner side of edge %d (dot %v)", c.ID(), k, d)
			}
		}
	}
}

func TestCellFromLatLng(t *testing.T) {
	ll := LatLngFromDegrees(48.8566, 2.3522)
	c := CellFromLatLng(ll)
	if !c.IsLeaf() {
		t.Errorf("CellFromLatLng(%v) = %v, want a leaf", ll, c.ID())
	}
	if !c.ContainsPoint(PointFromLatLng(ll)) {
		t.Errorf("CellFromLatLng(%v) does not contain the point", ll)
	}
	if got := CellFromCellID(c.ID()).ID(); got != c.ID() {
		t.Errorf("CellFromCellID(%v).ID() = %v", c.ID(), got)
	}
}
