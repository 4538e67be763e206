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
	"github.com/akhenakh/s2cells/r2"
	"github.com/akhenakh/s2cells/s1"
)

// Cell is an S2 region object that represents a cell. Unlike CellIDs,
// it supports efficient containment and intersection tests. However, it is
// also a more expensive representation.
type Cell struct {
	face        int8
	level       int8
	orientation int8
	id          CellID
	uv          r2.Rect
}

// poleMinLat is the minimum latitude of the two polar face cells, less the
// maximum error of computing it.
var poleMinLat = math.Asin(math.Sqrt(1.0/3)) - 0.5*dblEpsilon

// CellFromCellID constructs a Cell corresponding to the given CellID.
func CellFromCellID(id CellID) Cell {
	c := Cell{id: id}
	f, i, j, o := id.faceIJOrientation()
	c.face = int8(f)
	c.level = int8(id.Level())
	c.orientation = int8(o)
	c.uv = ijLevelToBoundUV(i, j, int(c.level))
	return c
}

// CellFromPoint constructs a leaf cell containing the given Point.
func CellFromPoint(p Point) Cell {
	return CellFromCellID(CellIDFromPoint(p))
}

// CellFromLatLng constructs a leaf cell containing the given LatLng.
func CellFromLatLng(ll LatLng) Cell {
	return CellFromCellID(CellIDFromLatLng(ll))
}

// Face returns the face this cell is on.
func (c Cell) Face() int { return int(c.face) }

// Level returns the level of this cell.
func (c Cell) Level() int { return int(c.level) }

// ID returns the CellID this cell represents.
func (c Cell) ID() CellID { return c.id }

// IsLeaf returns whether this Cell is a leaf or not.
func (c Cell) IsLeaf() bool { return c.level == maxLevel }

// Orientation returns the Hilbert curve orientation of this cell.
func (c Cell) Orientation() int { return int(c.orientation) }

// SizeIJ returns the edge length of this cell in (i,j)-space.
func (c Cell) SizeIJ() int { return sizeIJ(int(c.level)) }

// BoundUV returns the bounds of this cell in (u,v)-space.
func (c Cell) BoundUV() r2.Rect { return c.uv }

// Vertex returns the normalized k-th vertex of the cell.
// Vertices are returned in CCW order (lower left, lower right, upper right,
// upper left in the UV plane).
func (c Cell) Vertex(k int) Point {
	return Point{c.VertexRaw(k).Normalize()}
}

// VertexRaw returns the unnormalized k-th vertex of the cell.
func (c Cell) VertexRaw(k int) Point {
	uv := c.uv.Vertices()[k]
	return Point{faceUVToXYZ(int(c.face), uv.X, uv.Y)}
}

// Edge returns the inward-facing normal of the great circle passing through
// the CCW ordered edge from vertex k to vertex k+1 (mod 4) (for k = 0,1,2,3).
func (c Cell) Edge(k int) Point {
	return Point{c.EdgeRaw(k).Normalize()}
}

// EdgeRaw returns the inward-facing normal of the great circle passing through
// the CCW ordered edge from vertex k to vertex k+1 (mod 4), not unit length.
func (c Cell) EdgeRaw(k int) Point {
	switch k {
	case 0:
		return Point{vNorm(int(c.face), c.uv.Y.Lo)} // Bottom
	case 1:
		return Point{uNorm(int(c.face), c.uv.X.Hi)} // Right
	case 2:
		return Point{vNorm(int(c.face), c.uv.Y.Hi).Mul(-1.0)} // Top
	default:
		return Point{uNorm(int(c.face), c.uv.X.Lo).Mul(-1.0)} // Left
	}
}

// Center returns the direction vector corresponding to the center in
// (s,t)-space of the given cell. This is the point at which the cell is
// divided into four subcells; it is not necessarily the centroid of the
// cell in (u,v)-space or (x,y,z)-space.
func (c Cell) Center() Point {
	return Point{c.id.rawPoint().Normalize()}
}

// Children returns the four direct children of this cell in Hilbert curve
// order. If this is a leaf cell, ok is false.
func (c Cell) Children() (children [4]Cell, ok bool) {
	if c.IsLeaf() {
		return children, false
	}

	// The child bounds are split at the cell midpoint in (u,v)-space.
	uvMid := c.id.centerUV()

	cid := c.id.ChildBegin()
	for pos := 0; pos < 4; pos++ {
		children[pos] = Cell{
			face:        c.face,
			level:       c.level + 1,
			orientation: c.orientation ^ int8(posToOrientation[pos]),
			id:          cid,
		}

		// The (i,j) position of the child within its parent decides which
		// side of each axis gets the midpoint. i is bit 1 of ij.
		ij := posToIJ[c.orientation][pos]
		i := ij >> 1
		j := ij & 1
		if i == 1 {
			children[pos].uv.X.Hi = c.uv.X.Hi
			children[pos].uv.X.Lo = uvMid.X
		} else {
			children[pos].uv.X.Lo = c.uv.X.Lo
			children[pos].uv.X.Hi = uvMid.X
		}
		if j == 1 {
			children[pos].uv.Y.Hi = c.uv.Y.Hi
			children[pos].uv.Y.Lo = uvMid.Y
		} else {
			children[pos].uv.Y.Lo = c.uv.Y.Lo
			children[pos].uv.Y.Hi = uvMid.Y
		}
		cid = cid.Next()
	}
	return children, true
}

// ExactArea returns the area of this cell as accurately as possible.
func (c Cell) ExactArea() float64 {
	v0, v1, v2, v3 := c.Vertex(0), c.Vertex(1), c.Vertex(2), c.Vertex(3)
	return PointArea(v0, v1, v2) + PointArea(v0, v2, v3)
}

// ApproxArea returns the approximate area of this cell. This method is accurate
// to within 3% percent for all cell sizes and accurate to within 0.1% for cells
// at level 5 or higher (i.e. squares 350km to a side or smaller on the Earth's
// surface). It is moderately cheap to compute.
func (c Cell) ApproxArea() float64 {
	// All cells at the first two levels have the same area.
	if c.level < 2 {
		return c.AverageArea()
	}

	// The cross product of the diagonals gives the normal of the cell
	// projected flat, and its length is twice the projected area.
	flatArea := 0.5 * (c.Vertex(2).Sub(c.Vertex(0).Vector).
		Cross(c.Vertex(3).Sub(c.Vertex(1).Vector)).Norm())

	// Compensate for the curvature of the surface by treating the cell as a
	// spherical cap. The ratio of the area of a cap to the area of its
	// projected disc is 2 / (1 + sqrt(1 - r*r)) where r is the radius of the
	// disc. Pi*r*r == flatArea gives the equivalent disc.
	return flatArea * 2 / (1 + math.Sqrt(1-math.Min(1/math.Pi*flatArea, 1)))
}

// AverageArea returns the average area of cells at the level of this cell.
// This is accurate to within a factor of 1.7.
func (c Cell) AverageArea() float64 {
	return AvgAreaMetric.Value(int(c.level))
}

// IntersectsCell reports whether the intersection of this cell and the other cell is not nil.
func (c Cell) IntersectsCell(oc Cell) bool {
	return c.id.Intersects(oc.id)
}

// ContainsCell reports whether this cell contains the other cell.
func (c Cell) ContainsCell(oc Cell) bool {
	return c.id.Contains(oc.id)
}

// ContainsPoint reports whether this cell contains the given point. A Cell is
// a closed set, so a point on a Cell's edge or vertex belongs to the Cell and
// to the adjacent Cells too.
//
// To assign every point to exactly one cell, compare leaf ids instead:
// c.ID().Contains(CellIDFromPoint(p)).
func (c Cell) ContainsPoint(p Point) bool {
	// Points on the boundary between faces must be contained by the cells on
	// both sides, so the face is not checked directly. Points belonging to
	// one of the four adjacent faces project outside [-1,1]x[-1,1], and the
	// opposite face fails the sign test in faceXYZToUV.
	u, v, ok := faceXYZToUV(int(c.face), p)
	if !ok {
		return false
	}

	// Expand the (u,v) bound so that CellFromPoint(p).ContainsPoint(p) always
	// holds. The error of converting from (u,v) to (s,t) is at most dblEpsilon.
	return c.uv.ExpandedByMargin(dblEpsilon).ContainsPoint(r2.Point{X: u, Y: v})
}

// CapBound returns the bounding cap of this cell.
func (c Cell) CapBound() Cap {
	// The cell center in (u,v)-space is used as the cap axis. It is very close
	// to Center() and cheaper to compute. Neither yields the minimal bounding
	// cap but both are close.
	u := c.uv.X.Center()
	v := c.uv.Y.Center()
	cap := CapFromCenterHeight(Point{faceUVToXYZ(int(c.face), u, v).Normalize()}, 0)
	for k := 0; k < 4; k++ {
		cap = cap.AddPoint(c.Vertex(k))
	}
	return cap
}

// RectBound returns the bounding rectangle of this cell.
func (c Cell) RectBound() Rect {
	if c.level > 0 {
		// Except for cells at level 0, the latitude and longitude extremes are
		// attained at the vertices. The latitude range is determined by one
		// pair of diagonally opposite vertices and the longitude range by the
		// other pair.
		//
		// The corner (i,j) with the largest absolute latitude is the one with
		// the largest absolute z and the smallest absolute x and y. Whether to
		// minimize or maximize u and v follows from the axis direction and the
		// (u,v) quadrant of the cell.
		u := c.uv.X.Lo + c.uv.X.Hi
		v := c.uv.Y.Lo + c.uv.Y.Hi
		var i, j int
		if uAxis(int(c.face)).Z == 0 {
			if u < 0 {
				i = 1
			}
		} else if u > 0 {
			i = 1
		}
		if vAxis(int(c.face)).Z == 0 {
			if v < 0 {
				j = 1
			}
		} else if v > 0 {
			j = 1
		}
		lat := r1.IntervalFromPoint(c.latitude(i, j)).AddPoint(c.latitude(1-i, 1-j))
		lng := s1.EmptyInterval().AddPoint(c.longitude(i, 1-j)).AddPoint(c.longitude(1-i, j))

		// Normalizing a vector can change its direction by up to
		// 0.5*dblEpsilon, and rounding of the latitude and longitude adds at
		// most another 1.5*dblEpsilon. Growing both ranges by 2*dblEpsilon
		// makes the bound contain LatLngFromPoint(p) for every point p inside
		// the normalized vertices.
		return Rect{Lat: lat, Lng: lng}.expanded(LatLng{s1.Angle(2 * dblEpsilon), s1.Angle(2 * dblEpsilon)}).PolarClosure()
	}

	// The 4 cells around the equator extend to +/-45 degrees latitude at the
	// midpoints of their top and bottom edges. The two cells covering the
	// poles extend down to +/-35.26 degrees at their vertices. The maximum
	// error in this calculation is 0.5 * dblEpsilon.
	var bound Rect
	switch c.face {
	case 0:
		bound = Rect{r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}, s1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}}
	case 1:
		bound = Rect{r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}, s1.Interval{Lo: math.Pi / 4, Hi: 3 * math.Pi / 4}}
	case 2:
		bound = Rect{r1.Interval{Lo: poleMinLat, Hi: math.Pi / 2}, s1.FullInterval()}
	case 3:
		bound = Rect{r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}, s1.Interval{Lo: 3 * math.Pi / 4, Hi: -3 * math.Pi / 4}}
	case 4:
		bound = Rect{r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}, s1.Interval{Lo: -3 * math.Pi / 4, Hi: -math.Pi / 4}}
	default:
		bound = Rect{r1.Interval{Lo: -math.Pi / 2, Hi: -poleMinLat}, s1.FullInterval()}
	}

	// Expand the bound by the error of converting a contained point to a
	// LatLng. Longitude needs no margin since math.Atan2 is semi-monotonic.
	return bound.expanded(LatLng{s1.Angle(dblEpsilon), s1.Angle(0)})
}

// CellUnionBound returns the CellID of this cell.
func (c Cell) CellUnionBound() []CellID {
	return []CellID{c.id}
}

// latitude returns the latitude of the cell vertex in radians given by (i,j),
// where i and j indicate the Hi (1) or Lo (0) corner.
func (c Cell) latitude(i, j int) float64 {
	uv := c.uv.VertexIJ(i, j)
	return latitude(Point{faceUVToXYZ(int(c.face), uv.X, uv.Y)}).Radians()
}

// longitude returns the longitude of the cell vertex in radians given by (i,j),
// where i and j indicate the Hi (1) or Lo (0) corner.
func (c Cell) longitude(i, j int) float64 {
	uv := c.uv.VertexIJ(i, j)
	return longitude(Point{faceUVToXYZ(int(c.face), uv.X, uv.Y)}).Radians()
}
