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

import "sort"

// PointIndex stores a collection of points with associated data, sorted by
// the leaf CellID of each point. It allows efficient retrieval of the points
// inside a Region.
type PointIndex struct {
	points []PointIndexEntry
}

// PointIndexEntry is one point stored in a PointIndex.
type PointIndexEntry struct {
	ID    CellID
	Point Point
	Data  any
}

// NewPointIndex creates a new PointIndex.
func NewPointIndex() *PointIndex {
	return &PointIndex{}
}

// Add adds a point and associated data to the index.
func (p *PointIndex) Add(pt Point, data any) {
	p.points = append(p.points, PointIndexEntry{
		ID:    CellIDFromPoint(pt),
		Point: pt,
		Data:  data,
	})

	// Maintain sorted order.
	last := len(p.points) - 1
	if last > 0 && p.points[last].ID < p.points[last-1].ID {
		sort.SliceStable(p.points, func(i, j int) bool {
			return p.points[i].ID < p.points[j].ID
		})
	}
}

// NumPoints returns the number of points in the index.
func (p *PointIndex) NumPoints() int {
	return len(p.points)
}

// Iterator returns a new iterator positioned at the beginning.
func (p *PointIndex) Iterator() *PointIndexIterator {
	return &PointIndexIterator{index: p, pos: 0}
}

// PointsInRegion returns the entries whose point is contained by r, in
// CellID order. Candidates come from the cell ranges of r.CellUnionBound()
// and are filtered with r.ContainsPoint, or with Cap.ContainsPoints when r
// is a Cap.
func (p *PointIndex) PointsInRegion(r Region) []PointIndexEntry {
	covering := r.CellUnionBound()
	sort.Slice(covering, func(i, j int) bool {
		return covering[i].RangeMin() < covering[j].RangeMin()
	})

	var candidates []PointIndexEntry
	var scanned CellID // highest leaf id already visited, 0 if none
	it := p.Iterator()
	for _, id := range covering {
		lo, hi := id.RangeMin(), id.RangeMax()
		if scanned != 0 && hi <= scanned {
			continue
		}
		if scanned != 0 && lo <= scanned {
			lo = scanned + 1
		}
		for it.Seek(lo); !it.Done() && it.CellID() <= hi; it.Next() {
			candidates = append(candidates, it.Entry())
		}
		scanned = hi
	}

	if c, ok := r.(Cap); ok {
		pts := make([]Point, len(candidates))
		for i, e := range candidates {
			pts[i] = e.Point
		}
		inside := c.ContainsPoints(pts)
		out := candidates[:0]
		for i, e := range candidates {
			if inside[i] {
				out = append(out, e)
			}
		}
		return out
	}

	out := candidates[:0]
	for _, e := range candidates {
		if r.ContainsPoint(e.Point) {
			out = append(out, e)
		}
	}
	return out
}

// ClosestPoint returns the entry whose point is nearest to target, which
// should be unit length. Ties go to the entry with the smaller CellID. ok is
// false if the index is empty.
func (p *PointIndex) ClosestPoint(target Point) (e PointIndexEntry, ok bool) {
	n := len(p.points)
	if n == 0 {
		return PointIndexEntry{}, false
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i, entry := range p.points {
		xs[i], ys[i], zs[i] = entry.Point.X, entry.Point.Y, entry.Point.Z
	}
	dots := make([]float64, n)
	BaseDotBatch(target.X, target.Y, target.Z, xs, ys, zs, dots)

	best := 0
	for i, d := range dots {
		if d > dots[best] {
			best = i
		}
	}
	return p.points[best], true
}

// PointIndexIterator iterates over the points in the index.
type PointIndexIterator struct {
	index *PointIndex
	pos   int
}

// Next advances the iterator.
func (it *PointIndexIterator) Next() {
	it.pos++
}

// Prev moves the iterator back. It returns false if the iterator was
// already at the first point.
func (it *PointIndexIterator) Prev() bool {
	if it.pos > 0 {
		it.pos--
		return true
	}
	return false
}

// Done returns true if the iterator is positioned past the end.
func (it *PointIndexIterator) Done() bool {
	return it.pos >= len(it.index.points)
}

// CellID returns the CellID of the current point, or SentinelCellID once
// the iterator is done.
func (it *PointIndexIterator) CellID() CellID {
	if it.Done() {
		return SentinelCellID
	}
	return it.index.points[it.pos].ID
}

// Point returns the current point.
func (it *PointIndexIterator) Point() Point {
	return it.index.points[it.pos].Point
}

// Data returns the data associated with the current point.
func (it *PointIndexIterator) Data() any {
	return it.index.points[it.pos].Data
}

// Entry returns the current entry.
func (it *PointIndexIterator) Entry() PointIndexEntry {
	return it.index.points[it.pos]
}

// Index returns the current index in the internal slice.
func (it *PointIndexIterator) Index() int {
	return it.pos
}

// Seek positions the iterator at the first point with CellID >= id.
func (it *PointIndexIterator) Seek(id CellID) {
	it.pos = sort.Search(len(it.index.points), func(i int) bool {
		return it.index.points[i].ID >= id
	})
}
