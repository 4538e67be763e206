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
	"sync"

	"github.com/pkg/errors"
)

// Hilbert curve orientation bits. An orientation is a combination of the two.
const (
	swapMask   = 0x01
	invertMask = 0x02

	// lookupBits is the number of bits of i and j handled per table lookup.
	lookupBits = 4
)

// ijToPos maps from cell orientation and (i,j)-index to the Hilbert curve
// position of the subcell within its parent.
var ijToPos = [4][4]int{
	{0, 1, 3, 2}, // canonical order
	{0, 3, 1, 2}, // axes swapped
	{2, 3, 1, 0}, // bits inverted
	{2, 1, 3, 0}, // swapped & inverted
}

// posToIJ maps from cell orientation and Hilbert curve position to the
// (i,j)-index of the subcell. The index is (i << 1) + j.
var posToIJ = [4][4]int{
	{0, 1, 3, 2}, // canonical order:    (0,0), (0,1), (1,1), (1,0)
	{0, 2, 3, 1}, // axes swapped:       (0,0), (1,0), (1,1), (0,1)
	{3, 2, 0, 1}, // bits inverted:      (1,1), (1,0), (0,0), (0,1)
	{3, 1, 0, 2}, // swapped & inverted: (1,1), (0,1), (0,0), (1,0)
}

// posToOrientation is XORed with a cell's orientation to get the orientation
// of the child at each Hilbert curve position.
var posToOrientation = [4]int{swapMask, 0, 0, invertMask | swapMask}

// lookupTables holds the two tables used to convert between (i,j) and Hilbert
// curve positions lookupBits at a time. Entries carry the 2-bit orientation in
// their low bits.
type lookupTables struct {
	// pos is indexed by (i, j, orientation) and yields (pos, orientation).
	pos [1 << (2*lookupBits + 2)]uint64
	// ij is indexed by (pos, orientation) and yields (i, j, orientation).
	ij [1 << (2*lookupBits + 2)]uint64
}

// hilbertTables builds the tables on first use. Callers read them through
// lookupPos and lookupIJ only.
var hilbertTables = sync.OnceValue(buildLookupTables)

// lookupPos maps an "iiiijjjjoo" key to its "ppppppppoo" value.
func lookupPos(key int) uint64 { return hilbertTables().pos[key] }

// lookupIJ maps a "ppppppppoo" key to its "iiiijjjjoo" value.
func lookupIJ(key int) uint64 { return hilbertTables().ij[key] }

// buildLookupTables fills both tables by walking the Hilbert curve from the
// four starting orientations.
func buildLookupTables() *lookupTables {
	t := new(lookupTables)
	for _, o := range [4]int{0, swapMask, invertMask, swapMask | invertMask} {
		t.initLookupCell(0, 0, 0, o, 0, o)
	}
	return t
}

// initLookupCell records the subcell at the given level and recurses into
// its four children until lookupBits levels have been descended.
func (t *lookupTables) initLookupCell(level, i, j, origOrientation, pos, orientation int) {
	if level == lookupBits {
		ij := (i << lookupBits) + j
		t.pos[(ij<<2)+origOrientation] = uint64(pos<<2 + orientation)
		t.ij[(pos<<2)+origOrientation] = uint64(ij<<2 + orientation)
		return
	}

	level++
	i <<= 1
	j <<= 1
	pos <<= 2
	r := posToIJ[orientation]
	for k := 0; k < 4; k++ {
		t.initLookupCell(level, i+(r[k]>>1), j+(r[k]&1), origOrientation, pos+k, orientation^posToOrientation[k])
	}
}

// PosToIJ returns the (i,j)-index, as (i << 1) + j, of the child at Hilbert
// curve position pos within a cell of the given orientation.
func PosToIJ(orientation, pos int) (int, error) {
	if orientation < 0 || orientation > 3 {
		return 0, errors.Wrapf(ErrInvalidArgument, "orientation %d", orientation)
	}
	if pos < 0 || pos > 3 {
		return 0, errors.Wrapf(ErrInvalidArgument, "position %d", pos)
	}
	return posToIJ[orientation][pos], nil
}

// IJToPos returns the Hilbert curve position of the child with (i,j)-index
// ij, as (i << 1) + j, within a cell of the given orientation.
func IJToPos(orientation, ij int) (int, error) {
	if orientation < 0 || orientation > 3 {
		return 0, errors.Wrapf(ErrInvalidArgument, "orientation %d", orientation)
	}
	if ij < 0 || ij > 3 {
		return 0, errors.Wrapf(ErrInvalidArgument, "ij index %d", ij)
	}
	return ijToPos[orientation][ij], nil
}
