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

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseChordDistance2Batch computes the squared Euclidean distance from a
// target point to each point of a set (SoA layout):
//
//	dst[i] = (xs[i]-tx)² + (ys[i]-ty)² + (zs[i]-tz)²
//
// For unit vectors this is the squared chord length, which a Cap compares
// against twice its height.
func BaseChordDistance2Batch[T hwy.Floats](
	tx, ty, tz T,
	xs, ys, zs []T,
	dst []T,
) {
	size := min(len(xs), len(ys), len(zs), len(dst))

	vTx := hwy.Set(tx)
	vTy := hwy.Set(ty)
	vTz := hwy.Set(tz)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			dx := hwy.Sub(hwy.Load(xs[offset:]), vTx)
			dy := hwy.Sub(hwy.Load(ys[offset:]), vTy)
			dz := hwy.Sub(hwy.Load(zs[offset:]), vTz)

			d2 := hwy.Add(hwy.Add(hwy.Mul(dx, dx), hwy.Mul(dy, dy)), hwy.Mul(dz, dz))
			hwy.Store(d2, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			dx := hwy.Sub(hwy.MaskLoad(mask, xs[offset:]), vTx)
			dy := hwy.Sub(hwy.MaskLoad(mask, ys[offset:]), vTy)
			dz := hwy.Sub(hwy.MaskLoad(mask, zs[offset:]), vTz)

			d2 := hwy.Add(hwy.Add(hwy.Mul(dx, dx), hwy.Mul(dy, dy)), hwy.Mul(dz, dz))
			hwy.MaskStore(mask, d2, dst[offset:])
		},
	)
}
