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

// BaseMinMax returns the smallest and largest values of data, or (0, 0) if
// data is empty.
func BaseMinMax[T hwy.Floats](data []T) (lo, hi T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seeding with data[0] keeps padding lanes out of the result.
	vLo := hwy.Set(data[0])
	vHi := hwy.Set(data[0])

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vLo = hwy.Min(vLo, v)
			vHi = hwy.Max(vHi, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])
			vLo = hwy.Min(vLo, hwy.IfThenElse(mask, v, vLo))
			vHi = hwy.Max(vHi, hwy.IfThenElse(mask, v, vHi))
		},
	)

	return hwy.ReduceMin(vLo), hwy.ReduceMax(vHi)
}

// BaseCoordSums returns the component-wise sum of a set of vectors given
// in SoA layout.
func BaseCoordSums[T hwy.Floats](xs, ys, zs []T) (sx, sy, sz T) {
	size := min(len(xs), len(ys), len(zs))

	vx := hwy.Zero[T]()
	vy := hwy.Zero[T]()
	vz := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx = hwy.Add(vx, hwy.Load(xs[offset:]))
			vy = hwy.Add(vy, hwy.Load(ys[offset:]))
			vz = hwy.Add(vz, hwy.Load(zs[offset:]))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx = hwy.Add(vx, hwy.MaskLoad(mask, xs[offset:]))
			vy = hwy.Add(vy, hwy.MaskLoad(mask, ys[offset:]))
			vz = hwy.Add(vz, hwy.MaskLoad(mask, zs[offset:]))
		},
	)

	return hwy.ReduceSum(vx), hwy.ReduceSum(vy), hwy.ReduceSum(vz)
}
