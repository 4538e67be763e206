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

// BaseDotBatch computes the dot product of the target (tx, ty, tz) with each
// vector of a set (SoA layout):
//
//	dst[i] = tx*xs[i] + ty*ys[i] + tz*zs[i]
//
// For unit vectors the largest product marks the point closest to the target.
func BaseDotBatch[T hwy.Floats](
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
			d := hwy.Mul(vTx, hwy.Load(xs[offset:]))
			d = hwy.FMA(vTy, hwy.Load(ys[offset:]), d)
			d = hwy.FMA(vTz, hwy.Load(zs[offset:]), d)
			hwy.Store(d, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			d := hwy.Mul(vTx, hwy.MaskLoad(mask, xs[offset:]))
			d = hwy.FMA(vTy, hwy.MaskLoad(mask, ys[offset:]), d)
			d = hwy.FMA(vTz, hwy.MaskLoad(mask, zs[offset:]), d)
			hwy.MaskStore(mask, d, dst[offset:])
		},
	)
}
