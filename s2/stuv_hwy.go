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

// BaseSTtoUVBatch applies stToUV to every element of s, writing to u.
//
//	u = (1/3) * (4s² - 1)       if s >= 0.5
//	u = (1/3) * (1 - 4(1-s)²)   if s < 0.5
//
// Both branches are 1/3 * (4t² - 1) with t = max(s, 1-s), negated for s < 0.5.
func BaseSTtoUVBatch[T hwy.Floats](s, u []T) {
	size := min(len(s), len(u))

	vHalf := hwy.Set(T(0.5))
	vOne := hwy.Set(T(1.0))
	vFour := hwy.Set(T(4.0))
	vThird := hwy.Set(T(1.0 / 3.0))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			val := hwy.Load(s[offset:])

			geHalf := hwy.GreaterEqual(val, vHalf)
			t := hwy.IfThenElse(geHalf, val, hwy.Sub(vOne, val))
			term := hwy.FMA(vFour, hwy.Mul(t, t), hwy.Neg(vOne))
			res := hwy.Mul(vThird, term)
			res = hwy.IfThenElse(geHalf, res, hwy.Neg(res))

			hwy.Store(res, u[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			val := hwy.MaskLoad(mask, s[offset:])

			geHalf := hwy.GreaterEqual(val, vHalf)
			t := hwy.IfThenElse(geHalf, val, hwy.Sub(vOne, val))
			term := hwy.FMA(vFour, hwy.Mul(t, t), hwy.Neg(vOne))
			res := hwy.Mul(vThird, term)
			res = hwy.IfThenElse(geHalf, res, hwy.Neg(res))

			hwy.MaskStore(mask, res, u[offset:])
		},
	)
}
