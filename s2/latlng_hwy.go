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
	"github.com/ajroetker/go-highway/hwy/contrib/algo"
)

// BasePointsFromLatLngsBatch converts latitudes and longitudes in radians
// (de-interleaved) into the coordinates of the corresponding unit vectors:
//
//	x = cos(lat) * cos(lng)
//	y = cos(lat) * sin(lng)
//	z = sin(lat)
func BasePointsFromLatLngsBatch(lats, lngs, xs, ys, zs []float64) {
	size := min(len(lats), len(lngs), len(xs), len(ys), len(zs))
	lats, lngs = lats[:size], lngs[:size]

	// z receives sin(lat) directly.
	cosLat := make([]float64, size)
	sinLng := make([]float64, size)
	cosLng := make([]float64, size)

	algo.SinTransform64(lats, zs[:size])
	algo.CosTransform64(lats, cosLat)
	algo.SinTransform64(lngs, sinLng)
	algo.CosTransform64(lngs, cosLng)

	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			vCosLat := hwy.Load(cosLat[offset:])
			vCosLng := hwy.Load(cosLng[offset:])
			vSinLng := hwy.Load(sinLng[offset:])

			hwy.Store(hwy.Mul(vCosLat, vCosLng), xs[offset:])
			hwy.Store(hwy.Mul(vCosLat, vSinLng), ys[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			vCosLat := hwy.MaskLoad(mask, cosLat[offset:])
			vCosLng := hwy.MaskLoad(mask, cosLng[offset:])
			vSinLng := hwy.MaskLoad(mask, sinLng[offset:])

			hwy.MaskStore(mask, hwy.Mul(vCosLat, vCosLng), xs[offset:])
			hwy.MaskStore(mask, hwy.Mul(vCosLat, vSinLng), ys[offset:])
		},
	)
}
