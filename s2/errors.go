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

import "github.com/pkg/errors"

// Sentinel errors returned by the checked entry points of this package.
// Returned errors wrap one of these with context; test with errors.Is.
var (
	// ErrInvalidArgument reports an orientation, position or child index
	// outside of [0, 4).
	ErrInvalidArgument = errors.New("s2: invalid argument")
	// ErrInvalidToken reports a cell id token that is empty, longer than 16
	// characters, or not hexadecimal.
	ErrInvalidToken = errors.New("s2: invalid cell id token")
	// ErrNotUnitLength reports a point that is not of unit length.
	ErrNotUnitLength = errors.New("s2: point is not unit length")
	// ErrDegenerateEdge reports an edge whose endpoints are equal.
	ErrDegenerateEdge = errors.New("s2: degenerate edge")
)

// checkUnit returns ErrNotUnitLength wrapped with name if p is not unit length.
func checkUnit(name string, p Point) error {
	if !p.IsUnit() {
		return errors.Wrapf(ErrNotUnitLength, "%s = %v", name, p)
	}
	return nil
}
