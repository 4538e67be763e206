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

/*
Package s2 is a library for working with geometry in S² (spherical geometry).

The sphere is projected onto the six faces of a cube, and each face is
recursively subdivided into four cells along a Hilbert curve. A CellID names
one of these cells with a 64-bit integer whose numeric order follows the curve,
so nearby points usually get nearby ids. Cell gives the geometry of a cell.
Cap and Rect are simple regions that can be tested against cells, and
PointIndex finds the indexed points inside any Region.
*/
package s2
