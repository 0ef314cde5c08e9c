// Copyright 2026 blockmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vek

import "math"

// Floor2 rounds every component down to the nearest integer value.
func Floor2[F Floats](v Vec2[F]) Vec2[F] {
	return v.Map(floorScalar[F])
}

// Ceil2 rounds every component up to the nearest integer value.
func Ceil2[F Floats](v Vec2[F]) Vec2[F] {
	return v.Map(ceilScalar[F])
}

// Floor3 rounds every component down to the nearest integer value.
func Floor3[F Floats](v Vec3[F]) Vec3[F] {
	return v.Map(floorScalar[F])
}

// Ceil3 rounds every component up to the nearest integer value.
func Ceil3[F Floats](v Vec3[F]) Vec3[F] {
	return v.Map(ceilScalar[F])
}

func floorScalar[F Floats](v F) F {
	return F(math.Floor(float64(v)))
}

func ceilScalar[F Floats](v F) F {
	return F(math.Ceil(float64(v)))
}
