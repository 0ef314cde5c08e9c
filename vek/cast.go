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

// Casts between floating and integer vectors truncate toward zero per
// component, saturating to the target's MinValue/MaxValue out of range and
// mapping NaN to zero. Go's built-in conversion leaves out-of-range results
// implementation-defined, so the saturation is spelled out here.
//
// The canonical pairings are float32 vectors with int32 vectors and
// float64 vectors with int64 vectors (TruncVec2 and friends); CastInt2 and
// CastInt3 underneath accept any float/integer combination.

// CastInt2 truncates every component of v to I.
func CastInt2[F Floats, I Integers](v Vec2[F]) Vec2[I] {
	return Vec2[I]{X: castInt[F, I](v.X), Y: castInt[F, I](v.Y)}
}

// CastInt3 truncates every component of v to I.
func CastInt3[F Floats, I Integers](v Vec3[F]) Vec3[I] {
	return Vec3[I]{X: castInt[F, I](v.X), Y: castInt[F, I](v.Y), Z: castInt[F, I](v.Z)}
}

// TruncVec2 truncates a float32 vector to its integer counterpart.
func TruncVec2(v Vec2[float32]) Vec2[int32] {
	return CastInt2[float32, int32](v)
}

// TruncVec3 truncates a float32 vector to its integer counterpart.
func TruncVec3(v Vec3[float32]) Vec3[int32] {
	return CastInt3[float32, int32](v)
}

// TruncVec2f64 truncates a float64 vector to its integer counterpart.
func TruncVec2f64(v Vec2[float64]) Vec2[int64] {
	return CastInt2[float64, int64](v)
}

// TruncVec3f64 truncates a float64 vector to its integer counterpart.
func TruncVec3f64(v Vec3[float64]) Vec3[int64] {
	return CastInt3[float64, int64](v)
}

// castInt truncates a single component. The comparisons against the float
// images of the integer bounds are exact: the image of MaxValue rounds up
// to a power of two at the wide widths, and any float at or above it is
// out of range anyway.
func castInt[F Floats, I Integers](v F) I {
	f := float64(v)
	if math.IsNaN(f) {
		var zero I
		return zero
	}
	lo, hi := MinValue[I](), MaxValue[I]()
	if f <= float64(lo) {
		return lo
	}
	if f >= float64(hi) {
		return hi
	}
	return I(f)
}
