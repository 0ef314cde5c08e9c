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

// This file provides the shift contract for integer vectors. The amount
// operand may be a broadcast scalar of any integer width (including the
// vector's own scalar type) or a vector of per-component amounts; for
// signed vectors the canonical per-component form uses the unsigned
// counterpart type, which rules out negative amounts at the type level.
// Per component the shifts are Go's native ones: arithmetic right shift
// for signed scalars, logical for unsigned. Negative amounts panic, as
// they do for scalar shifts.

// ShlScalar2 shifts every component left by n.
func ShlScalar2[S Integers, A Integers](v Vec2[S], n A) Vec2[S] {
	return Vec2[S]{X: v.X << n, Y: v.Y << n}
}

// ShrScalar2 shifts every component right by n.
func ShrScalar2[S Integers, A Integers](v Vec2[S], n A) Vec2[S] {
	return Vec2[S]{X: v.X >> n, Y: v.Y >> n}
}

// Shl2 shifts each component of v left by the corresponding component
// of amt.
func Shl2[S Integers, A Integers](v Vec2[S], amt Vec2[A]) Vec2[S] {
	return Vec2[S]{X: v.X << amt.X, Y: v.Y << amt.Y}
}

// Shr2 shifts each component of v right by the corresponding component
// of amt.
func Shr2[S Integers, A Integers](v Vec2[S], amt Vec2[A]) Vec2[S] {
	return Vec2[S]{X: v.X >> amt.X, Y: v.Y >> amt.Y}
}

// ShlScalar3 shifts every component left by n.
func ShlScalar3[S Integers, A Integers](v Vec3[S], n A) Vec3[S] {
	return Vec3[S]{X: v.X << n, Y: v.Y << n, Z: v.Z << n}
}

// ShrScalar3 shifts every component right by n.
func ShrScalar3[S Integers, A Integers](v Vec3[S], n A) Vec3[S] {
	return Vec3[S]{X: v.X >> n, Y: v.Y >> n, Z: v.Z >> n}
}

// Shl3 shifts each component of v left by the corresponding component
// of amt.
func Shl3[S Integers, A Integers](v Vec3[S], amt Vec3[A]) Vec3[S] {
	return Vec3[S]{X: v.X << amt.X, Y: v.Y << amt.Y, Z: v.Z << amt.Z}
}

// Shr3 shifts each component of v right by the corresponding component
// of amt.
func Shr3[S Integers, A Integers](v Vec3[S], amt Vec3[A]) Vec3[S] {
	return Vec3[S]{X: v.X >> amt.X, Y: v.Y >> amt.Y, Z: v.Z >> amt.Z}
}

// ShiftAmounts2 reinterprets a signed vector as per-component shift
// amounts of its unsigned counterpart type. Negative components are the
// caller's contract violation and map to huge amounts.
func ShiftAmounts2[S SignedInts, U UnsignedInts](v Vec2[S]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

// ShiftAmounts3 reinterprets a signed vector as per-component shift
// amounts of its unsigned counterpart type. Negative components are the
// caller's contract violation and map to huge amounts.
func ShiftAmounts3[S SignedInts, U UnsignedInts](v Vec3[S]) Vec3[U] {
	return Vec3[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}
