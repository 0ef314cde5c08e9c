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

// This file provides component-wise bitwise logic for integer vectors,
// against another vector or a broadcast scalar.

// And2 performs component-wise AND.
func And2[S Integers](a, b Vec2[S]) Vec2[S] {
	return Vec2[S]{X: a.X & b.X, Y: a.Y & b.Y}
}

// Or2 performs component-wise OR.
func Or2[S Integers](a, b Vec2[S]) Vec2[S] {
	return Vec2[S]{X: a.X | b.X, Y: a.Y | b.Y}
}

// Xor2 performs component-wise XOR.
func Xor2[S Integers](a, b Vec2[S]) Vec2[S] {
	return Vec2[S]{X: a.X ^ b.X, Y: a.Y ^ b.Y}
}

// Not2 performs component-wise bitwise complement.
func Not2[S Integers](v Vec2[S]) Vec2[S] {
	return Vec2[S]{X: ^v.X, Y: ^v.Y}
}

// AndScalar2 ANDs every component with s.
func AndScalar2[S Integers](v Vec2[S], s S) Vec2[S] {
	return Vec2[S]{X: v.X & s, Y: v.Y & s}
}

// OrScalar2 ORs every component with s.
func OrScalar2[S Integers](v Vec2[S], s S) Vec2[S] {
	return Vec2[S]{X: v.X | s, Y: v.Y | s}
}

// XorScalar2 XORs every component with s.
func XorScalar2[S Integers](v Vec2[S], s S) Vec2[S] {
	return Vec2[S]{X: v.X ^ s, Y: v.Y ^ s}
}

// And3 performs component-wise AND.
func And3[S Integers](a, b Vec3[S]) Vec3[S] {
	return Vec3[S]{X: a.X & b.X, Y: a.Y & b.Y, Z: a.Z & b.Z}
}

// Or3 performs component-wise OR.
func Or3[S Integers](a, b Vec3[S]) Vec3[S] {
	return Vec3[S]{X: a.X | b.X, Y: a.Y | b.Y, Z: a.Z | b.Z}
}

// Xor3 performs component-wise XOR.
func Xor3[S Integers](a, b Vec3[S]) Vec3[S] {
	return Vec3[S]{X: a.X ^ b.X, Y: a.Y ^ b.Y, Z: a.Z ^ b.Z}
}

// Not3 performs component-wise bitwise complement.
func Not3[S Integers](v Vec3[S]) Vec3[S] {
	return Vec3[S]{X: ^v.X, Y: ^v.Y, Z: ^v.Z}
}

// AndScalar3 ANDs every component with s.
func AndScalar3[S Integers](v Vec3[S], s S) Vec3[S] {
	return Vec3[S]{X: v.X & s, Y: v.Y & s, Z: v.Z & s}
}

// OrScalar3 ORs every component with s.
func OrScalar3[S Integers](v Vec3[S], s S) Vec3[S] {
	return Vec3[S]{X: v.X | s, Y: v.Y | s, Z: v.Z | s}
}

// XorScalar3 XORs every component with s.
func XorScalar3[S Integers](v Vec3[S], s S) Vec3[S] {
	return Vec3[S]{X: v.X ^ s, Y: v.Y ^ s, Z: v.Z ^ s}
}
