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

// Vec3 is a 3-component vector. Component order is fixed: X, Y, then Z.
// The exported fields are the mutable component access; all methods are
// pure and return new values.
type Vec3[S Scalars] struct {
	X, Y, Z S
}

// V3 constructs a Vec3 from its components.
func V3[S Scalars](x, y, z S) Vec3[S] {
	return Vec3[S]{X: x, Y: y, Z: z}
}

// Splat3 constructs a Vec3 with all components equal to s.
func Splat3[S Scalars](s S) Vec3[S] {
	return Vec3[S]{X: s, Y: s, Z: s}
}

// Zero3 returns the additive identity vector.
func Zero3[S Scalars]() Vec3[S] {
	return Vec3[S]{}
}

// Ones3 returns the vector with every component equal to one.
func Ones3[S Scalars]() Vec3[S] {
	return Splat3(One[S]())
}

// MinVec3 returns the vector with every component equal to MinValue.
// It absorbs under Glb.
func MinVec3[S Scalars]() Vec3[S] {
	return Splat3(MinValue[S]())
}

// MaxVec3 returns the vector with every component equal to MaxValue.
// It absorbs under Lub.
func MaxVec3[S Scalars]() Vec3[S] {
	return Splat3(MaxValue[S]())
}

// Splat returns a Vec3 with all components equal to s.
// The receiver only carries the type; its value is ignored.
func (Vec3[S]) Splat(s S) Vec3[S] {
	return Splat3(s)
}

// Slice returns the components in order.
func (v Vec3[S]) Slice() []S {
	return []S{v.X, v.Y, v.Z}
}

// FromSlice constructs a Vec3 from the first three elements of s.
// The receiver only carries the type; its value is ignored.
func (Vec3[S]) FromSlice(s []S) Vec3[S] {
	return Vec3[S]{X: s[0], Y: s[1], Z: s[2]}
}

// Add performs component-wise addition.
func (v Vec3[S]) Add(o Vec3[S]) Vec3[S] {
	return Vec3[S]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub performs component-wise subtraction.
func (v Vec3[S]) Sub(o Vec3[S]) Vec3[S] {
	return Vec3[S]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul performs component-wise multiplication.
func (v Vec3[S]) Mul(o Vec3[S]) Vec3[S] {
	return Vec3[S]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Div performs component-wise division. Overflow, division by zero and NaN
// behave exactly as they do for the scalar kind.
func (v Vec3[S]) Div(o Vec3[S]) Vec3[S] {
	return Vec3[S]{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z}
}

// AddScalar adds s to every component.
func (v Vec3[S]) AddScalar(s S) Vec3[S] {
	return Vec3[S]{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// SubScalar subtracts s from every component.
func (v Vec3[S]) SubScalar(s S) Vec3[S] {
	return Vec3[S]{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// MulScalar multiplies every component by s.
func (v Vec3[S]) MulScalar(s S) Vec3[S] {
	return Vec3[S]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivScalar divides every component by s.
func (v Vec3[S]) DivScalar(s S) Vec3[S] {
	return Vec3[S]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Map applies f to every component, preserving order.
func (v Vec3[S]) Map(f func(S) S) Vec3[S] {
	return Vec3[S]{X: f(v.X), Y: f(v.Y), Z: f(v.Z)}
}

// ZipMap applies f to corresponding component pairs of v and o.
func (v Vec3[S]) ZipMap(o Vec3[S], f func(S, S) S) Vec3[S] {
	return Vec3[S]{X: f(v.X, o.X), Y: f(v.Y, o.Y), Z: f(v.Z, o.Z)}
}

// Fold reduces the components left to right: f(z, f(y, f(x, init))).
// For an accumulator of a different type, use Fold3.
func (v Vec3[S]) Fold(init S, f func(S, S) S) S {
	out := init
	out = f(v.X, out)
	out = f(v.Y, out)
	out = f(v.Z, out)
	return out
}

// MinElement returns the smallest component value.
func (v Vec3[S]) MinElement() S {
	return minScalar(minScalar(v.X, v.Y), v.Z)
}

// MaxElement returns the largest component value.
func (v Vec3[S]) MaxElement() S {
	return maxScalar(maxScalar(v.X, v.Y), v.Z)
}

// Lub returns the component-wise maximum (least upper bound).
// It is total even when the lattice order cannot compare v and o.
func (v Vec3[S]) Lub(o Vec3[S]) Vec3[S] {
	return v.ZipMap(o, maxScalar[S])
}

// Glb returns the component-wise minimum (greatest lower bound).
// It is total even when the lattice order cannot compare v and o.
func (v Vec3[S]) Glb(o Vec3[S]) Vec3[S] {
	return v.ZipMap(o, minScalar[S])
}

// Fold3 reduces the components of v left to right into an accumulator of
// any type: f(z, f(y, f(x, init))).
func Fold3[S Scalars, T any](v Vec3[S], init T, f func(S, T) T) T {
	out := init
	out = f(v.X, out)
	out = f(v.Y, out)
	out = f(v.Z, out)
	return out
}

// Abs3 replaces every component with its non-negative magnitude.
func Abs3[S Signeds](v Vec3[S]) Vec3[S] {
	return Vec3[S]{X: Abs(v.X), Y: Abs(v.Y), Z: Abs(v.Z)}
}
