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

// Vec2 is a 2-component vector. Component order is fixed: X then Y.
// The exported fields are the mutable component access; all methods are
// pure and return new values.
type Vec2[S Scalars] struct {
	X, Y S
}

// V2 constructs a Vec2 from its components.
func V2[S Scalars](x, y S) Vec2[S] {
	return Vec2[S]{X: x, Y: y}
}

// Splat2 constructs a Vec2 with both components equal to s.
func Splat2[S Scalars](s S) Vec2[S] {
	return Vec2[S]{X: s, Y: s}
}

// Zero2 returns the additive identity vector.
func Zero2[S Scalars]() Vec2[S] {
	return Vec2[S]{}
}

// Ones2 returns the vector with every component equal to one.
func Ones2[S Scalars]() Vec2[S] {
	return Splat2(One[S]())
}

// MinVec2 returns the vector with every component equal to MinValue.
// It absorbs under Glb.
func MinVec2[S Scalars]() Vec2[S] {
	return Splat2(MinValue[S]())
}

// MaxVec2 returns the vector with every component equal to MaxValue.
// It absorbs under Lub.
func MaxVec2[S Scalars]() Vec2[S] {
	return Splat2(MaxValue[S]())
}

// Splat returns a Vec2 with both components equal to s.
// The receiver only carries the type; its value is ignored.
func (Vec2[S]) Splat(s S) Vec2[S] {
	return Splat2(s)
}

// Slice returns the components in order.
func (v Vec2[S]) Slice() []S {
	return []S{v.X, v.Y}
}

// FromSlice constructs a Vec2 from the first two elements of s.
// The receiver only carries the type; its value is ignored.
func (Vec2[S]) FromSlice(s []S) Vec2[S] {
	return Vec2[S]{X: s[0], Y: s[1]}
}

// Add performs component-wise addition.
func (v Vec2[S]) Add(o Vec2[S]) Vec2[S] {
	return Vec2[S]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub performs component-wise subtraction.
func (v Vec2[S]) Sub(o Vec2[S]) Vec2[S] {
	return Vec2[S]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul performs component-wise multiplication.
func (v Vec2[S]) Mul(o Vec2[S]) Vec2[S] {
	return Vec2[S]{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div performs component-wise division. Overflow, division by zero and NaN
// behave exactly as they do for the scalar kind.
func (v Vec2[S]) Div(o Vec2[S]) Vec2[S] {
	return Vec2[S]{X: v.X / o.X, Y: v.Y / o.Y}
}

// AddScalar adds s to every component.
func (v Vec2[S]) AddScalar(s S) Vec2[S] {
	return Vec2[S]{X: v.X + s, Y: v.Y + s}
}

// SubScalar subtracts s from every component.
func (v Vec2[S]) SubScalar(s S) Vec2[S] {
	return Vec2[S]{X: v.X - s, Y: v.Y - s}
}

// MulScalar multiplies every component by s.
func (v Vec2[S]) MulScalar(s S) Vec2[S] {
	return Vec2[S]{X: v.X * s, Y: v.Y * s}
}

// DivScalar divides every component by s.
func (v Vec2[S]) DivScalar(s S) Vec2[S] {
	return Vec2[S]{X: v.X / s, Y: v.Y / s}
}

// Map applies f to every component, preserving order.
func (v Vec2[S]) Map(f func(S) S) Vec2[S] {
	return Vec2[S]{X: f(v.X), Y: f(v.Y)}
}

// ZipMap applies f to corresponding component pairs of v and o.
func (v Vec2[S]) ZipMap(o Vec2[S], f func(S, S) S) Vec2[S] {
	return Vec2[S]{X: f(v.X, o.X), Y: f(v.Y, o.Y)}
}

// Fold reduces the components left to right: f(y, f(x, init)).
// For an accumulator of a different type, use Fold2.
func (v Vec2[S]) Fold(init S, f func(S, S) S) S {
	out := init
	out = f(v.X, out)
	out = f(v.Y, out)
	return out
}

// MinElement returns the smallest component value.
func (v Vec2[S]) MinElement() S {
	if v.Y < v.X {
		return v.Y
	}
	return v.X
}

// MaxElement returns the largest component value.
func (v Vec2[S]) MaxElement() S {
	if v.Y > v.X {
		return v.Y
	}
	return v.X
}

// Lub returns the component-wise maximum (least upper bound).
// It is total even when the lattice order cannot compare v and o.
func (v Vec2[S]) Lub(o Vec2[S]) Vec2[S] {
	return v.ZipMap(o, maxScalar[S])
}

// Glb returns the component-wise minimum (greatest lower bound).
// It is total even when the lattice order cannot compare v and o.
func (v Vec2[S]) Glb(o Vec2[S]) Vec2[S] {
	return v.ZipMap(o, minScalar[S])
}

// Fold2 reduces the components of v left to right into an accumulator of
// any type: f(y, f(x, init)).
func Fold2[S Scalars, T any](v Vec2[S], init T, f func(S, T) T) T {
	out := init
	out = f(v.X, out)
	out = f(v.Y, out)
	return out
}

// Abs2 replaces every component with its non-negative magnitude.
func Abs2[S Signeds](v Vec2[S]) Vec2[S] {
	return Vec2[S]{X: Abs(v.X), Y: Abs(v.Y)}
}

func minScalar[S Scalars](a, b S) S {
	if b < a {
		return b
	}
	return a
}

func maxScalar[S Scalars](a, b S) S {
	if b > a {
		return b
	}
	return a
}
