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

// Vector is the capability set spatial algorithms are written against,
// independent of the concrete dimension. It is a self-referential
// constraint: Vec2[S] satisfies Vector[Vec2[S], S] and Vec3[S] satisfies
// Vector[Vec3[S], S].
//
// Splat and FromSlice are constructors hung off a prototype value, since
// Go interfaces cannot express static functions. Fold here reduces to the
// scalar type; the fully generic accumulator lives in Fold2 and Fold3.
type Vector[V any, S Scalars] interface {
	Splat(S) V
	Slice() []S
	FromSlice([]S) V

	Add(V) V
	Sub(V) V
	Mul(V) V
	Div(V) V
	AddScalar(S) V
	SubScalar(S) V
	MulScalar(S) V
	DivScalar(S) V

	Map(func(S) S) V
	ZipMap(V, func(S, S) S) V
	Fold(S, func(S, S) S) S
	MinElement() S
	MaxElement() S

	Lub(V) V
	Glb(V) V
}

var (
	_ Vector[Vec2[int32], int32]     = Vec2[int32]{}
	_ Vector[Vec2[uint32], uint32]   = Vec2[uint32]{}
	_ Vector[Vec2[float32], float32] = Vec2[float32]{}
	_ Vector[Vec3[int32], int32]     = Vec3[int32]{}
	_ Vector[Vec3[uint32], uint32]   = Vec3[uint32]{}
	_ Vector[Vec3[float32], float32] = Vec3[float32]{}
)

// Clamp limits every component of v to the range spanned by lo and hi.
func Clamp[V Vector[V, S], S Scalars](v, lo, hi V) V {
	return v.Lub(lo).Glb(hi)
}

// Clamp2 limits every component of v to [lo, hi].
func Clamp2[S Scalars](v, lo, hi Vec2[S]) Vec2[S] {
	return Clamp[Vec2[S], S](v, lo, hi)
}

// Clamp3 limits every component of v to [lo, hi].
func Clamp3[S Scalars](v, lo, hi Vec3[S]) Vec3[S] {
	return Clamp[Vec3[S], S](v, lo, hi)
}
