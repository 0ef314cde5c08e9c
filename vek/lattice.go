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

// The lattice wrappers impose a component-wise partial order on vectors,
// distinct from any lexicographic order a caller might otherwise use.
// a < b holds only when every component of a is strictly less than the
// corresponding component of b, which is what bounding-box containment
// needs. Two vectors can be incomparable; that is an Ordering value, not
// an error.
//
// Equality handling differs by scalar kind: integer lattice vectors
// compare Equal when all components match, floating ones report
// Incomparable even then. Callers depending on bounding-box semantics
// rely on both behaviors; see the package tests.

// Ordering is the result of a lattice comparison.
type Ordering int

const (
	// Incomparable means neither vector bounds the other.
	Incomparable Ordering = iota
	// Less means every component of the left vector is strictly smaller.
	Less
	// Equal means all components are equal (integer kinds only).
	Equal
	// Greater means every component of the left vector is strictly larger.
	Greater
)

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Incomparable"
}

// LatticeVec2 is a Vec2 carrying lattice-order comparison semantics.
type LatticeVec2[S Scalars] struct {
	Vec Vec2[S]
}

// WithLatticeOrd wraps v for lattice-order comparison.
func (v Vec2[S]) WithLatticeOrd() LatticeVec2[S] {
	return LatticeVec2[S]{Vec: v}
}

// Lt reports whether every component of a is strictly less than b's.
func (a LatticeVec2[S]) Lt(b LatticeVec2[S]) bool {
	return a.Vec.X < b.Vec.X && a.Vec.Y < b.Vec.Y
}

// Gt reports whether every component of a is strictly greater than b's.
func (a LatticeVec2[S]) Gt(b LatticeVec2[S]) bool {
	return a.Vec.X > b.Vec.X && a.Vec.Y > b.Vec.Y
}

// Le reports whether every component of a is at most b's.
func (a LatticeVec2[S]) Le(b LatticeVec2[S]) bool {
	return a.Vec.X <= b.Vec.X && a.Vec.Y <= b.Vec.Y
}

// Ge reports whether every component of a is at least b's.
func (a LatticeVec2[S]) Ge(b LatticeVec2[S]) bool {
	return a.Vec.X >= b.Vec.X && a.Vec.Y >= b.Vec.Y
}

// PartialCmp compares a and b in the lattice order. Integer vectors with
// all components equal compare Equal; floating vectors are Incomparable
// whenever neither strict relation holds, equal components included.
func (a LatticeVec2[S]) PartialCmp(b LatticeVec2[S]) Ordering {
	switch {
	case a.Lt(b):
		return Less
	case a.Gt(b):
		return Greater
	case !isFloat[S]() && a.Vec == b.Vec:
		return Equal
	}
	return Incomparable
}

// LatticeVec3 is a Vec3 carrying lattice-order comparison semantics.
type LatticeVec3[S Scalars] struct {
	Vec Vec3[S]
}

// WithLatticeOrd wraps v for lattice-order comparison.
func (v Vec3[S]) WithLatticeOrd() LatticeVec3[S] {
	return LatticeVec3[S]{Vec: v}
}

// Lt reports whether every component of a is strictly less than b's.
func (a LatticeVec3[S]) Lt(b LatticeVec3[S]) bool {
	return a.Vec.X < b.Vec.X && a.Vec.Y < b.Vec.Y && a.Vec.Z < b.Vec.Z
}

// Gt reports whether every component of a is strictly greater than b's.
func (a LatticeVec3[S]) Gt(b LatticeVec3[S]) bool {
	return a.Vec.X > b.Vec.X && a.Vec.Y > b.Vec.Y && a.Vec.Z > b.Vec.Z
}

// Le reports whether every component of a is at most b's.
func (a LatticeVec3[S]) Le(b LatticeVec3[S]) bool {
	return a.Vec.X <= b.Vec.X && a.Vec.Y <= b.Vec.Y && a.Vec.Z <= b.Vec.Z
}

// Ge reports whether every component of a is at least b's.
func (a LatticeVec3[S]) Ge(b LatticeVec3[S]) bool {
	return a.Vec.X >= b.Vec.X && a.Vec.Y >= b.Vec.Y && a.Vec.Z >= b.Vec.Z
}

// PartialCmp compares a and b in the lattice order. Integer vectors with
// all components equal compare Equal; floating vectors are Incomparable
// whenever neither strict relation holds, equal components included.
func (a LatticeVec3[S]) PartialCmp(b LatticeVec3[S]) Ordering {
	switch {
	case a.Lt(b):
		return Less
	case a.Gt(b):
		return Greater
	case !isFloat[S]() && a.Vec == b.Vec:
		return Equal
	}
	return Incomparable
}
