// Package vek provides small fixed-dimension numeric vectors (2 and 3
// components) and the capability surface spatial algorithms are written
// against: component-wise arithmetic, lattice partial ordering for
// bounding-box algebra, bitwise and shift extensions for integer vectors,
// and truncating float-to-integer casts.
//
// The concrete types are plain value types; every operation is pure and
// returns a new vector. Algorithms that do not care about the concrete
// dimension are written once against the Vector constraint:
//
//	import "github.com/voxelmath/blockmath/vek"
//
//	a := vek.V2[int32](1, 2)
//	b := vek.Splat2[int32](3)
//	c := a.Add(b).Lub(vek.Zero2[int32]())
//
// Operations that only make sense for a subset of scalar kinds (bitwise
// logic, shifts, absolute value, casts) are package-level generic functions
// whose constraints exclude the rest at compile time.
package vek

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point component types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer component types.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer component types.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer component types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Signeds is a constraint for component types that carry a sign,
// i.e. the types Abs is defined for.
type Signeds interface {
	SignedInts | Floats
}

// Scalars is a constraint for all supported component types.
type Scalars interface {
	Integers | Floats
}
