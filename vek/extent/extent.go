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

// Package extent provides axis-aligned bounding boxes built on the vek
// lattice algebra: union is the least upper bound of the extrema,
// intersection the greatest lower bound, and containment the lattice Le
// relation. Boxes are closed on both ends.
package extent

import "github.com/voxelmath/blockmath/vek"

// Extent2 is a closed axis-aligned box [Min, Max] in two dimensions.
// An extent with any Min component greater than the corresponding Max
// component is empty.
type Extent2[S vek.Scalars] struct {
	Min, Max vek.Vec2[S]
}

// New2 constructs the extent spanning min and max.
func New2[S vek.Scalars](min, max vek.Vec2[S]) Extent2[S] {
	return Extent2[S]{Min: min, Max: max}
}

// Bounding2 returns the smallest extent containing both points, whichever
// way around they are given.
func Bounding2[S vek.Scalars](a, b vek.Vec2[S]) Extent2[S] {
	return Extent2[S]{Min: a.Glb(b), Max: a.Lub(b)}
}

// IsEmpty reports whether the extent contains no points.
func (e Extent2[S]) IsEmpty() bool {
	return !e.Min.WithLatticeOrd().Le(e.Max.WithLatticeOrd())
}

// Shape returns the component-wise extent size, Max - Min.
func (e Extent2[S]) Shape() vek.Vec2[S] {
	return e.Max.Sub(e.Min)
}

// Union returns the smallest extent containing both e and o.
func (e Extent2[S]) Union(o Extent2[S]) Extent2[S] {
	return Extent2[S]{Min: e.Min.Glb(o.Min), Max: e.Max.Lub(o.Max)}
}

// Intersection returns the largest extent contained in both e and o.
// The result is empty when e and o do not overlap.
func (e Extent2[S]) Intersection(o Extent2[S]) Extent2[S] {
	return Extent2[S]{Min: e.Min.Lub(o.Min), Max: e.Max.Glb(o.Max)}
}

// ContainsPoint reports whether p lies inside e.
func (e Extent2[S]) ContainsPoint(p vek.Vec2[S]) bool {
	lp := p.WithLatticeOrd()
	return e.Min.WithLatticeOrd().Le(lp) && lp.Le(e.Max.WithLatticeOrd())
}

// ContainsExtent reports whether o lies entirely inside e.
func (e Extent2[S]) ContainsExtent(o Extent2[S]) bool {
	return e.Min.WithLatticeOrd().Le(o.Min.WithLatticeOrd()) &&
		o.Max.WithLatticeOrd().Le(e.Max.WithLatticeOrd())
}

// Intersects reports whether e and o share at least one point.
func (e Extent2[S]) Intersects(o Extent2[S]) bool {
	return !e.Intersection(o).IsEmpty()
}

// Extent3 is a closed axis-aligned box [Min, Max] in three dimensions.
// An extent with any Min component greater than the corresponding Max
// component is empty.
type Extent3[S vek.Scalars] struct {
	Min, Max vek.Vec3[S]
}

// New3 constructs the extent spanning min and max.
func New3[S vek.Scalars](min, max vek.Vec3[S]) Extent3[S] {
	return Extent3[S]{Min: min, Max: max}
}

// Bounding3 returns the smallest extent containing both points, whichever
// way around they are given.
func Bounding3[S vek.Scalars](a, b vek.Vec3[S]) Extent3[S] {
	return Extent3[S]{Min: a.Glb(b), Max: a.Lub(b)}
}

// IsEmpty reports whether the extent contains no points.
func (e Extent3[S]) IsEmpty() bool {
	return !e.Min.WithLatticeOrd().Le(e.Max.WithLatticeOrd())
}

// Shape returns the component-wise extent size, Max - Min.
func (e Extent3[S]) Shape() vek.Vec3[S] {
	return e.Max.Sub(e.Min)
}

// Union returns the smallest extent containing both e and o.
func (e Extent3[S]) Union(o Extent3[S]) Extent3[S] {
	return Extent3[S]{Min: e.Min.Glb(o.Min), Max: e.Max.Lub(o.Max)}
}

// Intersection returns the largest extent contained in both e and o.
// The result is empty when e and o do not overlap.
func (e Extent3[S]) Intersection(o Extent3[S]) Extent3[S] {
	return Extent3[S]{Min: e.Min.Lub(o.Min), Max: e.Max.Glb(o.Max)}
}

// ContainsPoint reports whether p lies inside e.
func (e Extent3[S]) ContainsPoint(p vek.Vec3[S]) bool {
	lp := p.WithLatticeOrd()
	return e.Min.WithLatticeOrd().Le(lp) && lp.Le(e.Max.WithLatticeOrd())
}

// ContainsExtent reports whether o lies entirely inside e.
func (e Extent3[S]) ContainsExtent(o Extent3[S]) bool {
	return e.Min.WithLatticeOrd().Le(o.Min.WithLatticeOrd()) &&
		o.Max.WithLatticeOrd().Le(e.Max.WithLatticeOrd())
}

// Intersects reports whether e and o share at least one point.
func (e Extent3[S]) Intersects(o Extent3[S]) bool {
	return !e.Intersection(o).IsEmpty()
}
