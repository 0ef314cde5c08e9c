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

// Package morton provides Z-order (Morton) codes for 2- and 3-component
// integer vectors. A code interleaves the bits of the coordinate axes
// round robin, X at bit 0, so that nearby codes correspond to nearby
// coordinates; sorting by code gives the Z-order curve used by grid and
// tree indexes.
//
// Each codec is a bijection between coordinates and codes within its
// per-axis bit budget. The 2-D codecs carry full 32-bit axes in a uint64
// code. The 3-D codecs carry 21 bits per axis in a uint64 code; higher
// coordinate bits are masked off, so coordinates outside ±2^20 (signed)
// or 2^21 (unsigned) do not round-trip.
//
// Signed codecs bias each component by flipping it into unsigned range
// before interleaving, preserving coordinate order in code order per axis.
package morton

import "github.com/voxelmath/blockmath/vek"

// Morton2u32 is the Z-order code of a Vec2[uint32], 32 bits per axis.
type Morton2u32 uint64

// NewMorton2u32 interleaves the bits of v into a code.
func NewMorton2u32(v vek.Vec2[uint32]) Morton2u32 {
	return Morton2u32(part1by1(uint64(v.X)) | part1by1(uint64(v.Y))<<1)
}

// Vec de-interleaves the code back into coordinates.
func (m Morton2u32) Vec() vek.Vec2[uint32] {
	return vek.V2(uint32(compact1by1(uint64(m))), uint32(compact1by1(uint64(m)>>1)))
}

// Morton2i32 is the Z-order code of a Vec2[int32], 32 bits per axis.
type Morton2i32 uint64

// NewMorton2i32 biases the components into unsigned range and interleaves
// them into a code.
func NewMorton2i32(v vek.Vec2[int32]) Morton2i32 {
	return Morton2i32(NewMorton2u32(vek.V2(bias32(v.X), bias32(v.Y))))
}

// Vec de-interleaves the code and removes the sign bias.
func (m Morton2i32) Vec() vek.Vec2[int32] {
	u := Morton2u32(m).Vec()
	return vek.V2(unbias32(u.X), unbias32(u.Y))
}

// Morton3u32 is the Z-order code of a Vec3[uint32], 21 bits per axis.
// Components are masked to the budget before interleaving.
type Morton3u32 uint64

// NewMorton3u32 interleaves the low 21 bits of each component into a code.
func NewMorton3u32(v vek.Vec3[uint32]) Morton3u32 {
	return Morton3u32(part1by2(uint64(v.X)) | part1by2(uint64(v.Y))<<1 | part1by2(uint64(v.Z))<<2)
}

// Vec de-interleaves the code back into coordinates.
func (m Morton3u32) Vec() vek.Vec3[uint32] {
	return vek.V3(
		uint32(compact1by2(uint64(m))),
		uint32(compact1by2(uint64(m)>>1)),
		uint32(compact1by2(uint64(m)>>2)),
	)
}

// Morton3i32 is the Z-order code of a Vec3[int32], 21 bits per axis, so
// the representable range per component is [-2^20, 2^20).
type Morton3i32 uint64

// NewMorton3i32 biases the components into the 21-bit unsigned budget and
// interleaves them into a code.
func NewMorton3i32(v vek.Vec3[int32]) Morton3i32 {
	return Morton3i32(NewMorton3u32(vek.V3(bias21(v.X), bias21(v.Y), bias21(v.Z))))
}

// Vec de-interleaves the code and removes the sign bias.
func (m Morton3i32) Vec() vek.Vec3[int32] {
	u := Morton3u32(m).Vec()
	return vek.V3(unbias21(u.X), unbias21(u.Y), unbias21(u.Z))
}

// Morton2u16 is the Z-order code of a Vec2[uint16], 16 bits per axis.
type Morton2u16 uint32

// NewMorton2u16 interleaves the bits of v into a code.
func NewMorton2u16(v vek.Vec2[uint16]) Morton2u16 {
	return Morton2u16(part1by1(uint64(v.X)) | part1by1(uint64(v.Y))<<1)
}

// Vec de-interleaves the code back into coordinates.
func (m Morton2u16) Vec() vek.Vec2[uint16] {
	return vek.V2(uint16(compact1by1(uint64(m))), uint16(compact1by1(uint64(m)>>1)))
}

// Morton2i16 is the Z-order code of a Vec2[int16], 16 bits per axis.
type Morton2i16 uint32

// NewMorton2i16 biases the components into unsigned range and interleaves
// them into a code.
func NewMorton2i16(v vek.Vec2[int16]) Morton2i16 {
	return Morton2i16(NewMorton2u16(vek.V2(bias16(v.X), bias16(v.Y))))
}

// Vec de-interleaves the code and removes the sign bias.
func (m Morton2i16) Vec() vek.Vec2[int16] {
	u := Morton2u16(m).Vec()
	return vek.V2(unbias16(u.X), unbias16(u.Y))
}

// bias32 flips an int32 into uint32 range so that unsigned comparison of
// the results matches signed comparison of the inputs.
func bias32(v int32) uint32 {
	return uint32(v) ^ (1 << 31)
}

func unbias32(v uint32) int32 {
	return int32(v ^ (1 << 31))
}

func bias16(v int16) uint16 {
	return uint16(v) ^ (1 << 15)
}

func unbias16(v uint16) int16 {
	return int16(v ^ (1 << 15))
}

// bias21 offsets an in-budget int32 into the 21-bit unsigned budget.
func bias21(v int32) uint32 {
	return uint32(v+(1<<20)) & 0x1fffff
}

func unbias21(v uint32) int32 {
	return int32(v&0x1fffff) - (1 << 20)
}

// part1by1 spreads the low 32 bits of x apart, inserting a zero bit after
// each: bit i moves to bit 2i.
func part1by1(x uint64) uint64 {
	x &= 0xffffffff
	x = (x | x<<16) & 0x0000ffff0000ffff
	x = (x | x<<8) & 0x00ff00ff00ff00ff
	x = (x | x<<4) & 0x0f0f0f0f0f0f0f0f
	x = (x | x<<2) & 0x3333333333333333
	x = (x | x<<1) & 0x5555555555555555
	return x
}

// compact1by1 is the inverse of part1by1: bit 2i moves to bit i.
func compact1by1(x uint64) uint64 {
	x &= 0x5555555555555555
	x = (x | x>>1) & 0x3333333333333333
	x = (x | x>>2) & 0x0f0f0f0f0f0f0f0f
	x = (x | x>>4) & 0x00ff00ff00ff00ff
	x = (x | x>>8) & 0x0000ffff0000ffff
	x = (x | x>>16) & 0x00000000ffffffff
	return x
}

// part1by2 spreads the low 21 bits of x apart, inserting two zero bits
// after each: bit i moves to bit 3i.
func part1by2(x uint64) uint64 {
	x &= 0x1fffff
	x = (x | x<<32) & 0x001f00000000ffff
	x = (x | x<<16) & 0x001f0000ff0000ff
	x = (x | x<<8) & 0x100f00f00f00f00f
	x = (x | x<<4) & 0x10c30c30c30c30c3
	x = (x | x<<2) & 0x1249249249249249
	return x
}

// compact1by2 is the inverse of part1by2: bit 3i moves to bit i.
func compact1by2(x uint64) uint64 {
	x &= 0x1249249249249249
	x = (x | x>>2) & 0x10c30c30c30c30c3
	x = (x | x>>4) & 0x100f00f00f00f00f
	x = (x | x>>8) & 0x001f0000ff0000ff
	x = (x | x>>16) & 0x001f00000000ffff
	x = (x | x>>32) & 0x1fffff
	return x
}
