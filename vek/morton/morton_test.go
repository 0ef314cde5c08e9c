package morton

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelmath/blockmath/vek"
)

func TestMorton2u16(t *testing.T) {
	// 16 bits per axis: (5,9) must round-trip exactly and (0,0) is code 0.
	m := NewMorton2u16(vek.V2[uint16](5, 9))
	assert.Equal(t, vek.V2[uint16](5, 9), m.Vec())
	assert.Equal(t, Morton2u16(0), NewMorton2u16(vek.V2[uint16](0, 0)))

	// x occupies the even bits: 5 = 101b spreads to 10001b.
	assert.Equal(t, Morton2u16(0b10001), NewMorton2u16(vek.V2[uint16](5, 0)))
	assert.Equal(t, Morton2u16(0b10001<<1), NewMorton2u16(vek.V2[uint16](0, 5)))
}

func TestMorton2u32RoundTrip(t *testing.T) {
	tests := []vek.Vec2[uint32]{
		{X: 0, Y: 0},
		{X: 5, Y: 9},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: math.MaxUint32, Y: 0},
		{X: math.MaxUint32, Y: math.MaxUint32},
		{X: 0xdeadbeef, Y: 0x12345678},
	}
	for _, v := range tests {
		require.Equal(t, v, NewMorton2u32(v).Vec(), "round-trip of %v", v)
	}
}

func TestMorton2i32RoundTrip(t *testing.T) {
	tests := []vek.Vec2[int32]{
		{X: 0, Y: 0},
		{X: -1, Y: 1},
		{X: math.MinInt32, Y: math.MaxInt32},
		{X: -123456, Y: 654321},
	}
	for _, v := range tests {
		require.Equal(t, v, NewMorton2i32(v).Vec(), "round-trip of %v", v)
	}
}

func TestMorton3u32RoundTrip(t *testing.T) {
	tests := []vek.Vec3[uint32]{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 4},
		{X: 1<<21 - 1, Y: 1<<21 - 1, Z: 1<<21 - 1},
		{X: 0x15555, Y: 0xaaaa, Z: 0x1f0f0},
	}
	for _, v := range tests {
		require.Equal(t, v, NewMorton3u32(v).Vec(), "round-trip of %v", v)
	}

	// Outside the 21-bit budget the high bits are masked off.
	masked := NewMorton3u32(vek.V3[uint32](1<<21|3, 0, 0)).Vec()
	assert.Equal(t, vek.V3[uint32](3, 0, 0), masked)
}

func TestMorton3i32RoundTrip(t *testing.T) {
	tests := []vek.Vec3[int32]{
		{X: 0, Y: 0, Z: 0},
		{X: -1, Y: 1, Z: -1},
		{X: -(1 << 20), Y: 1<<20 - 1, Z: 42},
	}
	for _, v := range tests {
		require.Equal(t, v, NewMorton3i32(v).Vec(), "round-trip of %v", v)
	}
}

func TestMorton2i16RoundTrip(t *testing.T) {
	tests := []vek.Vec2[int16]{
		{X: 0, Y: 0},
		{X: -1, Y: 1},
		{X: math.MinInt16, Y: math.MaxInt16},
	}
	for _, v := range tests {
		require.Equal(t, v, NewMorton2i16(v).Vec(), "round-trip of %v", v)
	}
}

// The signed bias preserves coordinate order in code order along each axis.
func TestSignedBiasPreservesOrder(t *testing.T) {
	xs := []int32{math.MinInt32, -100, -1, 0, 1, 100, math.MaxInt32}
	var codes []Morton2i32
	for _, x := range xs {
		codes = append(codes, NewMorton2i32(vek.V2(x, int32(0))))
	}
	assert.True(t, sort.SliceIsSorted(codes, func(i, j int) bool {
		return codes[i] < codes[j]
	}), "codes along the x axis must be sorted like the coordinates: %v", codes)
}

// Nested quadrants of the Z-order curve stay contiguous: the code of any
// point in the upper quadrant exceeds the code of every point in the
// lower one at each level.
func TestZOrderQuadrantLocality(t *testing.T) {
	low := NewMorton2u32(vek.V2[uint32](1, 1))
	high := NewMorton2u32(vek.V2[uint32](2, 2))
	assert.Less(t, uint64(low), uint64(high))
}

func TestSpreadCompactInverse(t *testing.T) {
	for _, x := range []uint64{0, 1, 0xffffffff, 0x55555555, 0xaaaaaaaa, 0x12345678} {
		require.Equal(t, x, compact1by1(part1by1(x)), "part1by1 inverse of %#x", x)
	}
	for _, x := range []uint64{0, 1, 0x1fffff, 0x155555, 0xaaaa, 0x12345} {
		require.Equal(t, x, compact1by2(part1by2(x)), "part1by2 inverse of %#x", x)
	}
}
