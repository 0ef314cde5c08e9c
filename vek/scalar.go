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

import "math"

// This file provides the scalar capability helpers: identity and bound
// constants plus absolute value, resolved per concrete scalar kind.
// The switch-on-zero-value pattern only recognizes the predeclared numeric
// types, not named types defined on top of them.

// One returns the multiplicative identity of S.
func One[S Scalars]() S {
	return S(1)
}

// MinValue returns the smallest representable value of S.
// For floats this is the most negative finite value, not the smallest
// positive one, so that it absorbs under Glb.
func MinValue[S Scalars]() S {
	var zero S
	switch any(zero).(type) {
	case int:
		return any(int(math.MinInt)).(S)
	case int8:
		return any(int8(math.MinInt8)).(S)
	case int16:
		return any(int16(math.MinInt16)).(S)
	case int32:
		return any(int32(math.MinInt32)).(S)
	case int64:
		return any(int64(math.MinInt64)).(S)
	case float32:
		return any(float32(-math.MaxFloat32)).(S)
	case float64:
		return any(float64(-math.MaxFloat64)).(S)
	}
	// Unsigned kinds bottom out at zero.
	return zero
}

// MaxValue returns the largest representable value of S.
func MaxValue[S Scalars]() S {
	var zero S
	switch any(zero).(type) {
	case int:
		return any(int(math.MaxInt)).(S)
	case int8:
		return any(int8(math.MaxInt8)).(S)
	case int16:
		return any(int16(math.MaxInt16)).(S)
	case int32:
		return any(int32(math.MaxInt32)).(S)
	case int64:
		return any(int64(math.MaxInt64)).(S)
	case uint:
		return any(uint(math.MaxUint)).(S)
	case uint8:
		return any(uint8(math.MaxUint8)).(S)
	case uint16:
		return any(uint16(math.MaxUint16)).(S)
	case uint32:
		return any(uint32(math.MaxUint32)).(S)
	case uint64:
		return any(uint64(math.MaxUint64)).(S)
	case uintptr:
		return any(^uintptr(0)).(S)
	case float32:
		return any(float32(math.MaxFloat32)).(S)
	case float64:
		return any(float64(math.MaxFloat64)).(S)
	}
	return zero
}

// Abs returns the non-negative magnitude of v.
// For floats the sign bit is cleared, so Abs(-0) is +0 and NaN stays NaN.
func Abs[S Signeds](v S) S {
	switch x := any(v).(type) {
	case float32:
		return any(math.Float32frombits(math.Float32bits(x) &^ (1 << 31))).(S)
	case float64:
		return any(math.Abs(x)).(S)
	}
	if v < 0 {
		return -v
	}
	return v
}

// isFloat reports whether S is a floating-point kind.
func isFloat[S Scalars]() bool {
	var zero S
	switch any(zero).(type) {
	case float32, float64:
		return true
	}
	return false
}
