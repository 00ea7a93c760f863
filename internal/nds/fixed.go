// Package nds provides the small set of numeric primitives used throughout
// the Nitro DS asset formats: fixed-point scalars, fixed-point vectors, and
// packed RGB colors.
package nds

import "golang.org/x/exp/constraints"

// Fixed16Size is the size in bytes of a Fixed16 value.
const Fixed16Size = 2

// Fixed32Size is the size in bytes of a Fixed32 value.
const Fixed32Size = 4

// VecFixed32Size is the size in bytes of a VecFixed32 value.
const VecFixed32Size = 3 * Fixed32Size

// fixedScale is the number of fractional bits shared by Fixed16 and Fixed32:
// both formats use a 12-bit fractional part, so converting to/from float64
// is a division/multiplication by 4096.
const fixedScale = 4096.0

// Fixed16 is a Q3.12 fixed-point value (1 sign bit, 3 integer bits, 12
// fractional bits), stored as its raw two's-complement bit pattern. Its
// representable range is [-8, 8).
type Fixed16 int16

// Fixed16FromBits reinterprets a raw 16-bit value as a Fixed16.
func Fixed16FromBits(raw int16) Fixed16 {
	return Fixed16(raw)
}

// Fixed16One and Fixed16NegOne are the raw-bit representations of 1.0 and
// -1.0, used to clamp direction vector components to the unit range.
const (
	Fixed16One    Fixed16 = fixedScale
	Fixed16NegOne Fixed16 = -fixedScale
)

// Float64 returns the value represented by f as a float64.
func (f Fixed16) Float64() float64 {
	return float64(f) / fixedScale
}

// Fixed32 is a Q19.12 fixed-point value (1 sign bit, 19 integer bits, 12
// fractional bits), stored as its raw two's-complement bit pattern. Its
// representable range is [-524288, 524288).
type Fixed32 int32

// Fixed32FromBits reinterprets a raw 32-bit value as a Fixed32.
func Fixed32FromBits(raw int32) Fixed32 {
	return Fixed32(raw)
}

// Float64 returns the value represented by f as a float64.
func (f Fixed32) Float64() float64 {
	return float64(f) / fixedScale
}

// VecFixed32 is a 3-component vector of Fixed32 values, used for positions,
// rotations and scales in map prop placement data.
type VecFixed32 struct {
	X, Y, Z Fixed32
}

// VecFixed16 is a 3-component vector of Fixed16 values, used for light
// direction vectors.
type VecFixed16 struct {
	X, Y, Z Fixed16
}

// RGB is a packed 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
