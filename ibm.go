// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"math"

	"github.com/cockroachdb/errors"
)

// IBM System/360 single precision layout:
//
//	|S|EEEEEEE|FFFFFFFFFFFFFFFFFFFFFFFF|
//
// one sign bit, a 7-bit excess-64 base-16 exponent, and a 24-bit fraction
// in [0, 1). The value is sign * fraction * 16^(exponent-64).

// MaxIBMFloat is the largest magnitude representable as an IBM float:
// (1 - 2^-24) * 16^63.
const MaxIBMFloat = 7.2370051459731155e+75

// MinIBMFloat is the smallest positive normalized IBM float: 16^-65.
const MinIBMFloat = 5.397605346934028e-79

// IBMToIEEE32 converts the big-endian bit pattern of an IBM float to the
// nearest IEEE-754 32-bit value. The conversion is pure bit arithmetic and
// exact whenever the result is representable.
func IBMToIEEE32(bits uint32) float32 {
	fraction := bits & 0x00ffffff
	if fraction == 0 {
		return 0
	}
	exponent := int(bits>>24&0x7f) - 64
	v := math.Ldexp(float64(fraction), 4*exponent-24)
	if bits&0x80000000 != 0 {
		v = -v
	}
	return float32(v)
}

// IBMToIEEE converts four big-endian IBM float bytes to IEEE-754.
func IBMToIEEE(b []byte) (float32, error) {
	if len(b) < 4 {
		return 0, underflow("ibm float", 4, len(b))
	}
	bits := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return IBMToIEEE32(bits), nil
}

// IEEEToIBM32 converts an IEEE-754 32-bit value to the big-endian bit
// pattern of an IBM float. The 24-bit IBM fraction is truncated, so a
// round trip through IBMToIEEE32 stays within one IBM ULP. Zero and
// subnormal inputs map to IBM zero, values below the smallest normalized
// IBM float underflow to zero, and NaN, infinities and magnitudes above
// MaxIBMFloat report ErrEncoding.
func IEEEToIBM32(f float32) (uint32, error) {
	if f == 0 {
		return 0, nil
	}
	if math.Float32bits(f)&0x7f800000 == 0 {
		// Subnormal.
		return 0, nil
	}
	v := float64(f)
	if math.IsNaN(v) {
		return 0, errors.Wrap(ErrEncoding, "NaN has no IBM float representation")
	}
	if math.IsInf(v, 0) {
		return 0, errors.Wrap(ErrEncoding, "infinity has no IBM float representation")
	}

	var sign uint32
	if v < 0 {
		sign = 0x80000000
		v = -v
	}

	// Normalize to fraction16 * 16^exponent16 with fraction16 in [1/16, 1).
	fraction, exponent2 := math.Frexp(v)
	exponent16 := (exponent2 + 3) >> 2
	shift := 4*exponent16 - exponent2

	biased := exponent16 + 64
	if biased > 127 {
		return 0, errors.Wrapf(ErrEncoding, "%g exceeds the IBM float range", f)
	}
	if biased < 0 {
		// Underflow to zero.
		return 0, nil
	}

	fraction24 := uint32(math.Ldexp(fraction, 24-shift))
	return sign | uint32(biased)<<24 | fraction24, nil
}

// IEEEToIBM converts an IEEE-754 32-bit value to four big-endian IBM float
// bytes.
func IEEEToIBM(f float32) ([]byte, error) {
	bits, err := IEEEToIBM32(f)
	if err != nil {
		return nil, err
	}
	return []byte{
		byte(bits >> 24),
		byte(bits >> 16),
		byte(bits >> 8),
		byte(bits),
	}, nil
}
