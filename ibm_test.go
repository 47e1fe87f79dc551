// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIBMToIEEEKnownValues(t *testing.T) {

	tests := []struct {
		bits uint32
		want float32
	}{
		{0x00000000, 0},
		{0x41100000, 1},
		{0xc1100000, -1},
		{0x40800000, 0.5},
		{0xc276a000, -118.625},
		{0x4276a000, 118.625},
		{0x40280000, 0.15625},
		{0x42640000, 100},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, IBMToIEEE32(tt.bits), "bits 0x%08x", tt.bits)
	}
}

func TestIEEEToIBMKnownValues(t *testing.T) {

	tests := []struct {
		in   float32
		want uint32
	}{
		{0, 0x00000000},
		{1, 0x41100000},
		{-1, 0xc1100000},
		{0.5, 0x40800000},
		{-118.625, 0xc276a000},
		{118.625, 0x4276a000},
		{0.15625, 0x40280000},
		{100, 0x42640000},
	}

	for _, tt := range tests {
		bits, err := IEEEToIBM32(tt.in)
		require.NoError(t, err, "value %g", tt.in)
		require.Equal(t, tt.want, bits, "value %g", tt.in)
	}
}

func TestIEEEToIBMBytes(t *testing.T) {
	b, err := IEEEToIBM(-118.625)
	require.NoError(t, err)
	require.Equal(t, []byte{0xc2, 0x76, 0xa0, 0x00}, b)

	v, err := IBMToIEEE(b)
	require.NoError(t, err)
	require.Equal(t, float32(-118.625), v)

	_, err = IBMToIEEE([]byte{0xc2, 0x76})
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestIEEEToIBMSubnormalIsZero(t *testing.T) {
	smallestSubnormal := math.Float32frombits(0x00000001)
	bits, err := IEEEToIBM32(smallestSubnormal)
	require.NoError(t, err)
	require.Equal(t, uint32(0), bits)

	largestSubnormal := math.Float32frombits(0x007fffff)
	bits, err = IEEEToIBM32(-largestSubnormal)
	require.NoError(t, err)
	require.Equal(t, uint32(0), bits)
}

func TestIEEEToIBMUnrepresentable(t *testing.T) {
	_, err := IEEEToIBM32(float32(math.NaN()))
	require.ErrorIs(t, err, ErrEncoding)

	_, err = IEEEToIBM32(float32(math.Inf(1)))
	require.ErrorIs(t, err, ErrEncoding)

	_, err = IEEEToIBM32(float32(math.Inf(-1)))
	require.ErrorIs(t, err, ErrEncoding)
}

// TestIBMRoundTrip exercises the round trip contract: converting an IEEE
// value to IBM and back stays within one IBM ULP, which for a normalized
// base-16 fraction bounds the relative error by 2^-20.
func TestIBMRoundTrip(t *testing.T) {

	values := []float32{
		1, -1, 0.5, 2, 3, 10, 1.0 / 3.0, 2.0 / 3.0,
		118.625, -118.625, 3.1415927, -2.7182818,
		1e-30, -1e-30, 1e30, -1e30,
		1.1754944e-38, 3.4028235e38, -3.4028235e38,
		0.0001, 123456.789, -987654.321,
	}

	for _, v := range values {
		bits, err := IEEEToIBM32(v)
		require.NoError(t, err, "value %g", v)
		back := IBMToIEEE32(bits)
		require.InEpsilon(t, float64(v), float64(back), 1.0/(1<<20), "value %g", v)

		// IBM encodes exactly one more round trip fixed point.
		bits2, err := IEEEToIBM32(back)
		require.NoError(t, err)
		require.Equal(t, bits, bits2, "value %g is not a fixed point", v)
	}
}

func TestIBMZeroRoundTrip(t *testing.T) {
	bits, err := IEEEToIBM32(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0), bits)
	require.Equal(t, float32(0), IBMToIEEE32(0))

	// A zero fraction is zero regardless of sign and exponent bits.
	require.Equal(t, float32(0), IBMToIEEE32(0xc1000000))
}
