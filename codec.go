// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"encoding/binary"
	"math"
)

// CType is a SEG-Y primitive type code. The integer and IEEE codes follow
// the conventional struct format characters; IBM floats get their own code
// since no struct character exists for them.
type CType byte

const (
	// CTypeInt8 is a signed 8-bit integer.
	CTypeInt8 CType = 'b'

	// CTypeUint8 is an unsigned 8-bit integer.
	CTypeUint8 CType = 'B'

	// CTypeInt16 is a signed 16-bit integer.
	CTypeInt16 CType = 'h'

	// CTypeUint16 is an unsigned 16-bit integer.
	CTypeUint16 CType = 'H'

	// CTypeInt32 is a signed 32-bit integer.
	CTypeInt32 CType = 'l'

	// CTypeUint32 is an unsigned 32-bit integer.
	CTypeUint32 CType = 'L'

	// CTypeIEEEFloat is an IEEE-754 32-bit float.
	CTypeIEEEFloat CType = 'f'

	// CTypeIBMFloat is an IBM System/360 32-bit float.
	CTypeIBMFloat CType = 'I'
)

// SizeInBytes returns the encoded width of a primitive type code.
func SizeInBytes(c CType) (int, error) {
	switch c {
	case CTypeInt8, CTypeUint8:
		return 1, nil
	case CTypeInt16, CTypeUint16:
		return 2, nil
	case CTypeInt32, CTypeUint32, CTypeIEEEFloat, CTypeIBMFloat:
		return 4, nil
	}
	return 0, unknownType(c)
}

// UnpackValues decodes count values of the given type code from buf.
// SEG-Y data is big-endian; bo selects the byte order for non-standard
// little-endian files. Values are returned as float64, which represents
// every SEG-Y primitive exactly.
func UnpackValues(buf []byte, c CType, count int, bo binary.ByteOrder) ([]float64, error) {
	size, err := SizeInBytes(c)
	if err != nil {
		return nil, err
	}
	need := size * count
	if len(buf) < need {
		return nil, underflow("unpack", need, len(buf))
	}

	values := make([]float64, count)
	switch c {
	case CTypeInt8:
		for i := 0; i < count; i++ {
			values[i] = float64(int8(buf[i]))
		}
	case CTypeUint8:
		for i := 0; i < count; i++ {
			values[i] = float64(buf[i])
		}
	case CTypeInt16:
		for i := 0; i < count; i++ {
			values[i] = float64(int16(bo.Uint16(buf[i*2:])))
		}
	case CTypeUint16:
		for i := 0; i < count; i++ {
			values[i] = float64(bo.Uint16(buf[i*2:]))
		}
	case CTypeInt32:
		for i := 0; i < count; i++ {
			values[i] = float64(int32(bo.Uint32(buf[i*4:])))
		}
	case CTypeUint32:
		for i := 0; i < count; i++ {
			values[i] = float64(bo.Uint32(buf[i*4:]))
		}
	case CTypeIEEEFloat:
		for i := 0; i < count; i++ {
			values[i] = float64(math.Float32frombits(bo.Uint32(buf[i*4:])))
		}
	case CTypeIBMFloat:
		for i := 0; i < count; i++ {
			values[i] = float64(IBMToIEEE32(bo.Uint32(buf[i*4:])))
		}
	}
	return values, nil
}

// PackValues encodes values under the given type code. For IBM floats the
// inputs are IEEE values and the output bytes are IBM encoded; an input
// outside the IBM range reports ErrEncoding.
func PackValues(values []float64, c CType, bo binary.ByteOrder) ([]byte, error) {
	size, err := SizeInBytes(c)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size*len(values))
	switch c {
	case CTypeInt8:
		for i, v := range values {
			buf[i] = byte(int8(v))
		}
	case CTypeUint8:
		for i, v := range values {
			buf[i] = byte(uint8(v))
		}
	case CTypeInt16:
		for i, v := range values {
			bo.PutUint16(buf[i*2:], uint16(int16(v)))
		}
	case CTypeUint16:
		for i, v := range values {
			bo.PutUint16(buf[i*2:], uint16(v))
		}
	case CTypeInt32:
		for i, v := range values {
			bo.PutUint32(buf[i*4:], uint32(int32(v)))
		}
	case CTypeUint32:
		for i, v := range values {
			bo.PutUint32(buf[i*4:], uint32(v))
		}
	case CTypeIEEEFloat:
		for i, v := range values {
			bo.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
		}
	case CTypeIBMFloat:
		for i, v := range values {
			bits, err := IEEEToIBM32(float32(v))
			if err != nil {
				return nil, err
			}
			bo.PutUint32(buf[i*4:], bits)
		}
	}
	return buf, nil
}
