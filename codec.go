// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import "math"

// Bit arithmetic shared by Field and by generated accessors.  Widths are
// 1 through 32 and shift+width never exceeds 32.

// MaskAtBase returns the low width bits set.
func MaskAtBase(width uint) uint32 { return uint32(uint64(1)<<width - 1) }

// MaskShifted returns width bits set starting at shift.
func MaskShifted(shift, width uint) uint32 { return MaskAtBase(width) << shift }

// Extract returns the width bits of word at shift.
func Extract(word uint32, shift, width uint) uint32 {
	return word >> shift & MaskAtBase(width)
}

// Insert replaces the width bits of base at shift with raw.
func Insert(base uint32, shift, width uint, raw uint32) uint32 {
	m := MaskShifted(shift, width)
	return base&^m | raw<<shift&m
}

// SignExtend interprets the low width bits as two's complement.  The sign
// is bit width-1 of bits, not bit 31 of the containing word.
func SignExtend(bits uint32, width uint) int32 {
	s := WordBits - width
	return int32(bits<<s) >> s
}

// BoolBits returns 1 for true.
func BoolBits(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// SignedRange returns the two's complement range of width bits.
func SignedRange(width uint) (min, max int64) {
	max = int64(1)<<(width-1) - 1
	min = -max - 1
	return
}

// UnsignedMax returns the largest value of width bits.
func UnsignedMax(width uint) uint64 { return uint64(1)<<width - 1 }

// EncodeUnsigned returns v as width raw bits.
func EncodeUnsigned(v uint64, width uint) (uint32, error) {
	if max := UnsignedMax(width); v > max {
		return 0, &RangeError{Value: v, Min: 0, Max: max}
	}
	return uint32(v), nil
}

// EncodeSigned returns the width bit two's complement pattern of v.
func EncodeSigned(v int64, width uint) (uint32, error) {
	if min, max := SignedRange(width); v < min || v > max {
		return 0, &RangeError{Value: v, Min: min, Max: max}
	}
	return uint32(v) & MaskAtBase(width), nil
}

// EncodeFixed rounds v to the nearest fixed point value with fracBits
// fractional bits and returns its width bit pattern.
func EncodeFixed(v float64, width, fracBits uint, signed bool) (uint32, error) {
	min, max := FixedRange(width, fracBits, signed)
	if math.IsNaN(v) || v < min || v > max {
		return 0, &RangeError{Value: v, Min: min, Max: max}
	}
	n := int64(math.Round(math.Ldexp(v, int(fracBits))))
	return uint32(n) & MaskAtBase(width), nil
}

// DecodeFixed is the inverse of EncodeFixed.
func DecodeFixed(bits uint32, width, fracBits uint, signed bool) float64 {
	var n float64
	if signed {
		n = float64(SignExtend(bits, width))
	} else {
		n = float64(bits & MaskAtBase(width))
	}
	return math.Ldexp(n, -int(fracBits))
}

// FixedRange returns the representable fixed point range.
func FixedRange(width, fracBits uint, signed bool) (min, max float64) {
	if signed {
		lo, hi := SignedRange(width)
		return math.Ldexp(float64(lo), -int(fracBits)),
			math.Ldexp(float64(hi), -int(fracBits))
	}
	return 0, math.Ldexp(float64(UnsignedMax(width)), -int(fracBits))
}
