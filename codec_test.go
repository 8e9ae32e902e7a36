// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import (
	"errors"
	"testing"
)

func TestMasks(t *testing.T) {
	for _, x := range []struct {
		shift, width uint
		base, mask   uint32
	}{
		{0, 1, 0x1, 0x1},
		{3, 4, 0xf, 0x78},
		{24, 8, 0xff, 0xff000000},
		{0, 32, 0xffffffff, 0xffffffff},
		{31, 1, 0x1, 0x80000000},
	} {
		if got := MaskAtBase(x.width); got != x.base {
			t.Errorf("wrong: MaskAtBase(%d) 0x%x != 0x%x", x.width, got, x.base)
		}
		if got := MaskShifted(x.shift, x.width); got != x.mask {
			t.Errorf("wrong: MaskShifted(%d, %d) 0x%x != 0x%x",
				x.shift, x.width, got, x.mask)
		}
	}
}

func TestInsertExtract(t *testing.T) {
	w := Insert(0xffffffff, 4, 8, 0x5a)
	if w != 0xfffff5af {
		t.Errorf("wrong: 0x%x", w)
	}
	if got := Extract(w, 4, 8); got != 0x5a {
		t.Errorf("wrong: 0x%x", got)
	}
	// Raw bits beyond the width don't leak into neighbors.
	if w = Insert(0, 4, 4, 0xff); w != 0xf0 {
		t.Errorf("wrong: 0x%x", w)
	}
}

func TestSignExtend(t *testing.T) {
	for _, x := range []struct {
		bits  uint32
		width uint
		v     int32
	}{
		{0x80, 8, -128},
		{0x7f, 8, 127},
		{0xff, 8, -1},
		{0x1, 1, -1},
		{0x0, 1, 0},
		{0x80000000, 32, -2147483648},
		{0xffffffff, 32, -1},
		{0x7fffffff, 32, 2147483647},
		{0x10, 5, -16},
	} {
		if got := SignExtend(x.bits, x.width); got != x.v {
			t.Errorf("wrong: SignExtend(0x%x, %d) %d != %d", x.bits, x.width, got, x.v)
		}
	}
}

func TestEncodeRange(t *testing.T) {
	if _, err := EncodeUnsigned(16, 4); !errors.Is(err, ErrRange) {
		t.Error("wrong:", err)
	}
	if _, err := EncodeSigned(-129, 8); !errors.Is(err, ErrRange) {
		t.Error("wrong:", err)
	}
	if _, err := EncodeSigned(128, 8); !errors.Is(err, ErrRange) {
		t.Error("wrong:", err)
	}
	if raw, err := EncodeSigned(-128, 8); err != nil || raw != 0x80 {
		t.Error("wrong:", raw, err)
	}
	if raw, err := EncodeUnsigned(0xffffffff, 32); err != nil || raw != 0xffffffff {
		t.Error("wrong:", raw, err)
	}
}

func TestFixed(t *testing.T) {
	for _, x := range []struct {
		v      float64
		width  uint
		frac   uint
		signed bool
		raw    uint32
	}{
		{1.5, 8, 4, false, 0x18},
		{-0.25, 8, 4, true, 0xfc},
		{-8, 8, 4, true, 0x80},
		{0.03125, 16, 8, false, 0x8},
	} {
		raw, err := EncodeFixed(x.v, x.width, x.frac, x.signed)
		if err != nil || raw != x.raw {
			t.Errorf("wrong: EncodeFixed(%v) 0x%x %v", x.v, raw, err)
		}
		if v := DecodeFixed(raw, x.width, x.frac, x.signed); v != x.v {
			t.Errorf("wrong: DecodeFixed(0x%x) %v != %v", raw, v, x.v)
		}
	}
	if _, err := EncodeFixed(-0.5, 8, 4, false); !errors.Is(err, ErrRange) {
		t.Error("wrong:", err)
	}
}
