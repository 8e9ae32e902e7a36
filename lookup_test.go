// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	m := dummies()
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, x := range []struct {
		path, array, register, field string
	}{
		{"plain", "", "plain", ""},
		{"plain.b", "", "plain", "b"},
		{"dummies.first", "dummies", "first", ""},
		{"dummies.second.b", "dummies", "second", "b"},
		{"empty.r", "empty", "r", ""},
		{"after.b", "", "after", "b"},
	} {
		a, r, field, err := m.Resolve(x.path)
		if err != nil {
			t.Error(x.path, err)
			continue
		}
		var array string
		if a != nil {
			array = a.Name
		}
		if array != x.array || r.Name != x.register || field != x.field {
			t.Errorf("wrong: %s: %q %q %q", x.path, array, r.Name, field)
		}
	}
	for _, path := range []string{
		"dummies",
		"missing",
		"plain.c",
		"plain.b.c",
		"dummies.third",
		"dummies.first.c",
		"dummies.first.b.c",
	} {
		if _, _, _, err := m.Resolve(path); !errors.Is(err, ErrNotFound) {
			t.Error("wrong:", path, err)
		}
	}
}

func TestParse(t *testing.T) {
	r := New("m").AppendRegister("r", ReadWrite, "")
	bit := r.AppendBit("bit", "", false)
	enum := r.AppendEnumeration("enum", "", "a", "a", "b", "c")
	fixed := r.AppendVector("fixed", "", 8, UnsignedFixed(4), 0.0)
	signed := r.AppendSigned("signed", "", 8, 0)

	if v, err := bit.Parse("true"); err != nil || v != true {
		t.Error("wrong: bit", v, err)
	}
	if _, err := bit.Parse("yes"); !errors.Is(err, ErrType) {
		t.Error("wrong: bit", err)
	}
	if v, err := enum.Parse("b"); err != nil || v.(Element).Value != 1 {
		t.Error("wrong: enum", v, err)
	}
	if _, err := enum.Parse("d"); !errors.Is(err, ErrNotFound) {
		t.Error("wrong: enum", err)
	}
	if v, err := fixed.Parse("1.5"); err != nil || v != 1.5 {
		t.Error("wrong: fixed", v, err)
	}
	if _, err := fixed.Parse("x"); !errors.Is(err, ErrType) {
		t.Error("wrong: fixed", err)
	}
	for _, x := range []struct {
		s    string
		want int64
	}{
		{"-16", -16},
		{"0b101", 5},
		{"0x7f", 127},
		{"1_000", 1000},
	} {
		if v, err := signed.Parse(x.s); err != nil || v != x.want {
			t.Error("wrong: signed", x.s, v, err)
		}
	}
	if _, err := signed.Parse("1.5"); !errors.Is(err, ErrType) {
		t.Error("wrong: signed", err)
	}
}

func TestParseWord(t *testing.T) {
	for _, x := range []struct {
		s    string
		want uint32
	}{
		{"0", 0},
		{"-1", 0xffffffff},
		{"0xdead_beef", 0xdeadbeef},
		{"-2147483648", 0x80000000},
		{"4294967295", 0xffffffff},
	} {
		if w, err := ParseWord(x.s); err != nil || w != x.want {
			t.Errorf("wrong: %s: 0x%x %v", x.s, w, err)
		}
	}
	for _, s := range []string{"4294967296", "-2147483649"} {
		if _, err := ParseWord(s); !errors.Is(err, ErrRange) {
			t.Error("wrong:", s, err)
		}
	}
	if _, err := ParseWord("junk"); !errors.Is(err, ErrType) {
		t.Error("wrong: junk", err)
	}
}

func TestFormatValue(t *testing.T) {
	for _, x := range []struct {
		v    interface{}
		want string
	}{
		{true, "true"},
		{Element{Name: "third", Value: 2}, "third"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{int32(-3), "-3"},
		{uint32(7), "7"},
		{int64(-5), "-5"},
	} {
		if s := FormatValue(x.v); s != x.want {
			t.Errorf("wrong: %#v: %q", x.v, s)
		}
	}
}
