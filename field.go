// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import (
	"fmt"
	"math/bits"
)

// Kind is the semantic type of a field.
type Kind int

const (
	Bit Kind = iota
	BitVector
	SignedInteger
	UnsignedInteger
	Enumeration
)

var kindNames = [...]string{
	Bit:             "bit",
	BitVector:       "bit_vector",
	SignedInteger:   "signed_integer",
	UnsignedInteger: "unsigned_integer",
	Enumeration:     "enumeration",
}

func (k Kind) String() string {
	if k < Bit || k > Enumeration {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Element is one member of an enumeration field.
type Element struct {
	Name        string
	Value       uint32
	Description string
}

func (e Element) String() string { return e.Name }

// Interpretation selects how the bits of a BitVector field read as a number.
type Interpretation struct {
	Signed bool
	Fixed  bool
	// Number of fractional bits of a fixed point vector.
	FractionBits uint
}

var (
	Unsigned = Interpretation{}
	Signed   = Interpretation{Signed: true}
)

func UnsignedFixed(fractionBits uint) Interpretation {
	return Interpretation{Fixed: true, FractionBits: fractionBits}
}

func SignedFixed(fractionBits uint) Interpretation {
	return Interpretation{Signed: true, Fixed: true, FractionBits: fractionBits}
}

func (i Interpretation) String() string {
	switch {
	case i.Fixed && i.Signed:
		return fmt.Sprintf("sfixed.%d", i.FractionBits)
	case i.Fixed:
		return fmt.Sprintf("ufixed.%d", i.FractionBits)
	case i.Signed:
		return "signed"
	}
	return "unsigned"
}

// Field is a bit slice of a register word.
//
// Logical values have these Go types:
//
//	Bit                      bool
//	BitVector                uint32, or int32 if Signed, or float64 if Fixed
//	UnsignedInteger          uint32
//	SignedInteger            int32
//	Enumeration              Element
type Field struct {
	Name        string
	Description string
	Kind        Kind
	// Bit width 1 through 32 and offset of the least significant bit.
	Width, Offset uint
	// Default is the raw, unshifted bit pattern.
	Default uint32
	// Elements of an Enumeration.
	Elements []Element
	// Optional declared range of an integer field.
	Ranged   bool
	Min, Max int64
	// Interpretation of a BitVector.
	Interpretation Interpretation
}

func (f *Field) Shift() uint            { return f.Offset }
func (f *Field) MaskAtBase() uint32     { return MaskAtBase(f.Width) }
func (f *Field) Mask() uint32           { return MaskShifted(f.Offset, f.Width) }
func (f *Field) DefaultShifted() uint32 { return f.Default << f.Offset }

// Signed is true if the field bits are two's complement.
func (f *Field) Signed() bool {
	return f.Kind == SignedInteger ||
		f.Kind == BitVector && f.Interpretation.Signed
}

// Element returns the enumeration element with the given name.
func (f *Field) Element(name string) (Element, error) {
	for _, e := range f.Elements {
		if e.Name == name {
			return e, nil
		}
	}
	return Element{}, fmt.Errorf("%s: element %q: %w", f.Name, name, ErrNotFound)
}

// ElementByValue returns the enumeration element with the given ordinal.
func (f *Field) ElementByValue(v uint32) (Element, error) {
	for _, e := range f.Elements {
		if e.Value == v {
			return e, nil
		}
	}
	return Element{}, &DomainError{f.Name, v, "is not an element ordinal"}
}

// Limits returns the logical range of an integer or bit vector field.
func (f *Field) Limits() (min, max interface{}) {
	switch f.Kind {
	case Bit:
		return false, true
	case Enumeration:
		if len(f.Elements) == 0 {
			return nil, nil
		}
		return f.Elements[0], f.Elements[len(f.Elements)-1]
	case BitVector:
		if f.Interpretation.Fixed {
			return FixedRange(f.Width, f.Interpretation.FractionBits, f.Interpretation.Signed)
		}
	}
	if f.Ranged {
		return f.Min, f.Max
	}
	if f.Signed() {
		return SignedRange(f.Width)
	}
	return uint64(0), UnsignedMax(f.Width)
}

// Encode returns the raw, unshifted bits of logical value v.
// Integer kinds accept any Go integer type; Enumeration accepts an Element
// or an element name; fixed point vectors accept float64.
func (f *Field) Encode(v interface{}) (uint32, error) {
	raw, err := f.encode(v)
	if re, ok := err.(*RangeError); ok {
		re.Field = f.Name
	}
	return raw, err
}

func (f *Field) encode(v interface{}) (uint32, error) {
	switch f.Kind {
	case Bit:
		b, ok := v.(bool)
		if !ok {
			return 0, f.typeError(v)
		}
		return BoolBits(b), nil
	case Enumeration:
		var e Element
		switch t := v.(type) {
		case Element:
			e = t
		case string:
			var err error
			if e, err = f.Element(t); err != nil {
				return 0, err
			}
		default:
			return 0, f.typeError(v)
		}
		if m, err := f.Element(e.Name); err != nil || m.Value != e.Value {
			return 0, fmt.Errorf("%s: element %q is not a member: %w", f.Name, e.Name, ErrDomain)
		}
		if e.Value > f.MaskAtBase() {
			return 0, &RangeError{Value: e.Value, Min: 0, Max: UnsignedMax(f.Width)}
		}
		return e.Value, nil
	case BitVector:
		if f.Interpretation.Fixed {
			x, ok := toFloat(v)
			if !ok {
				return 0, f.typeError(v)
			}
			return EncodeFixed(x, f.Width, f.Interpretation.FractionBits, f.Interpretation.Signed)
		}
	}
	if f.Signed() {
		x, ok := toInt64(v)
		if !ok {
			return 0, f.typeError(v)
		}
		if f.Ranged && (x < f.Min || x > f.Max) {
			return 0, &RangeError{Value: x, Min: f.Min, Max: f.Max}
		}
		return EncodeSigned(x, f.Width)
	}
	x, ok := toUint64(v)
	if !ok {
		if n, isInt := toInt64(v); isInt && n < 0 {
			return 0, &RangeError{Value: n, Min: 0, Max: UnsignedMax(f.Width)}
		}
		return 0, f.typeError(v)
	}
	if f.Ranged && (int64(x) < f.Min || x > uint64(f.Max)) {
		return 0, &RangeError{Value: x, Min: f.Min, Max: f.Max}
	}
	return EncodeUnsigned(x, f.Width)
}

// Decode extracts the field from a register word and returns its logical
// value.  It never touches a memory image.
func (f *Field) Decode(word uint32) (interface{}, error) {
	return f.DecodeBits(Extract(word, f.Offset, f.Width))
}

// DecodeBits returns the logical value of raw, unshifted field bits.
func (f *Field) DecodeBits(b uint32) (interface{}, error) {
	b &= f.MaskAtBase()
	switch f.Kind {
	case Bit:
		return b != 0, nil
	case Enumeration:
		return f.ElementByValue(b)
	case BitVector:
		if f.Interpretation.Fixed {
			return DecodeFixed(b, f.Width, f.Interpretation.FractionBits, f.Interpretation.Signed), nil
		}
	}
	if f.Signed() {
		v := SignExtend(b, f.Width)
		if f.Ranged && (int64(v) < f.Min || int64(v) > f.Max) {
			return nil, &DomainError{f.Name, b, fmt.Sprintf("is outside [%d, %d]", f.Min, f.Max)}
		}
		return v, nil
	}
	if f.Ranged && (int64(b) < f.Min || int64(b) > f.Max) {
		return nil, &DomainError{f.Name, b, fmt.Sprintf("is outside [%d, %d]", f.Min, f.Max)}
	}
	return b, nil
}

// DefaultValue returns the logical default, decoded from the raw default
// just as a register read would decode it.
func (f *Field) DefaultValue() (interface{}, error) { return f.DecodeBits(f.Default) }

func (f *Field) typeError(v interface{}) error {
	return fmt.Errorf("%s: %T for %s field: %w", f.Name, v, f.Kind, ErrType)
}

func (f *Field) String() string {
	s := fmt.Sprintf("%s %s [%d:%d]", f.Name, f.Kind, f.Offset+f.Width-1, f.Offset)
	if f.Kind == BitVector && f.Interpretation != Unsigned {
		s += " " + f.Interpretation.String()
	}
	return s
}

// enumerationWidth is the narrowest width holding n sequential ordinals.
func enumerationWidth(n int) uint {
	if n <= 1 {
		return 1
	}
	return uint(bits.Len(uint(n - 1)))
}

// integerWidth is the narrowest width holding [min, max].
func integerWidth(min, max int64) (uint, bool) {
	if min >= 0 {
		w := uint(bits.Len64(uint64(max)))
		if w == 0 {
			w = 1
		}
		return w, w <= WordBits
	}
	for w := uint(1); w <= WordBits; w++ {
		if lo, hi := SignedRange(w); min >= lo && max <= hi {
			return w, true
		}
	}
	return 0, false
}

func toInt64(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint:
		if uint64(t) <= 1<<63-1 {
			return int64(t), true
		}
	case uint64:
		if t <= 1<<63-1 {
			return int64(t), true
		}
	}
	return 0, false
}

func toUint64(v interface{}) (uint64, bool) {
	switch t := v.(type) {
	case uint:
		return uint64(t), true
	case uint8:
		return uint64(t), true
	case uint16:
		return uint64(t), true
	case uint32:
		return uint64(t), true
	case uint64:
		return t, true
	}
	if n, ok := toInt64(v); ok && n >= 0 {
		return uint64(n), true
	}
	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	}
	if n, ok := toInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}
