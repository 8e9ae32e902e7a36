// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Constant is a named value with no address.  Value is one of bool, int64,
// float64, string or VectorConstant.
type Constant struct {
	Name        string
	Description string
	Value       interface{}
}

type ConstKind int

const (
	ConstInvalid ConstKind = iota
	ConstBool
	ConstInteger
	ConstFloat
	ConstString
	ConstBitVector
)

var constKindNames = [...]string{
	ConstInvalid:   "invalid",
	ConstBool:      "bool",
	ConstInteger:   "integer",
	ConstFloat:     "float",
	ConstString:    "string",
	ConstBitVector: "bit_vector",
}

func (k ConstKind) String() string {
	if k < ConstInvalid || k > ConstBitVector {
		return fmt.Sprintf("ConstKind(%d)", int(k))
	}
	return constKindNames[k]
}

func (c *Constant) Kind() ConstKind {
	switch c.Value.(type) {
	case bool:
		return ConstBool
	case int64:
		return ConstInteger
	case float64:
		return ConstFloat
	case string:
		return ConstString
	case VectorConstant:
		return ConstBitVector
	}
	return ConstInvalid
}

// Literal returns the value as it would be written in source.
func (c *Constant) Literal() string {
	switch v := c.Value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return FormatDecimal(v)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case string:
		return strconv.Quote(v)
	case VectorConstant:
		return v.String()
	}
	return fmt.Sprint(c.Value)
}

func (c *Constant) String() string {
	return fmt.Sprintf("%s %s = %s", c.Name, c.Kind(), c.Literal())
}

// AddConstant adds a named constant.  Go integer values are stored as
// int64 and float32 as float64; Validate rejects any other type.  Integer
// literal strings should be parsed with ParseInteger first.
func (m *Map) AddConstant(name, description string, value interface{}) *Constant {
	m.mutable()
	switch v := value.(type) {
	case float32:
		value = float64(v)
	case int64, bool, float64, string, VectorConstant:
	default:
		if n, ok := toInt64(v); ok {
			value = n
		}
	}
	c := &Constant{Name: name, Description: description, Value: value}
	m.Constants = append(m.Constants, c)
	return c
}

// Constant returns the constant with the given name.
func (m *Map) Constant(name string) (*Constant, error) {
	for _, c := range m.Constants {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%s: constant %q: %w", m.Name, name, ErrNotFound)
}

// VectorConstant is a constant bit pattern whose width comes from its literal:
// one bit per binary digit, four per hex digit.
type VectorConstant struct {
	Value uint64
	Width uint
}

// ParseVectorConstant parses "0b0101" or "0xa_5" style literals.
func ParseVectorConstant(s string) (VectorConstant, error) {
	var base, bitsPerDigit uint
	switch {
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		base, bitsPerDigit = 2, 1
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, bitsPerDigit = 16, 4
	default:
		return VectorConstant{}, fmt.Errorf("bit vector %q: missing 0b or 0x prefix: %w", s, ErrType)
	}
	digits := strings.ReplaceAll(s[2:], "_", "")
	w := uint(len(digits)) * bitsPerDigit
	if w == 0 || w > 64 {
		return VectorConstant{}, &RangeError{Field: s, Value: w, Min: 1, Max: 64}
	}
	v, err := strconv.ParseUint(digits, int(base), 64)
	if err != nil {
		return VectorConstant{}, fmt.Errorf("bit vector %q: %w", s, ErrType)
	}
	return VectorConstant{Value: v, Width: w}, nil
}

// String formats the vector with exactly Width bits, in hex when the width
// is a multiple of four and binary otherwise.
func (b VectorConstant) String() string {
	if b.Width%4 == 0 {
		return fmt.Sprintf("0x%0*x", b.Width/4, b.Value)
	}
	return fmt.Sprintf("0b%0*b", b.Width, b.Value)
}

// ParseInteger parses a decimal, 0x hex or 0b binary integer literal with
// optional sign and '_' digit separators.  Hex and binary literals up to
// 64 bits wide are accepted as bit patterns, so 0xffff_ffff_ffff_ffff is -1.
func ParseInteger(s string) (int64, error) {
	lit := strings.ReplaceAll(s, "_", "")
	neg := false
	switch {
	case strings.HasPrefix(lit, "-"):
		neg = true
		lit = lit[1:]
	case strings.HasPrefix(lit, "+"):
		lit = lit[1:]
	}
	if strings.HasPrefix(lit, "-") || strings.HasPrefix(lit, "+") {
		return 0, fmt.Errorf("integer %q: %w", s, ErrType)
	}
	base := 10
	switch {
	case strings.HasPrefix(lit, "0x"), strings.HasPrefix(lit, "0X"):
		base, lit = 16, lit[2:]
	case strings.HasPrefix(lit, "0b"), strings.HasPrefix(lit, "0B"):
		base, lit = 2, lit[2:]
	}
	if base == 10 {
		if neg {
			lit = "-" + lit
		}
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("integer %q: %w", s, ErrType)
		}
		return n, nil
	}
	u, err := strconv.ParseUint(lit, base, 64)
	if err != nil {
		return 0, fmt.Errorf("integer %q: %w", s, ErrType)
	}
	n := int64(u)
	if neg {
		n = -n
	}
	return n, nil
}

func FormatDecimal(v int64) string { return strconv.FormatInt(v, 10) }

// FormatHex returns a 0x literal with the same Bits as v.
func FormatHex(v int64) string { return fmt.Sprintf("0x%x", Bits(v)) }

// Bits returns the bit pattern an integer constant denotes: 32 bit two's
// complement for negative values that fit in int32, 64 bit otherwise.
func Bits(v int64) uint64 {
	if v < 0 && v >= math.MinInt32 {
		return uint64(uint32(v))
	}
	return uint64(v)
}
