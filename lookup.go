// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolve looks up a dotted path: "reg", "reg.field", "array.reg" or
// "array.reg.field".  The array is nil for plain registers and field is
// empty if the path names a register.
func (m *Map) Resolve(path string) (a *RegisterArray, r *Register, field string, err error) {
	s := strings.Split(path, ".")
	if len(s) > 3 {
		err = fmt.Errorf("%s: %w", path, ErrNotFound)
		return
	}
	if len(s) > 1 {
		if arr, aerr := m.RegisterArray(s[0]); aerr == nil {
			a = arr
			s = s[1:]
			if r, err = a.Register(s[0]); err != nil {
				return
			}
			s = s[1:]
		}
	}
	if a == nil {
		if len(s) > 2 {
			err = fmt.Errorf("%s: %w", path, ErrNotFound)
			return
		}
		if r, err = m.Register(s[0]); err != nil {
			return
		}
		s = s[1:]
	}
	if len(s) > 0 {
		field = s[0]
		_, err = r.Field(field)
	}
	return
}

// Parse converts text to a logical value of the field: true or false for
// bits, an element name for enumerations, a number for fixed point
// vectors, and an integer literal as accepted by ParseInteger otherwise.
func (f *Field) Parse(s string) (interface{}, error) {
	switch {
	case f.Kind == Bit:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", f.Name, s, ErrType)
		}
		return b, nil
	case f.Kind == Enumeration:
		return f.Element(s)
	case f.Kind == BitVector && f.Interpretation.Fixed:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", f.Name, s, ErrType)
		}
		return x, nil
	}
	n, err := ParseInteger(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	return n, nil
}

// ParseWord parses a register word literal.  Negative literals are
// accepted down to -1<<31 and stored in two's complement.
func ParseWord(s string) (uint32, error) {
	n, err := ParseInteger(s)
	if err != nil {
		return 0, err
	}
	if n < -1<<31 || n > 1<<32-1 {
		return 0, &RangeError{Field: s, Value: n, Min: -1 << 31, Max: uint32(1<<32 - 1)}
	}
	return uint32(n), nil
}

// FormatValue returns the text of a logical value that Parse accepts back.
func FormatValue(v interface{}) string {
	switch t := v.(type) {
	case Element:
		return t.Name
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	}
	return fmt.Sprint(v)
}
