// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import "math"

// Validate checks the whole map for model defects and, if there are
// none, freezes it.  The returned error is an ErrorList with every defect
// in declaration order.
func (m *Map) Validate() error {
	if m.validated {
		return nil
	}
	m.allocate()
	errs := append(ErrorList(nil), m.errs...)

	if !isIdentifier(m.Name) {
		errs.Add(m.Name, "invalid map name")
	}
	items := make(map[string]bool)
	for _, it := range m.Items {
		name := it.ItemName()
		if !isIdentifier(name) {
			errs.Add(name, "invalid name")
		}
		if items[name] {
			errs.Add(name, "duplicate register name")
		}
		items[name] = true
		switch v := it.(type) {
		case *Register:
			validateRegister(&errs, name, v)
		case *RegisterArray:
			if len(v.Registers) == 0 {
				errs.Add(name, "register array has no registers")
			}
			rows := make(map[string]bool)
			for _, r := range v.Registers {
				path := name + "." + r.Name
				if !isIdentifier(r.Name) {
					errs.Add(path, "invalid name")
				}
				if rows[r.Name] {
					errs.Add(path, "duplicate register name")
				}
				rows[r.Name] = true
				validateRegister(&errs, path, r)
			}
		default:
			errs.Add(name, "unknown item type %T", it)
		}
	}

	consts := make(map[string]bool)
	for _, c := range m.Constants {
		if !isIdentifier(c.Name) {
			errs.Add(c.Name, "invalid constant name")
		}
		if consts[c.Name] {
			errs.Add(c.Name, "duplicate constant name")
		}
		consts[c.Name] = true
		if c.Kind() == ConstInvalid {
			errs.Add(c.Name, "unsupported constant type %T", c.Value)
		}
		if x, ok := c.Value.(float64); ok && (math.IsNaN(x) || math.IsInf(x, 0)) {
			errs.Add(c.Name, "float %v is not finite", x)
		}
	}

	if err := errs.Err(); err != nil {
		return err
	}
	m.validated = true
	return nil
}

func validateRegister(errs *ErrorList, path string, r *Register) {
	if !r.Mode.valid() {
		errs.Add(path, "invalid mode %s", r.Mode)
	}
	var used uint32
	owner := make(map[uint]string)
	names := make(map[string]bool)
	for _, f := range r.Fields {
		fpath := path + "." + f.Name
		if !isIdentifier(f.Name) {
			errs.Add(fpath, "invalid name")
		}
		if names[f.Name] {
			errs.Add(fpath, "duplicate field name")
		}
		names[f.Name] = true
		if f.Width < 1 || f.Width > WordBits {
			errs.Add(fpath, "width %d not in [1, %d]", f.Width, WordBits)
			continue
		}
		if f.Offset+f.Width > WordBits {
			errs.Add(fpath, "bits [%d:%d] exceed the register word", f.Offset+f.Width-1, f.Offset)
			continue
		}
		if overlap := used & f.Mask(); overlap != 0 {
			for b := f.Offset; b < f.Offset+f.Width; b++ {
				if overlap&(1<<b) != 0 {
					errs.Add(fpath, "overlaps field %s at bit %d", owner[b], b)
					break
				}
			}
		}
		for b := f.Offset; b < f.Offset+f.Width; b++ {
			if _, ok := owner[b]; !ok {
				owner[b] = f.Name
			}
		}
		used |= f.Mask()
		if f.Default&^f.MaskAtBase() != 0 {
			errs.Add(fpath, "default 0x%x does not fit in %d bits", f.Default, f.Width)
		}
		validateField(errs, fpath, f)
	}
}

func validateField(errs *ErrorList, path string, f *Field) {
	switch f.Kind {
	case Bit:
		if f.Width != 1 {
			errs.Add(path, "bit field width %d", f.Width)
		}
	case BitVector:
		if f.Interpretation.Fixed && f.Interpretation.FractionBits > f.Width {
			errs.Add(path, "%d fraction bits exceed width %d",
				f.Interpretation.FractionBits, f.Width)
		}
	case SignedInteger, UnsignedInteger:
		if !f.Ranged {
			break
		}
		var lo, hi int64
		if f.Kind == SignedInteger {
			lo, hi = SignedRange(f.Width)
		} else {
			hi = int64(UnsignedMax(f.Width))
		}
		if f.Min > f.Max || f.Min < lo || f.Max > hi {
			errs.Add(path, "range [%d, %d] does not fit %d bit %s",
				f.Min, f.Max, f.Width, f.Kind)
		}
	case Enumeration:
		if len(f.Elements) == 0 {
			errs.Add(path, "enumeration has no elements")
		}
		names := make(map[string]bool)
		values := make(map[uint32]string)
		for _, e := range f.Elements {
			if !isIdentifier(e.Name) {
				errs.Add(path, "invalid element name %q", e.Name)
			}
			if names[e.Name] {
				errs.Add(path, "duplicate element %s", e.Name)
			}
			names[e.Name] = true
			if other, ok := values[e.Value]; ok {
				errs.Add(path, "elements %s and %s share ordinal %d", other, e.Name, e.Value)
			}
			values[e.Value] = e.Name
			if e.Value > f.MaskAtBase() {
				errs.Add(path, "element %s ordinal %d does not fit in %d bits",
					e.Name, e.Value, f.Width)
			}
		}
	default:
		errs.Add(path, "invalid field kind %s", f.Kind)
		return
	}
	if _, err := f.DefaultValue(); err != nil {
		errs.Add(path, "default: %v", err)
	}
}

func isIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
