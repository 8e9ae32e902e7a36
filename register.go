// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import "fmt"

// Register is one 32 bit word of non-overlapping fields.
type Register struct {
	Name        string
	Description string
	Mode        Mode
	Fields      []*Field
	// Index is the word index within the map for a plain register and
	// the row number within one element for a register array row.
	Index uint

	m    *Map
	path string
	// Next free bit for the Append* builders.
	bit uint
}

func (r *Register) ItemName() string { return r.Name }
func (*Register) Words() uint         { return 1 }

// Address is the byte address of a plain register.
func (r *Register) Address() uint { return Address(r.Index) }

// Default is the composite default word: every field's raw default at
// its offset.
func (r *Register) Default() (word uint32) {
	for _, f := range r.Fields {
		word |= f.DefaultShifted()
	}
	return
}

// Field returns the field with the given name.
func (r *Register) Field(name string) (*Field, error) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%s: field %q: %w", r.Name, name, ErrNotFound)
}

// FieldFromValue decodes one field of a raw register word.
func (r *Register) FieldFromValue(name string, word uint32) (interface{}, error) {
	f, err := r.Field(name)
	if err != nil {
		return nil, err
	}
	return f.Decode(word)
}

// SetBase returns the word a single field write merges into, given the
// current register word.  Read-write registers merge into current.
// Write-only and pulse registers merge into Default, so every field that
// isn't being set goes back to its default.
func (r *Register) SetBase(current uint32) (uint32, error) {
	switch {
	case !r.Mode.Writable():
		return 0, fmt.Errorf("%s: %w", r.Name, ErrNotWritable)
	case r.Mode.MergesCurrent():
		return current, nil
	}
	return r.Default(), nil
}

// MergeField returns base with the named field replaced by v.
func (r *Register) MergeField(base uint32, name string, v interface{}) (uint32, error) {
	f, err := r.Field(name)
	if err != nil {
		return 0, err
	}
	raw, err := f.Encode(v)
	if err != nil {
		return 0, err
	}
	return Insert(base, f.Offset, f.Width, raw), nil
}

// SetField applies the mode policy: the word to write when only the
// named field is set and current is the register word as last read.
// Callers of write-only and pulse registers may pass any current.
func (r *Register) SetField(current uint32, name string, v interface{}) (uint32, error) {
	base, err := r.SetBase(current)
	if err != nil {
		return 0, err
	}
	return r.MergeField(base, name, v)
}

// Decode returns every field's logical value in declaration order.
func (r *Register) Decode(word uint32) ([]interface{}, error) {
	vs := make([]interface{}, len(r.Fields))
	for i, f := range r.Fields {
		v, err := f.Decode(word)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// AppendBit adds a one bit field after the last field.
func (r *Register) AppendBit(name, description string, def bool) *Field {
	return r.append(&Field{
		Name:        name,
		Description: description,
		Kind:        Bit,
		Width:       1,
		Default:     BoolBits(def),
	})
}

// AppendBitVector adds an unsigned bit vector field.
func (r *Register) AppendBitVector(name, description string, width uint, def uint32) *Field {
	return r.AppendVector(name, description, width, Unsigned, def)
}

// AppendVector adds a bit vector field with the given interpretation and
// logical default.
func (r *Register) AppendVector(name, description string, width uint, in Interpretation, def interface{}) *Field {
	f := r.append(&Field{
		Name:           name,
		Description:    description,
		Kind:           BitVector,
		Width:          width,
		Interpretation: in,
	})
	r.setDefault(f, def)
	return f
}

// AppendUnsigned adds an unsigned integer field of the given width.
func (r *Register) AppendUnsigned(name, description string, width uint, def uint32) *Field {
	f := r.append(&Field{
		Name:        name,
		Description: description,
		Kind:        UnsignedInteger,
		Width:       width,
	})
	r.setDefault(f, def)
	return f
}

// AppendSigned adds a two's complement integer field of the given width.
func (r *Register) AppendSigned(name, description string, width uint, def int32) *Field {
	f := r.append(&Field{
		Name:        name,
		Description: description,
		Kind:        SignedInteger,
		Width:       width,
	})
	r.setDefault(f, def)
	return f
}

// AppendInteger adds an integer field restricted to [min, max].  The range
// decides the width and, if min is negative, makes the field signed.
func (r *Register) AppendInteger(name, description string, min, max, def int64) *Field {
	f := &Field{
		Name:        name,
		Description: description,
		Kind:        UnsignedInteger,
		Ranged:      true,
		Min:         min,
		Max:         max,
	}
	if min < 0 {
		f.Kind = SignedInteger
	}
	w, ok := integerWidth(min, max)
	if min > max || !ok {
		r.errorf(name, "integer range [%d, %d] does not fit in a register", min, max)
		w = 1
	}
	f.Width = w
	r.append(f)
	r.setDefault(f, def)
	return f
}

// AppendEnumeration adds an enumeration with ordinals assigned in element
// order starting at zero.  The default is an element name.
func (r *Register) AppendEnumeration(name, description, def string, elements ...string) *Field {
	f := &Field{
		Name:        name,
		Description: description,
		Kind:        Enumeration,
		Width:       enumerationWidth(len(elements)),
	}
	for i, e := range elements {
		f.Elements = append(f.Elements, Element{Name: e, Value: uint32(i)})
	}
	if len(elements) == 0 {
		r.errorf(name, "enumeration must have at least one element")
	}
	r.append(f)
	r.setDefault(f, def)
	return f
}

// AppendField adds a field as given, keeping an explicit Offset.  The
// next Append* field starts after the highest bit used so far.
func (r *Register) AppendField(f *Field) *Field {
	r.mutable()
	r.Fields = append(r.Fields, f)
	if end := f.Offset + f.Width; end > r.bit {
		r.bit = end
	}
	return f
}

func (r *Register) append(f *Field) *Field {
	r.mutable()
	f.Offset = r.bit
	r.Fields = append(r.Fields, f)
	r.bit += f.Width
	if r.bit > WordBits {
		r.errorf(f.Name, "maximum register width exceeded")
	}
	return f
}

func (r *Register) setDefault(f *Field, def interface{}) {
	raw, err := f.Encode(def)
	if err != nil {
		r.errorf(f.Name, "default: %v", err)
		return
	}
	f.Default = raw
}

func (r *Register) mutable() {
	if r.m != nil {
		r.m.mutable()
	}
}

func (r *Register) errorf(field, format string, args ...interface{}) {
	if r.m != nil {
		r.m.errs.Add(r.path+"."+field, format, args...)
	}
}

func (r *Register) String() string {
	return fmt.Sprintf("%s %s index %d default 0x%08x", r.Name, r.Mode, r.Index, r.Default())
}
