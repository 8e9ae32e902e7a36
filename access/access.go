// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package access reads and writes the registers of a validated map in a
// memory image.
//
// An Accessor keeps no state besides the map and image.  A read-write
// field set is an explicit read-modify-write of the image word.  A field
// set of a write-only or write-pulse register writes the register default
// with just that field replaced, so two such sets of the same register
// don't accumulate and concurrent sets of one register race.  Callers
// sharing a register between goroutines must serialize them.
package access

import (
	"fmt"

	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/image"
)

type Accessor struct {
	Map   *regmap.Map
	Image image.Image
}

// New returns an accessor of m's registers in img.
func New(m *regmap.Map, img image.Image) (*Accessor, error) {
	if !m.Validated() {
		return nil, fmt.Errorf("%s: %w", m.Name, regmap.ErrNotValidated)
	}
	if err := image.CheckLayout(m, img); err != nil {
		return nil, err
	}
	return &Accessor{m, img}, nil
}

// Ref is one concrete register occurrence.
type Ref struct {
	Register *regmap.Register
	Index    uint
	// Name is "reg" or "array[k].reg".
	Name string
}

func (r Ref) Address() uint { return regmap.Address(r.Index) }

func (r Ref) String() string {
	return fmt.Sprintf("%s@0x%x", r.Name, r.Address())
}

// Lookup returns a reference to the named plain register.
func (a *Accessor) Lookup(name string) (Ref, error) {
	r, err := a.Map.Register(name)
	if err != nil {
		return Ref{}, err
	}
	return Ref{r, r.Index, r.Name}, nil
}

// LookupArray returns a reference to the named row register of element k.
func (a *Accessor) LookupArray(array, name string, k uint) (Ref, error) {
	ra, err := a.Map.RegisterArray(array)
	if err != nil {
		return Ref{}, err
	}
	r, err := ra.Register(name)
	if err != nil {
		return Ref{}, err
	}
	i, err := ra.RegisterIndex(name, k)
	if err != nil {
		return Ref{}, err
	}
	return Ref{r, i, fmt.Sprintf("%s[%d].%s", array, k, name)}, nil
}

// Resolve looks up a dotted path, "reg", "reg.field", "array.reg" or
// "array.reg.field", and returns the register reference and field name,
// if any.  Element k applies to array paths only.
func (a *Accessor) Resolve(path string, k uint) (Ref, string, error) {
	ra, r, field, err := a.Map.Resolve(path)
	if err != nil {
		return Ref{}, "", err
	}
	if ra == nil {
		return Ref{r, r.Index, r.Name}, field, nil
	}
	ref, err := a.LookupArray(ra.Name, r.Name, k)
	return ref, field, err
}

// Get reads the register word.
func (a *Accessor) Get(r Ref) (uint32, error) {
	if !r.Register.Mode.Readable() {
		return 0, fmt.Errorf("%s: %w", r.Name, regmap.ErrNotReadable)
	}
	return a.Image.Load32(r.Address())
}

// Set writes w verbatim.
func (a *Accessor) Set(r Ref, w uint32) error {
	if !r.Register.Mode.Writable() {
		return fmt.Errorf("%s: %w", r.Name, regmap.ErrNotWritable)
	}
	return a.Image.Store32(r.Address(), w)
}

// Reset writes the register default.
func (a *Accessor) Reset(r Ref) error { return a.Set(r, r.Register.Default()) }

// GetField reads the register and decodes the named field.
func (a *Accessor) GetField(r Ref, field string) (interface{}, error) {
	f, err := r.Register.Field(field)
	if err != nil {
		return nil, err
	}
	w, err := a.Get(r)
	if err != nil {
		return nil, err
	}
	return f.Decode(w)
}

// SetField writes the named field with the register's merge rule.
func (a *Accessor) SetField(r Ref, field string, v interface{}) error {
	if !r.Register.Mode.Writable() {
		return fmt.Errorf("%s: %w", r.Name, regmap.ErrNotWritable)
	}
	var current uint32
	if r.Register.Mode.MergesCurrent() {
		var err error
		if current, err = a.Get(r); err != nil {
			return err
		}
	}
	w, err := r.Register.SetField(current, field, v)
	if err != nil {
		return err
	}
	return a.Image.Store32(r.Address(), w)
}

// FieldFromValue decodes the named field of word without an image access.
func (a *Accessor) FieldFromValue(r Ref, field string, word uint32) (interface{}, error) {
	return r.Register.FieldFromValue(field, word)
}
