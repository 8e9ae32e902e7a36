// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import "fmt"

// Item is a top level map entry: *Register or *RegisterArray.
type Item interface {
	ItemName() string
	// Number of register words occupied.
	Words() uint
}

// Map is the ordered register map of one module.
type Map struct {
	Name      string
	Items     []Item
	Constants []*Constant

	errs      ErrorList
	validated bool
}

func New(name string) *Map { return &Map{Name: name} }

// AppendRegister adds a plain register after the last item.
func (m *Map) AppendRegister(name string, mode Mode, description string) *Register {
	m.mutable()
	r := &Register{
		Name:        name,
		Description: description,
		Mode:        mode,
		m:           m,
		path:        name,
	}
	m.Items = append(m.Items, r)
	m.allocate()
	return r
}

// AppendRegisterArray adds an array after the last item.  Rows are added
// with (*RegisterArray).AppendRegister.
func (m *Map) AppendRegisterArray(name string, length uint, description string) *RegisterArray {
	m.mutable()
	a := &RegisterArray{
		Name:        name,
		Description: description,
		Length:      length,
		m:           m,
	}
	m.Items = append(m.Items, a)
	m.allocate()
	return a
}

// Register returns the plain register with the given name.
func (m *Map) Register(name string) (*Register, error) {
	for _, it := range m.Items {
		if r, ok := it.(*Register); ok && r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%s: register %q: %w", m.Name, name, ErrNotFound)
}

// RegisterArray returns the register array with the given name.
func (m *Map) RegisterArray(name string) (*RegisterArray, error) {
	for _, it := range m.Items {
		if a, ok := it.(*RegisterArray); ok && a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%s: register array %q: %w", m.Name, name, ErrNotFound)
}

// RegisterIndex is the word index of a plain register.
func (m *Map) RegisterIndex(name string) (uint, error) {
	r, err := m.Register(name)
	if err != nil {
		return 0, err
	}
	return r.Index, nil
}

// ArrayRegisterIndex is the word index of the named row register of
// element k of the named array.
func (m *Map) ArrayRegisterIndex(array, name string, k uint) (uint, error) {
	a, err := m.RegisterArray(array)
	if err != nil {
		return 0, err
	}
	return a.RegisterIndex(name, k)
}

// Validated is true once Validate succeeded; the map is immutable after.
func (m *Map) Validated() bool { return m.validated }

func (m *Map) mutable() {
	if m.validated {
		panic(fmt.Errorf("regmap %s: modified after validation", m.Name))
	}
}

func (m *Map) String() string {
	return fmt.Sprintf("%s: %d items, %d words, %d constants",
		m.Name, len(m.Items), m.WordCount(), len(m.Constants))
}
