// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import "fmt"

// RegisterArray repeats one row of registers Length times.  Element k row
// j has word index BaseIndex + k*RowSize() + j.
type RegisterArray struct {
	Name        string
	Description string
	Length      uint
	// Row templates; each Register.Index is its row number.
	Registers []*Register
	BaseIndex uint

	m *Map
}

func (a *RegisterArray) ItemName() string { return a.Name }

// RowSize is the number of registers in one element.
func (a *RegisterArray) RowSize() uint { return uint(len(a.Registers)) }

// Words is the number of register words the whole array occupies.
func (a *RegisterArray) Words() uint { return a.Length * a.RowSize() }

// StartIndex is the word index of the first register of element k.
func (a *RegisterArray) StartIndex(k uint) uint { return a.BaseIndex + k*a.RowSize() }

// Index is the word index of element k row j.
func (a *RegisterArray) Index(k, j uint) uint { return a.StartIndex(k) + j }

// Address is the byte address of element k row j.
func (a *RegisterArray) Address(k, j uint) uint { return Address(a.Index(k, j)) }

// Register returns the row register with the given name.
func (a *RegisterArray) Register(name string) (*Register, error) {
	for _, r := range a.Registers {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%s: register %q: %w", a.Name, name, ErrNotFound)
}

// RegisterIndex is the word index of the named row register of element k.
func (a *RegisterArray) RegisterIndex(name string, k uint) (uint, error) {
	r, err := a.Register(name)
	if err != nil {
		return 0, err
	}
	if k >= a.Length {
		return 0, &RangeError{Field: a.Name, Value: k, Min: 0, Max: int64(a.Length) - 1}
	}
	return a.Index(k, r.Index), nil
}

// AppendRegister adds a register to the row.
func (a *RegisterArray) AppendRegister(name string, mode Mode, description string) *Register {
	if a.m != nil {
		a.m.mutable()
	}
	r := &Register{
		Name:        name,
		Description: description,
		Mode:        mode,
		Index:       a.RowSize(),
		m:           a.m,
		path:        a.Name + "." + name,
	}
	a.Registers = append(a.Registers, r)
	if a.m != nil {
		a.m.allocate()
	}
	return r
}

func (a *RegisterArray) String() string {
	return fmt.Sprintf("%s[%d] index %d rows %d", a.Name, a.Length, a.BaseIndex, a.RowSize())
}
