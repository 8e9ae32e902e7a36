// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import "fmt"

// Allocate returns the first word index of each item, packing items
// densely in declaration order starting at zero, and the total word count.
// An empty array takes no words and doesn't move the items after it.
func Allocate(items []Item) (bases []uint, total uint) {
	bases = make([]uint, len(items))
	for i, it := range items {
		bases[i] = total
		total += it.Words()
	}
	return
}

// WordCount is the size of the map in 32 bit words.  The memory image of
// the map is 4*WordCount bytes.
func (m *Map) WordCount() uint {
	_, n := Allocate(m.Items)
	return n
}

// Size is the size of the map in bytes.
func (m *Map) Size() uint { return Address(m.WordCount()) }

func (m *Map) allocate() {
	bases, _ := Allocate(m.Items)
	for i, it := range m.Items {
		switch v := it.(type) {
		case *Register:
			v.Index = bases[i]
		case *RegisterArray:
			v.BaseIndex = bases[i]
		}
	}
}

// Slot is one concrete register occurrence.
type Slot struct {
	Index    uint
	Register *Register
	// Array and Element locate array rows; Array is nil for a plain register.
	Array   *RegisterArray
	Element uint
}

func (s Slot) Address() uint { return Address(s.Index) }

// Name is "reg" for plain registers and "array[k].reg" for array rows.
func (s Slot) Name() string {
	if s.Array == nil {
		return s.Register.Name
	}
	return fmt.Sprintf("%s[%d].%s", s.Array.Name, s.Element, s.Register.Name)
}

// Layout expands the map into its register occurrences in index order:
// all rows of element 0 of an array, then all rows of element 1, and so on.
func (m *Map) Layout() []Slot {
	bases, total := Allocate(m.Items)
	slots := make([]Slot, 0, total)
	for i, it := range m.Items {
		switch v := it.(type) {
		case *Register:
			slots = append(slots, Slot{Index: bases[i], Register: v})
		case *RegisterArray:
			index := bases[i]
			for k := uint(0); k < v.Length; k++ {
				for _, r := range v.Registers {
					slots = append(slots, Slot{
						Index:    index,
						Register: r,
						Array:    v,
						Element:  k,
					})
					index++
				}
			}
		}
	}
	return slots
}
