// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package image provides memory images of register maps: the word
// addressable storage that register accessors load from and store to.
package image

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/platinasystems/regmap"
)

var (
	ErrAlign = errors.New("unaligned register address")
	ErrRange = errors.New("register address out of range")
)

// Image is byte addressed storage of 32 bit register words.
type Image interface {
	// Size in bytes.
	Size() uint
	Load32(addr uint) (uint32, error)
	Store32(addr uint, v uint32) error
}

// Check returns an error unless addr is a word aligned address of an img
// of the given size.
func Check(size, addr uint) error {
	if addr%regmap.WordBytes != 0 {
		return fmt.Errorf("0x%x: %w", addr, ErrAlign)
	}
	if size < regmap.WordBytes || addr > size-regmap.WordBytes {
		return fmt.Errorf("0x%x >= 0x%x: %w", addr, size, ErrRange)
	}
	return nil
}

// CheckLayout returns an error if img can't hold every register of m.
func CheckLayout(m *regmap.Map, img Image) error {
	if got, want := img.Size(), m.Size(); got < want {
		return fmt.Errorf("%s: image size 0x%x < 0x%x: %w",
			m.Name, got, want, ErrRange)
	}
	return nil
}

// Words is an image in process memory.
type Words []uint32

// NewWords returns a zeroed image of n words.
func NewWords(n uint) Words { return make(Words, n) }

func (w Words) Size() uint { return regmap.Address(uint(len(w))) }

func (w Words) Load32(addr uint) (uint32, error) {
	if err := Check(w.Size(), addr); err != nil {
		return 0, err
	}
	return w[addr/regmap.WordBytes], nil
}

func (w Words) Store32(addr uint, v uint32) error {
	if err := Check(w.Size(), addr); err != nil {
		return err
	}
	w[addr/regmap.WordBytes] = v
	return nil
}

// Bytes is an image over a byte buffer in a fixed byte order, such as a
// DMA buffer or a register dump.
type Bytes struct {
	Buf   []byte
	Order binary.ByteOrder
}

func (b *Bytes) Size() uint { return uint(len(b.Buf)) &^ (regmap.WordBytes - 1) }

func (b *Bytes) Load32(addr uint) (uint32, error) {
	if err := Check(b.Size(), addr); err != nil {
		return 0, err
	}
	return b.Order.Uint32(b.Buf[addr:]), nil
}

func (b *Bytes) Store32(addr uint, v uint32) error {
	if err := Check(b.Size(), addr); err != nil {
		return err
	}
	b.Order.PutUint32(b.Buf[addr:], v)
	return nil
}
