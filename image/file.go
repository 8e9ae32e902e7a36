// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux
// +build linux

package image

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/platinasystems/regmap"
	"golang.org/x/sys/unix"
)

// File is a shared memory mapping of a register image file.  Stores are
// seen by every process mapping the same file, much like a /dev/mem
// mapping of real registers.
type File struct {
	Bytes
	f *os.File
}

// OpenFile maps the named file, creating or extending it to hold n words.
// Words are little endian.
func OpenFile(name string, n uint) (*File, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	size := int64(regmap.Address(n))
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.Size() < size {
		if err = f.Truncate(size); err != nil {
			f.Close()
			return nil, err
		}
	} else {
		size = fi.Size()
	}
	if size == 0 {
		return &File{Bytes: Bytes{Order: binary.LittleEndian}, f: f}, nil
	}
	buf, err := unix.Mmap(int(f.Fd()), 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", name, err)
	}
	return &File{
		Bytes: Bytes{Buf: buf, Order: binary.LittleEndian},
		f:     f,
	}, nil
}

// Sync flushes stores to the file.
func (f *File) Sync() error {
	if len(f.Buf) == 0 {
		return nil
	}
	return unix.Msync(f.Buf, unix.MS_SYNC)
}

func (f *File) Close() error {
	var err error
	if len(f.Buf) > 0 {
		err = unix.Munmap(f.Buf)
		f.Buf = nil
	}
	if cerr := f.f.Close(); err == nil {
		err = cerr
	}
	return err
}
