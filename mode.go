// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import "fmt"

// Mode is the bus access contract of a register.
type Mode int

const (
	ReadWrite Mode = iota
	ReadOnly
	WriteOnly
	WritePulse
	ReadWriteWritePulse
)

var modeNames = [...]string{
	ReadWrite:           "r_w",
	ReadOnly:            "r",
	WriteOnly:           "w",
	WritePulse:          "wpulse",
	ReadWriteWritePulse: "r_wpulse",
}

var modeDescriptions = [...]string{
	ReadWrite:           "Read, Write",
	ReadOnly:            "Read",
	WriteOnly:           "Write",
	WritePulse:          "Write-pulse",
	ReadWriteWritePulse: "Read, Write-pulse",
}

func (m Mode) valid() bool { return m >= ReadWrite && m <= ReadWriteWritePulse }

// String returns the short mode name, e.g. "r_w".
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Readable description, e.g. "Read, Write-pulse".
func (m Mode) Description() string {
	if !m.valid() {
		return m.String()
	}
	return modeDescriptions[m]
}

// ParseMode returns the mode with the given short name.
func ParseMode(s string) (Mode, error) {
	for m, n := range modeNames {
		if n == s {
			return Mode(m), nil
		}
	}
	return ReadWrite, fmt.Errorf("mode %q: %w", s, ErrNotFound)
}

// Readable is true if the bus may read the register word.
func (m Mode) Readable() bool {
	return m == ReadWrite || m == ReadOnly || m == ReadWriteWritePulse
}

// Writable is true if the bus may write the register word.
func (m Mode) Writable() bool {
	return m == ReadWrite || m == WriteOnly || m == WritePulse ||
		m == ReadWriteWritePulse
}

// MergesCurrent is true if a single field write merges into the current
// register word.  Otherwise the write merges into the register default,
// since the word either can't be read back or holds self clearing pulses.
func (m Mode) MergesCurrent() bool { return m == ReadWrite }
