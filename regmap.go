// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regmap models a memory mapped register interface: registers of
// bit fields, register arrays and named constants.  It assigns word
// addresses to every register occurrence and defines the bit exact
// encode, decode and merge-on-write rules that accessors and code
// generators share.
//
// A Map is built once, checked with Validate, and is immutable after that.
// Everything in this package is a pure function of the model, so a
// validated Map may be used from any number of goroutines.  The memory
// image the model describes is not protected by this package; see the
// access package.
package regmap

// Register words are 32 bits wide and 4 bytes apart.
const (
	WordBits  = 32
	WordBytes = 4
)

// Address returns the byte address of the register word with the given index.
func Address(index uint) uint { return WordBytes * index }
