// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/internal/test"
)

func TestWords(t *testing.T) {
	assert := test.Assert{TB: t}
	w := NewWords(4)
	assert.True(w.Size() == 16)
	assert.Nil(w.Store32(12, 0xdeadbeef))
	v, err := w.Load32(12)
	assert.Nil(err)
	assert.Word(v, 0xdeadbeef)
	assert.Word(w[3], 0xdeadbeef)

	_, err = w.Load32(16)
	assert.Error(err, ErrRange)
	_, err = w.Load32(^uint(0) &^ (regmap.WordBytes - 1))
	assert.Error(err, ErrRange)
	_, err = NewWords(0).Load32(0)
	assert.Error(err, ErrRange)
	assert.Error(w.Store32(2, 0), ErrAlign)
}

func TestBytes(t *testing.T) {
	assert := test.Assert{TB: t}
	for _, x := range []struct {
		order binary.ByteOrder
		want  []byte
	}{
		{binary.LittleEndian, []byte{0, 0, 0, 0, 4, 3, 2, 1}},
		{binary.BigEndian, []byte{0, 0, 0, 0, 1, 2, 3, 4}},
	} {
		b := &Bytes{Buf: make([]byte, 9), Order: x.order}
		assert.True(b.Size() == 8)
		assert.Nil(b.Store32(4, 0x01020304))
		assert.Equal(string(b.Buf[:8]), string(x.want))
		v, err := b.Load32(4)
		assert.Nil(err)
		assert.Word(v, 0x01020304)
		assert.Error(b.Store32(8, 0), ErrRange)
	}
}

func TestCheckLayout(t *testing.T) {
	assert := test.Assert{TB: t}
	m := regmap.New("m")
	m.AppendRegister("a", regmap.ReadWrite, "")
	m.AppendRegisterArray("b", 2, "").AppendRegister("c", regmap.ReadOnly, "")
	assert.Nil(CheckLayout(m, NewWords(3)))
	assert.Nil(CheckLayout(m, NewWords(4)))
	assert.Error(CheckLayout(m, NewWords(2)), ErrRange)
}

func TestFile(t *testing.T) {
	assert := test.Assert{TB: t}
	name := filepath.Join(t.TempDir(), "regs")
	f, err := OpenFile(name, 8)
	assert.Nil(err)
	assert.True(f.Size() == 32)
	assert.Nil(f.Store32(28, 42))
	assert.Nil(f.Sync())

	g, err := OpenFile(name, 2)
	assert.Nil(err)
	assert.True(g.Size() == 32)
	v, err := g.Load32(28)
	assert.Nil(err)
	assert.Word(v, 42)

	assert.Nil(f.Store32(0, 7))
	v, err = g.Load32(0)
	assert.Nil(err)
	assert.Word(v, 7)

	assert.Nil(g.Close())
	assert.Nil(f.Close())
}
