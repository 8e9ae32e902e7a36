// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caesar

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/access"
	"github.com/platinasystems/regmap/image"
	"github.com/platinasystems/regmap/internal/example"
	"github.com/platinasystems/regmap/internal/test"
)

// pair holds a generated register image and an accessor of a second
// image of the same map.  Each step sets both the same way.
type pair struct {
	test.Assert
	regs  Regs
	words image.Words
	a     *access.Accessor
}

func newPair(t *testing.T) *pair {
	p := &pair{
		Assert: test.Assert{TB: t},
		regs:   NewRegs(),
		words:  image.NewWords(WordCount),
	}
	a, err := access.New(example.Caesar(), p.words)
	p.Nil(err)
	p.a = a
	return p
}

// same asserts that both images hold identical words.
func (p *pair) same() {
	p.Helper()
	for i := range p.regs {
		if p.regs[i] != p.words[i] {
			p.Fatalf("word %d: 0x%08x != 0x%08x", i, p.regs[i], p.words[i])
		}
	}
}

func (p *pair) ref(path string, k uint) access.Ref {
	p.Helper()
	r, _, err := p.a.Resolve(path, k)
	p.Nil(err)
	return r
}

func (p *pair) reset(path string, k uint) {
	p.Helper()
	p.Nil(p.a.Reset(p.ref(path, k)))
}

func (p *pair) set(path string, k uint, field string, v interface{}) {
	p.Helper()
	p.Nil(p.a.SetField(p.ref(path, k), field, v))
}

func (p *pair) get(path string, k uint, field string) interface{} {
	p.Helper()
	v, err := p.a.GetField(p.ref(path, k), field)
	p.Nil(err)
	return v
}

func panics(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, target) {
			t.Fatalf("%v\n\tis not %q", err, target.Error())
		}
	}()
	f()
}

func TestLayout(t *testing.T) {
	assert := test.Assert{TB: t}
	m := example.Caesar()
	assert.True(m.WordCount() == WordCount)
	assert.True(unsafe.Sizeof(Registers{}) == regmap.WordBytes*WordCount)
	assert.True(unsafe.Offsetof(Registers{}.Dummies) == regmap.WordBytes*DummiesIndex)
	assert.True(unsafe.Offsetof(Registers{}.After) == AfterAddress)
	assert.True(unsafe.Offsetof(Registers{}.Gain) == GainAddress)
	assert.True(unsafe.Offsetof(Registers{}.Tail) == TailAddress)

	for _, x := range []struct {
		name string
		def  uint32
	}{
		{"conf", ConfDefault},
		{"command", CommandDefault},
		{"trigger", TriggerDefault},
		{"gain", GainDefault},
	} {
		r, err := m.Register(x.name)
		assert.Nil(err)
		assert.Word(r.Default(), x.def)
	}
	assert.Word(DummiesFirstDefault, 0x3200)
	assert.True(DummiesFirstIndex(2) == 5)
	assert.True(DummiesSecondAddress(2) == 0x18)
}

func TestReset(t *testing.T) {
	p := newPair(t)
	p.regs.ResetConf()
	p.reset("conf", 0)
	for k := uint(0); k < DummiesLength; k++ {
		p.regs.ResetDummiesFirst(k)
		p.reset("dummies.first", k)
	}
	p.regs.ResetAfter()
	p.reset("after", 0)
	p.regs.ResetCommand()
	p.reset("command", 0)
	p.regs.ResetTrigger()
	p.reset("trigger", 0)
	p.regs.ResetIrq()
	p.reset("irq", 0)
	p.regs.ResetGain()
	p.reset("gain", 0)
	p.same()
	p.Word(p.regs[ConfIndex], 0x00014846)
	p.Word(p.regs[CommandIndex], 0x00040000)
	p.Word(p.regs[TriggerIndex], 0x0000000e)

	e, err := p.regs.ConfPlainEnumeration()
	p.Nil(err)
	p.Equal(e.String(), "third")
	p.Value(p.regs.GainCoarse(), 1.5)
	p.Value(p.regs.GainFine(), -0.25)
	limit, err := p.regs.GainLimit()
	p.Nil(err)
	p.Value(limit, uint32(100))
	p.Value(p.get("gain", 0, "limit"), uint32(100))
}

func TestReadWrite(t *testing.T) {
	p := newPair(t)
	p.regs.ResetConf()
	p.reset("conf", 0)
	p.regs.SetConfPlainInteger(-5)
	p.set("conf", 0, "plain_integer", int32(-5))
	p.regs.SetConfPlainEnumeration(ConfPlainEnumerationFifth)
	p.set("conf", 0, "plain_enumeration", "fifth")
	p.regs.SetConfPlainBitA(true)
	p.set("conf", 0, "plain_bit_a", true)
	p.same()
	p.Word(p.regs[ConfIndex], 0x00019f67)
	p.Value(p.regs.ConfPlainInteger(), int32(-5))
	p.Value(p.get("conf", 0, "plain_integer"), int32(-5))
	p.Value(p.regs.ConfPlainBitVector(), uint32(3))
	p.True(p.regs.ConfPlainBitB())

	p.regs.SetGainCoarse(2.75)
	p.set("gain", 0, "coarse", 2.75)
	p.regs.SetGainFine(-1.5)
	p.set("gain", 0, "fine", -1.5)
	p.same()
	p.Value(p.regs.GainFine(), -1.5)
	p.Value(p.get("gain", 0, "fine"), -1.5)

	p.regs.SetAfterScratch(-1)
	p.set("after", 0, "scratch", int32(-1))
	p.same()
	p.Word(p.regs.After(), 0xffffffff)
}

func TestWriteOnly(t *testing.T) {
	p := newPair(t)
	p.regs.SetCommandAddress(0x1234)
	p.set("command", 0, "address", uint32(0x1234))
	p.same()
	p.Word(p.regs[CommandIndex], 0x000448d0)

	// the address returns to its default
	p.regs.SetCommandOpcode(CommandOpcodeErase)
	p.set("command", 0, "opcode", "erase")
	p.same()
	p.Word(p.regs[CommandIndex], 0x00040003)
	v, err := CommandOpcodeFromValue(p.regs[CommandIndex])
	p.Nil(err)
	p.Equal(v.String(), "erase")

	p.regs.SetIrqClear(true)
	p.set("irq", 0, "clear", true)
	p.same()
	p.Word(p.regs[IrqIndex], 0x00000002)
	p.regs.SetIrqSource(5)
	p.set("irq", 0, "source", uint32(5))
	p.same()
	p.Word(p.regs[IrqIndex], 0x00000014)
	p.False(p.regs.IrqClear())

	p.regs.SetTriggerStart(true)
	p.set("trigger", 0, "start", true)
	p.same()
	p.Word(p.regs[TriggerIndex], 0x0000000f)
}

func TestSigned(t *testing.T) {
	p := newPair(t)
	p.regs[TopIndex] = 0x80 << 24
	p.words[TopIndex] = 0x80 << 24
	p.Value(p.regs.TopHigh(), int32(-128))
	p.Value(p.get("top", 0, "high"), int32(-128))
	p.Value(p.regs.TopLow(), uint32(0))
	p.Value(TopHighFromValue(0x7f<<24), int32(127))
}

func TestArray(t *testing.T) {
	p := newPair(t)
	p.regs.SetDummiesFirstArrayEnumeration(1, DummiesFirstArrayEnumerationElement1)
	p.set("dummies.first", 1, "array_enumeration", "element1")
	p.regs.SetDummiesFirstArrayInteger(2, -100)
	p.set("dummies.first", 2, "array_integer", int32(-100))
	p.same()
	p.Word(p.regs[DummiesFirstIndex(1)], 0x00008000)
	p.Word(p.words[3], 0x00008000)

	e, err := p.regs.DummiesFirstArrayEnumeration(1)
	p.Nil(err)
	p.True(e == DummiesFirstArrayEnumerationElement1)
	e, err = DummiesFirstArrayEnumerationFromValue(p.regs.DummiesFirst(1))
	p.Nil(err)
	p.Equal(e.String(), "element1")
	p.Equal(p.get("dummies.first", 1, "array_enumeration").(regmap.Element).Name,
		"element1")
	n, err := p.regs.DummiesFirstArrayInteger(2)
	p.Nil(err)
	p.Value(n, int32(-100))

	p.words[DummiesSecondIndex(0)] = 0x0001_0007
	p.regs[DummiesSecondIndex(0)] = 0x0001_0007
	p.Value(p.regs.DummiesSecondCount(0), uint32(7))
	p.Value(p.get("dummies.second", 0, "count"), uint32(7))
	p.True(p.regs.DummiesSecondValid(0))
}

func TestDomain(t *testing.T) {
	assert := test.Assert{TB: t}
	regs := NewRegs()
	regs[ConfIndex] = 7 << ConfPlainEnumerationShift
	e, err := regs.ConfPlainEnumeration()
	assert.Error(err, regmap.ErrDomain)
	assert.Equal(e.String(), "ConfPlainEnumeration(7)")

	regs[GainIndex] = 5 << GainLimitShift
	_, err = regs.GainLimit()
	assert.Error(err, regmap.ErrDomain)

	panics(t, regmap.ErrRange, func() { regs.SetGainLimit(5) })
	panics(t, regmap.ErrRange, func() { regs.SetConfPlainBitVector(16) })
	panics(t, regmap.ErrRange, func() { regs.SetGainCoarse(16) })
	panics(t, regmap.ErrRange, func() { regs.SetDummiesFirstArrayInteger(0, 101) })
	panics(t, regmap.ErrRange, func() { regs.DummiesFirst(DummiesLength) })
	panics(t, regmap.ErrRange, func() { Dummies2UnusedIndex(0) })
	panics(t, regmap.ErrDomain, func() { regs.SetCommandOpcode(CommandOpcode(9)) })
}
