// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package example builds the register maps used by tests and by the
// regmap command.
package example

import (
	"fmt"

	"github.com/platinasystems/regmap"
)

// Maps by name.
var Maps = map[string]func() *regmap.Map{
	"caesar": Caesar,
}

// Caesar returns a validated map that exercises every field kind, every
// mode, register arrays and constants.
func Caesar() *regmap.Map {
	m := regmap.New("caesar")

	conf := m.AppendRegister("conf", regmap.ReadWrite, "configuration")
	conf.AppendBit("plain_bit_a", "", false)
	conf.AppendBitVector("plain_bit_vector", "", 4, 3)
	conf.AppendSigned("plain_integer", "", 8, 66)
	conf.AppendEnumeration("plain_enumeration", "", "third",
		"first", "second", "third", "fourth", "fifth")
	conf.AppendBit("plain_bit_b", "", true)

	dummies := m.AppendRegisterArray("dummies", 3, "per channel registers")
	first := dummies.AppendRegister("first", regmap.ReadWrite, "")
	first.AppendInteger("array_integer", "", -100, 100, 0)
	first.AppendBit("array_bit_a", "", false)
	first.AppendBit("array_bit_b", "", true)
	first.AppendBitVector("array_bit_vector", "", 5, 12)
	first.AppendEnumeration("array_enumeration", "", "element0",
		"element0", "element1")
	second := dummies.AppendRegister("second", regmap.ReadOnly, "")
	second.AppendUnsigned("count", "events seen", 16, 0)
	second.AppendBit("valid", "", false)

	after := m.AppendRegister("after", regmap.ReadWrite, "")
	after.AppendSigned("scratch", "", 32, 0)

	top := m.AppendRegister("top", regmap.ReadOnly, "")
	top.AppendBitVector("low", "", 24, 0)
	top.AppendSigned("high", "", 8, 0)

	command := m.AppendRegister("command", regmap.WriteOnly, "")
	command.AppendEnumeration("opcode", "", "nop",
		"nop", "read", "write", "erase")
	command.AppendUnsigned("address", "", 16, 0)
	command.AppendBit("urgent", "", true)

	trigger := m.AppendRegister("trigger", regmap.WritePulse, "")
	trigger.AppendBit("start", "", false)
	trigger.AppendUnsigned("channel", "", 3, 7)

	irq := m.AppendRegister("irq", regmap.ReadWriteWritePulse, "")
	irq.AppendBit("pending", "", false)
	irq.AppendBit("clear", "", false)
	irq.AppendUnsigned("source", "", 4, 0)

	m.AppendRegisterArray("dummies2", 0, "no elements").
		AppendRegister("unused", regmap.ReadWrite, "").
		AppendBit("unused_bit", "", false)

	gain := m.AppendRegister("gain", regmap.ReadWrite, "")
	gain.AppendVector("coarse", "", 8, regmap.UnsignedFixed(4), 1.5)
	gain.AppendVector("fine", "", 8, regmap.SignedFixed(4), -0.25)
	gain.AppendInteger("limit", "", 10, 200, 100)

	m.AppendRegister("tail", regmap.ReadOnly, "").
		AppendUnsigned("counter", "", 32, 0)

	m.AddConstant("version", "", 3)
	m.AddConstant("magic", "", mustInteger("0xcafe_f00d"))
	m.AddConstant("negative", "", mustInteger("-5"))
	m.AddConstant("enabled", "", true)
	m.AddConstant("ratio", "", 0.5)
	m.AddConstant("banner", "", "caesar")
	m.AddConstant("pattern", "", mustVectorConstant("0b1010_0101"))

	if err := m.Validate(); err != nil {
		panic(err)
	}
	return m
}

func mustInteger(s string) int64 {
	n, err := regmap.ParseInteger(s)
	if err != nil {
		panic(fmt.Errorf("%s: %w", s, err))
	}
	return n
}

func mustVectorConstant(s string) regmap.VectorConstant {
	b, err := regmap.ParseVectorConstant(s)
	if err != nil {
		panic(fmt.Errorf("%s: %w", s, err))
	}
	return b
}
