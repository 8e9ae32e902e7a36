// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/internal/lang"
	"github.com/platinasystems/regmap/internal/test"
)

func TestMain(m *testing.M) {
	lang.Lang = lang.EnUS
	os.Exit(m.Run())
}

func run(args ...string) (string, error) {
	save := stdout
	defer func() { stdout = save }()
	buf := new(bytes.Buffer)
	stdout = buf
	err := Main(args...)
	return buf.String(), err
}

func TestHelp(t *testing.T) {
	assert := test.Assert{TB: t}
	out, err := run()
	assert.Nil(err)
	for _, k := range Keys() {
		assert.Match(out, "(?m)^"+k+" +"+ByName[k].Apropos().String()+"$")
	}
	out, err = run("show", "-h")
	assert.Nil(err)
	assert.Equal(out, "usage: show [-map NAME]\n")
	out, err = run("help", "decode")
	assert.Nil(err)
	assert.Equal(out, "usage: decode [-map NAME] REGISTER[.FIELD] WORD\n")
	out, err = run("peek", "-apropos")
	assert.Nil(err)
	assert.Equal(out, "peek: read a register or field\n")
	out, err = run("poke", "-man")
	assert.Nil(err)
	assert.Match(out, "^NAME\n\tpoke - write a register or field\n")
	assert.Match(out, "\t-redis ADDR\n")

	_, err = run("frob")
	assert.Error(err, "frob: command not found")
}

func TestShow(t *testing.T) {
	assert := test.Assert{TB: t}
	out, err := run("show")
	assert.Nil(err)
	lines := strings.Split(out, "\n")
	assert.Equal(lines[0], "0\t0x0000\tconf\tr_w\t0x00014846\t"+
		"plain_bit_a[0] plain_bit_vector[4:1] plain_integer[12:5] "+
		"plain_enumeration[15:13] plain_bit_b[16]")
	assert.Match(out, "(?m)^6\t0x0018\tdummies\\[2\\]\\.second\tr\t")
	assert.Match(out, "(?m)^9\t0x0024\tcommand\tw\t0x00040000\t")
	assert.Match(out, "(?m)^13\t0x0034\ttail\tr\t0x00000000\tcounter\\[31:0\\]$")
	assert.Match(out, "(?m)^version\tinteger\t3$")
	assert.Match(out, "(?m)^banner\tstring\t\"caesar\"$")

	_, err = run("show", "-map", "brutus")
	assert.Error(err, regmap.ErrNotFound)
	_, err = run("show", "extra")
	assert.Error(err, "[extra]: unexpected")
}

func TestDecode(t *testing.T) {
	assert := test.Assert{TB: t}
	out, err := run("decode", "conf", "0x14846")
	assert.Nil(err)
	assert.Equal(out, `plain_bit_a: false
plain_bit_vector: 3
plain_integer: 66
plain_enumeration: third
plain_bit_b: true
`)
	out, err = run("decode", "dummies.first.array_enumeration", "0x8000")
	assert.Nil(err)
	assert.Equal(out, "element1\n")
	out, err = run("decode", "top.high", "0xff000000")
	assert.Nil(err)
	assert.Equal(out, "-1\n")

	_, err = run("decode", "conf")
	assert.Error(err, "WORD: missing")
	_, err = run("decode", "conf.nothing", "0")
	assert.Error(err, regmap.ErrNotFound)
	_, err = run("decode", "conf", "0x1_0000_0000")
	assert.Error(err, regmap.ErrRange)
}

func TestPeekPoke(t *testing.T) {
	assert := test.Assert{TB: t}
	fn := filepath.Join(t.TempDir(), "caesar")
	img := "-image=" + fn

	_, err := run("peek", "conf")
	assert.Error(err, "missing -image FILE or -redis ADDR")

	_, err = run("poke", img, "conf")
	assert.Nil(err)
	_, err = run("poke", img, "conf.plain_integer", "-5")
	assert.Nil(err)
	out, err := run("peek", img, "conf.plain_integer")
	assert.Nil(err)
	assert.Equal(out, "-5\n")
	out, err = run("peek", img, "conf")
	assert.Nil(err)
	assert.Equal(out, "0x00015f66\n")
	_, err = run("poke", img, "conf.plain_enumeration", "sixth")
	assert.Error(err, regmap.ErrNotFound)

	_, err = run("poke", img, "-n", "2", "dummies.first.array_enumeration", "element1")
	assert.Nil(err)
	out, err = run("peek", img, "-n", "2", "dummies.first")
	assert.Nil(err)
	assert.Equal(out, "0x00008000\n")
	out, err = run("peek", img, "dummies.first")
	assert.Nil(err)
	assert.Equal(out, "0x00000000\n")
	_, err = run("peek", img, "-n", "3", "dummies.first")
	assert.Error(err, regmap.ErrRange)

	_, err = run("poke", img, "command.opcode", "erase")
	assert.Nil(err)
	_, err = run("peek", img, "command")
	assert.Error(err, regmap.ErrNotReadable)
	_, err = run("poke", img, "top", "1")
	assert.Error(err, regmap.ErrNotWritable)

	_, err = run("poke", img, "after", "-1")
	assert.Nil(err)
	out, err = run("peek", img, "after.scratch")
	assert.Nil(err)
	assert.Equal(out, "-1\n")

	_, err = run("poke", img, "-reset", "after", "0")
	assert.Error(err, "0: unexpected with -reset")
	_, err = run("poke", img, "-reset", "after")
	assert.Nil(err)
	out, err = run("peek", img, "after")
	assert.Nil(err)
	assert.Equal(out, "0x00000000\n")

	b, err := ioutil.ReadFile(fn)
	assert.Nil(err)
	assert.True(len(b) == 56)
	assert.True(b[0] == 0x66 && b[1] == 0x5f && b[2] == 0x01)
	assert.True(b[9*4] == 0x03 && b[9*4+2] == 0x04)
}

func TestEmit(t *testing.T) {
	assert := test.Assert{TB: t}
	out, err := run("emit")
	assert.Nil(err)
	assert.Match(out, "(?m)^package caesar$")
	out, err = run("emit", "-pkg", "regs")
	assert.Nil(err)
	assert.Match(out, "(?m)^package regs$")

	fn := filepath.Join(t.TempDir(), "caesar.h")
	out, err = run("emit", "-lang", "c", "-o", fn)
	assert.Nil(err)
	assert.Equal(out, "")
	b, err := ioutil.ReadFile(fn)
	assert.Nil(err)
	assert.Match(string(b), "(?m)^#ifndef CAESAR_REGMAP_H$")

	_, err = run("emit", "-lang", "rust")
	assert.Error(err, "-lang rust: unsupported")
}
