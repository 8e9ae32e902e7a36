// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/access"
	"github.com/platinasystems/regmap/internal/lang"
)

type pokeCommand struct{}

func (pokeCommand) String() string { return "poke" }
func (pokeCommand) Usage() string {
	return "poke [-map NAME] [-image FILE | -redis ADDR [-key KEY]] [-n ELEMENT] REGISTER[.FIELD] [VALUE]"
}

func (pokeCommand) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "write a register or field",
		lang.FrFR: "écrire un registre ou un champ",
	}
}

func (pokeCommand) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Write a word to a writable register or a value to one of its fields.
	Without VALUE, or with -reset, the register default is written.

	A field of a read-write register is merged into the current word.
	A field of a write-only or write-pulse register is merged into the
	register default.

	Field values are true or false for bits, element names for
	enumerations, numbers for fixed point fields and integer literals
	(decimal, 0x hex or 0b binary) otherwise.

OPTIONS
	-reset
		write the register default` + imageOptions,
	}
}

func (pokeCommand) Main(args ...string) error {
	flag, args := flags.New(args, "-reset")
	parm, args := parms.New(args, imageParms...)
	switch {
	case len(args) == 0:
		return fmt.Errorf("REGISTER: missing")
	case len(args) > 2:
		return fmt.Errorf("%v: unexpected", args[2:])
	case len(args) == 2 && flag.ByName["-reset"]:
		return fmt.Errorf("%s: unexpected with -reset", args[1])
	}
	s, err := openSession(parm)
	if err != nil {
		return err
	}
	ref, field, err := s.resolve(parm, args[0])
	if err == nil {
		err = s.poke(ref, field, args[1:])
	}
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *session) poke(ref access.Ref, field string, value []string) error {
	switch {
	case len(value) == 0 && len(field) > 0:
		return fmt.Errorf("%s: VALUE: missing", field)
	case len(value) == 0:
		return s.Reset(ref)
	case len(field) == 0:
		w, err := regmap.ParseWord(value[0])
		if err != nil {
			return err
		}
		return s.Set(ref, w)
	}
	f, err := ref.Register.Field(field)
	if err != nil {
		return err
	}
	v, err := f.Parse(value[0])
	if err != nil {
		return err
	}
	return s.SetField(ref, field, v)
}
