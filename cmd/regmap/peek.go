// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/platinasystems/parms"
	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/internal/lang"
)

type peekCommand struct{}

func (peekCommand) String() string { return "peek" }
func (peekCommand) Usage() string {
	return "peek [-map NAME] [-image FILE | -redis ADDR [-key KEY]] [-n ELEMENT] REGISTER[.FIELD]"
}

func (peekCommand) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "read a register or field",
		lang.FrFR: "lire un registre ou un champ",
	}
}

func (peekCommand) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Print the word of a readable register or the value of one of its
	fields.  Registers of an array are named ARRAY.REGISTER and the
	element is selected with -n.

OPTIONS` + imageOptions,
	}
}

func (peekCommand) Main(args ...string) error {
	parm, args := parms.New(args, imageParms...)
	switch len(args) {
	case 0:
		return fmt.Errorf("REGISTER: missing")
	case 1:
	default:
		return fmt.Errorf("%v: unexpected", args[1:])
	}
	s, err := openSession(parm)
	if err != nil {
		return err
	}
	defer s.Close()
	ref, field, err := s.resolve(parm, args[0])
	if err != nil {
		return err
	}
	if len(field) == 0 {
		w, err := s.Get(ref)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "0x%08x\n", w)
		return nil
	}
	v, err := s.GetField(ref, field)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, regmap.FormatValue(v))
	return nil
}
