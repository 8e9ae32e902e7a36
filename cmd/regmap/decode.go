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

type decodeCommand struct{}

func (decodeCommand) String() string { return "decode" }
func (decodeCommand) Usage() string  { return "decode [-map NAME] REGISTER[.FIELD] WORD" }

func (decodeCommand) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "print the fields of a register word",
		lang.FrFR: "afficher les champs d'un mot de registre",
	}
}

func (decodeCommand) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Decode WORD as the given register and print each field, or just the
	named field.  No image is accessed.  A field value outside its
	domain is printed as the error.

OPTIONS
	-map NAME
		register map, default caesar`,
	}
}

func (decodeCommand) Main(args ...string) error {
	parm, args := parms.New(args, "-map")
	switch len(args) {
	case 0:
		return fmt.Errorf("REGISTER: missing")
	case 1:
		return fmt.Errorf("WORD: missing")
	case 2:
	default:
		return fmt.Errorf("%v: unexpected", args[2:])
	}
	m, err := loadMap(parm.ByName["-map"])
	if err != nil {
		return err
	}
	_, r, field, err := m.Resolve(args[0])
	if err != nil {
		return err
	}
	w, err := regmap.ParseWord(args[1])
	if err != nil {
		return err
	}
	if len(field) > 0 {
		v, err := r.FieldFromValue(field, w)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, regmap.FormatValue(v))
		return nil
	}
	for _, f := range r.Fields {
		if v, err := f.Decode(w); err != nil {
			fmt.Fprintf(stdout, "%s: %v\n", f.Name, err)
		} else {
			fmt.Fprintf(stdout, "%s: %s\n", f.Name, regmap.FormatValue(v))
		}
	}
	return nil
}
