// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/regmap/gen"
	"github.com/platinasystems/regmap/internal/lang"
)

type emitCommand struct{}

func (emitCommand) String() string { return "emit" }
func (emitCommand) Usage() string {
	return "emit [-map NAME] [-lang go|c] [-pkg PACKAGE] [-o FILE]"
}

func (emitCommand) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "generate register map accessors",
		lang.FrFR: "générer les accesseurs des registres",
	}
}

func (emitCommand) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Generate the constants, layout and field accessors of the map as Go
	source or a C header.

OPTIONS
	-map NAME
		register map, default caesar
	-lang go|c
		output language, default go
	-pkg PACKAGE
		Go package name, default the map name
	-o FILE
		output file instead of standard output`,
	}
}

func (emitCommand) Main(args ...string) error {
	parm, args := parms.New(args, "-map", "-lang", "-pkg", "-o")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	m, err := loadMap(parm.ByName["-map"])
	if err != nil {
		return err
	}
	name := parm.ByName["-lang"]
	if len(name) == 0 {
		name = "go"
	}
	emit, found := gen.Lang[name]
	if !found {
		return fmt.Errorf("-lang %s: unsupported", name)
	}
	pkg := parm.ByName["-pkg"]
	if len(pkg) == 0 {
		pkg = m.Name
	}
	fn := parm.ByName["-o"]
	if len(fn) == 0 {
		return emit(stdout, m, pkg)
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	err = writeTo(f, func(w io.Writer) error { return emit(w, m, pkg) })
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(fn)
		return err
	}
	log.Print("notice", "wrote ", fn)
	return nil
}

func writeTo(f *os.File, fn func(io.Writer) error) error {
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	return w.Flush()
}
