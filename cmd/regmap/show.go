// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/internal/lang"
)

type showCommand struct{}

func (showCommand) String() string { return "show" }
func (showCommand) Usage() string  { return "show [-map NAME]" }

func (showCommand) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "print register map layout",
		lang.FrFR: "afficher la disposition des registres",
	}
}

func (showCommand) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Print each register occurrence of the map in index order with its
	word index, byte address, access mode, default word and fields,
	followed by the map constants.

	Output to a terminal is an aligned table with a header; otherwise
	columns are separated by a single tab.

OPTIONS
	-map NAME
		register map, default caesar`,
	}
}

func (showCommand) Main(args ...string) error {
	parm, args := parms.New(args, "-map")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	m, err := loadMap(parm.ByName["-map"])
	if err != nil {
		return err
	}
	w := stdout
	tty := false
	if f, ok := stdout.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		tty = true
		tw := tabwriter.NewWriter(f, 0, 8, 2, ' ', 0)
		defer tw.Flush()
		w = tw
	}
	if tty {
		fmt.Fprintln(w, "INDEX\tADDRESS\tREGISTER\tMODE\tDEFAULT\tFIELDS")
	}
	for _, s := range m.Layout() {
		fmt.Fprintf(w, "%d\t0x%04x\t%s\t%s\t0x%08x\t%s\n",
			s.Index, s.Address(), s.Name(), s.Register.Mode,
			s.Register.Default(), fieldList(s.Register))
	}
	showConstants(w, m, tty)
	return nil
}

func fieldList(r *regmap.Register) string {
	s := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		if f.Width == 1 {
			s[i] = fmt.Sprintf("%s[%d]", f.Name, f.Offset)
		} else {
			s[i] = fmt.Sprintf("%s[%d:%d]", f.Name,
				f.Offset+f.Width-1, f.Offset)
		}
	}
	return strings.Join(s, " ")
}

func showConstants(w io.Writer, m *regmap.Map, tty bool) {
	if len(m.Constants) == 0 {
		return
	}
	if tty {
		fmt.Fprintln(w, "\nCONSTANT\tTYPE\tVALUE")
	}
	for _, c := range m.Constants {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Kind(), c.Literal())
	}
}
