// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/platinasystems/regmap/internal/lang"
)

type helpCommand struct{}

func (helpCommand) String() string { return "help" }
func (helpCommand) Usage() string  { return "help [COMMAND]" }

func (helpCommand) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "print command usage",
	}
}

func (helpCommand) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Print the usage of COMMAND or a summary of every command.`,
	}
}

func (helpCommand) Main(args ...string) error {
	switch len(args) {
	case 0:
		for _, k := range Keys() {
			c := ByName[k]
			fmt.Fprintf(stdout, "%-8s %s\n", k, c.Apropos())
		}
		return nil
	case 1:
		c, found := ByName[args[0]]
		if !found {
			return fmt.Errorf("%s: command not found", args[0])
		}
		fmt.Fprintln(stdout, "usage:", c.Usage())
		return nil
	}
	return fmt.Errorf("%v: unexpected", args[1:])
}
