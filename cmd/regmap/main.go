// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Regmap shows register maps, generates their accessors and reads or
// writes registers of a memory image file or redis server.
//
//	regmap show
//	regmap emit -lang c -o caesar.h
//	regmap poke -image /tmp/caesar conf.plain_enumeration fifth
//	regmap peek -image /tmp/caesar -n 2 dummies.first
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/internal/example"
	"github.com/platinasystems/regmap/internal/lang"
)

const DefaultMap = "caesar"

// Command is the interface of each regmap sub-command.
type Command interface {
	String() string
	Usage() string
	Apropos() lang.Alt
	Man() lang.Alt
	Main(args ...string) error
}

var ByName = make(map[string]Command)

// Commands write here.
var stdout io.Writer = os.Stdout

func init() {
	for _, c := range []Command{
		decodeCommand{},
		emitCommand{},
		helpCommand{},
		peekCommand{},
		pokeCommand{},
		showCommand{},
	} {
		ByName[c.String()] = c
	}
}

func main() {
	if err := Main(os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
		os.Exit(1)
	}
}

// Main runs the args[0] command.  With "-h", "-help", "-usage", "-man" or
// "-apropos" this prints the command's text instead.
func Main(args ...string) error {
	if len(args) == 0 {
		args = []string{"help"}
	}
	name := args[0]
	c, found := ByName[name]
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}
	flag, args := flags.New(args[1:],
		[]string{"-h", "-help", "--help", "-usage", "--usage"},
		[]string{"-man", "--man"},
		[]string{"-apropos", "--apropos"})
	switch {
	case flag.ByName["-h"]:
		fmt.Fprintln(stdout, "usage:", c.Usage())
	case flag.ByName["-man"]:
		fmt.Fprintf(stdout, "NAME\n\t%s - %s\n\nSYNOPSIS\n\t%s\n%s\n",
			c, c.Apropos(), c.Usage(), c.Man())
	case flag.ByName["-apropos"]:
		fmt.Fprintf(stdout, "%s: %s\n", c, c.Apropos())
	default:
		return c.Main(args...)
	}
	return nil
}

// Keys returns the sorted command names.
func Keys() []string {
	keys := make([]string, 0, len(ByName))
	for k := range ByName {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func loadMap(name string) (*regmap.Map, error) {
	if len(name) == 0 {
		name = DefaultMap
	}
	f, found := example.Maps[name]
	if !found {
		return nil, fmt.Errorf("%s: map %w", name, regmap.ErrNotFound)
	}
	return f(), nil
}
