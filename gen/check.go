// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"go/token"

	"github.com/platinasystems/regmap"
)

// nameCheck collects the identifiers a backend would declare and reports
// those declared by more than one map object.
type nameCheck struct {
	errs     regmap.ErrorList
	reported map[[2]string]bool
}

type namespace struct {
	c    *nameCheck
	kind string
	// First declaring path by identifier.
	by map[string]string
}

func newNameCheck() *nameCheck {
	return &nameCheck{reported: make(map[[2]string]bool)}
}

func (c *nameCheck) namespace(kind string) *namespace {
	return &namespace{c: c, kind: kind, by: make(map[string]string)}
}

// add declares id for the object at path.  Only the first clash of two
// objects is reported.
func (ns *namespace) add(path, id string) {
	first, found := ns.by[id]
	if !found {
		ns.by[id] = path
		return
	}
	key := [2]string{first, path}
	if ns.c.reported[key] {
		return
	}
	ns.c.reported[key] = true
	ns.c.errs.Add(path, "%s %s clashes with %s", ns.kind, id, first)
}

// goName reports a name whose CamelCase form is not a Go identifier,
// such as "_" or "_1".
func (c *nameCheck) goName(path, name string) {
	if s := Camel(name); !token.IsIdentifier(s) {
		c.errs.Add(path, "no Go name for %q", name)
	}
}

// checkGo returns the clashes of Go declarations generated for m.
func checkGo(m *regmap.Map, pkg string) error {
	if err := check(m); err != nil {
		return err
	}
	c := newNameCheck()
	if !token.IsIdentifier(pkg) {
		c.errs.Add(m.Name, "package name %q is not a Go identifier", pkg)
	}
	top := c.namespace("Go identifier")
	methods := c.namespace("Regs method")
	members := c.namespace("Registers field")
	for _, id := range []string{"WordCount", "Regs", "NewRegs", "Registers"} {
		top.add(m.Name, id)
	}
	for _, k := range m.Constants {
		c.goName(k.Name, k.Name)
		top.add(k.Name, Camel(k.Name))
	}
	for _, x := range m.Items {
		switch v := x.(type) {
		case *regmap.Register:
			c.goName(v.Name, v.Name)
			members.add(v.Name, Camel(v.Name))
		case *regmap.RegisterArray:
			an := Camel(v.Name)
			c.goName(v.Name, v.Name)
			top.add(v.Name, an+"Index")
			top.add(v.Name, an+"Length")
			top.add(v.Name, an+"RowSize")
			if v.Words() > 0 {
				members.add(v.Name, an)
			}
			rows := c.namespace("Registers." + an + " field")
			for _, r := range v.Registers {
				c.goName(v.Name+"."+r.Name, r.Name)
				rows.add(v.Name+"."+r.Name, Camel(r.Name))
			}
		}
	}
	forEachRegister(m, func(it item) {
		r := it.r
		path := it.path()
		name := Camel(it.parts...)
		if it.a == nil {
			top.add(path, name+"Index")
			top.add(path, name+"Address")
		} else {
			top.add(path, name+"Row")
			top.add(path, name+"Index")
			top.add(path, name+"Address")
		}
		top.add(path, name+"Default")
		if r.Mode.Readable() {
			methods.add(path, name)
		}
		if r.Mode.Writable() {
			methods.add(path, "Set"+name)
			methods.add(path, "Reset"+name)
		}
		for _, f := range r.Fields {
			fpath := it.fieldPath(f)
			fn := name + Camel(f.Name)
			for _, s := range []string{
				"Shift",
				"Width",
				"Mask",
				"MaskShifted",
				"Default",
				"FromValue",
			} {
				top.add(fpath, fn+s)
			}
			if f.Kind == regmap.Enumeration {
				top.add(fpath, fn)
				top.add(fpath, lowerCamel(fn)+"Names")
				for _, e := range f.Elements {
					top.add(fpath+"."+e.Name, fn+Camel(e.Name))
				}
			}
			if r.Mode.Readable() {
				methods.add(fpath, fn)
			}
			if r.Mode.Writable() {
				methods.add(fpath, "Set"+fn)
			}
		}
	})
	return c.errs.Err()
}

// cKeywords may not name the members of the layout struct.
var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extern": true,
	"float": true, "for": true, "goto": true, "if": true,
	"inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true,
	"sizeof": true, "static": true, "struct": true, "switch": true,
	"typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true, "_Alignas": true, "_Alignof": true,
	"_Atomic": true, "_Bool": true, "_Complex": true, "_Generic": true,
	"_Imaginary": true, "_Noreturn": true, "_Static_assert": true,
	"_Thread_local": true,
}

// checkC returns the clashes of C macros and layout struct members
// generated for m.
func checkC(m *regmap.Map) error {
	if err := check(m); err != nil {
		return err
	}
	c := newNameCheck()
	macros := c.namespace("C macro")
	members := c.namespace(m.Name + "_registers_t member")
	member := func(ns *namespace, path, name string) {
		if cKeywords[name] {
			c.errs.Add(path, "%s is a C keyword", name)
		}
		ns.add(path, name)
	}
	macros.add(m.Name, Upper(m.Name, "regmap", "h"))
	macros.add(m.Name, Upper(m.Name, "word_count"))
	for _, k := range m.Constants {
		macros.add(k.Name, Upper(m.Name, k.Name))
	}
	for _, x := range m.Items {
		switch v := x.(type) {
		case *regmap.Register:
			member(members, v.Name, v.Name)
		case *regmap.RegisterArray:
			an := Upper(m.Name, v.Name)
			macros.add(v.Name, an+"_INDEX")
			macros.add(v.Name, an+"_LENGTH")
			macros.add(v.Name, an+"_ROW_SIZE")
			if v.Words() > 0 {
				member(members, v.Name, v.Name)
			}
			rows := c.namespace(v.Name + " member")
			for _, r := range v.Registers {
				member(rows, v.Name+"."+r.Name, r.Name)
			}
		}
	}
	forEachRegister(m, func(it item) {
		path := it.path()
		rn := Upper(append([]string{m.Name}, it.parts...)...)
		if it.a != nil {
			macros.add(path, rn+"_ROW")
		}
		macros.add(path, rn+"_INDEX")
		macros.add(path, rn+"_ADDRESS")
		macros.add(path, rn+"_DEFAULT")
		for _, f := range it.r.Fields {
			fpath := it.fieldPath(f)
			fn := rn + "_" + Upper(f.Name)
			for _, s := range []string{
				"_SHIFT",
				"_WIDTH",
				"_MASK",
				"_MASK_SHIFTED",
				"_DEFAULT",
			} {
				macros.add(fpath, fn+s)
			}
			for _, e := range f.Elements {
				macros.add(fpath+"."+e.Name, fn+"_"+Upper(e.Name))
			}
		}
	})
	return c.errs.Err()
}
