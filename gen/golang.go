// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/platinasystems/regmap"
)

type goGen struct {
	bytes.Buffer
	m *regmap.Map
}

func (g *goGen) printf(format string, args ...interface{}) {
	fmt.Fprintf(&g.Buffer, format, args...)
}

// Go writes gofmt'd Go source for package pkg with m's constants, register
// indices, field masks and defaults, enumeration types, a Registers struct
// with the image layout and accessors of a Regs image.
//
// Generated setters panic on values the field can't represent.  Getters of
// enumerations and ranged integers return a regmap.DomainError for bits
// that don't decode.  Go returns an ErrorList, without writing, if two
// map objects would declare the same identifier.
func Go(w io.Writer, m *regmap.Map, pkg string) error {
	if err := checkGo(m, pkg); err != nil {
		return err
	}
	g := &goGen{m: m}
	g.printf("// WordCount is the number of register words; images are 4*WordCount bytes.\n")
	g.printf("const WordCount = %d\n\n", m.WordCount())
	g.printf("// Regs is a register image, one element per register word.\n")
	g.printf("type Regs []uint32\n\n")
	g.printf("func NewRegs() Regs { return make(Regs, WordCount) }\n\n")
	g.constants()
	for _, x := range m.Items {
		switch v := x.(type) {
		case *regmap.Register:
			g.register(item{r: v, parts: []string{v.Name}})
		case *regmap.RegisterArray:
			g.array(v)
		}
	}
	g.layout()

	body := g.String()
	h := new(bytes.Buffer)
	fmt.Fprintf(h, "// autogenerated: do not edit!\n")
	fmt.Fprintf(h, "// generated from regmap %s\n\n", m.Name)
	fmt.Fprintf(h, "package %s\n\n", pkg)
	var imports []string
	if strings.Contains(body, "strconv.") {
		imports = append(imports, `"strconv"`)
	}
	if strings.Contains(body, "regmap.") {
		imports = append(imports, `"`+ImportPath+`"`)
	}
	if len(imports) > 0 {
		fmt.Fprintf(h, "import (\n%s\n)\n\n", strings.Join(imports, "\n\n"))
	}
	h.WriteString(body)

	// gofmt result
	b, err := format.Source(h.Bytes())
	if err != nil {
		return fmt.Errorf("%s: gofmt: %w", m.Name, err)
	}
	_, err = w.Write(b)
	return err
}

func (g *goGen) constants() {
	if len(g.m.Constants) == 0 {
		return
	}
	g.printf("const (\n")
	for _, c := range g.m.Constants {
		if len(c.Description) > 0 {
			g.printf("// %s\n", c.Description)
		}
		g.printf("%s = %s\n", Camel(c.Name), c.Literal())
	}
	g.printf(")\n\n")
}

func (g *goGen) array(a *regmap.RegisterArray) {
	name := Camel(a.Name)
	if len(a.Description) > 0 {
		g.printf("// %s: %s\n", a.Name, a.Description)
	}
	g.printf("const (\n")
	g.printf("%sIndex = %d\n", name, a.BaseIndex)
	g.printf("%sLength = %d\n", name, a.Length)
	g.printf("%sRowSize = %d\n", name, a.RowSize())
	g.printf(")\n\n")
	for _, r := range a.Registers {
		g.register(item{r: r, a: a, parts: []string{a.Name, r.Name}})
	}
}

func (g *goGen) register(it item) {
	r := it.r
	name := Camel(it.parts...)
	g.printf("// %s is %s", it.path(), r.Mode.Description())
	if len(r.Description) > 0 {
		g.printf(": %s", r.Description)
	}
	g.printf("\nconst (\n")
	if it.a == nil {
		g.printf("%sIndex = %d\n", name, r.Index)
		g.printf("%sAddress = 0x%x\n", name, r.Address())
	} else {
		g.printf("%sRow = %d\n", name, r.Index)
	}
	g.printf("%sDefault = 0x%08x\n", name, r.Default())
	for _, f := range r.Fields {
		fn := name + Camel(f.Name)
		g.printf("%sShift = %d\n", fn, f.Offset)
		g.printf("%sWidth = %d\n", fn, f.Width)
		g.printf("%sMask = 0x%x\n", fn, f.MaskAtBase())
		g.printf("%sMaskShifted = 0x%08x\n", fn, f.Mask())
		g.printf("%sDefault = 0x%x\n", fn, f.Default)
	}
	g.printf(")\n\n")

	// Index expression and parameters of accessors.
	index, param, arg := name+"Index", "", ""
	if a := it.a; a != nil {
		an := Camel(a.Name)
		g.printf("// %sIndex is the word index of element k.\n", name)
		g.printf("func %sIndex(k uint) uint {\n", name)
		g.printf("if k >= %sLength {\n", an)
		g.printf("panic(&regmap.RangeError{Field: %q, Value: k, Min: 0, Max: %d})\n",
			a.Name, int64(a.Length)-1)
		g.printf("}\n")
		g.printf("return %sIndex + k*%sRowSize + %sRow\n", an, an, name)
		g.printf("}\n\n")
		g.printf("func %sAddress(k uint) uint { return regmap.Address(%sIndex(k)) }\n\n",
			name, name)
		index, param, arg = name+"Index(k)", "k uint", "k uint, "
	}

	if r.Mode.Readable() {
		g.printf("func (r Regs) %s(%s) uint32 { return r[%s] }\n\n", name, param, index)
	}
	if r.Mode.Writable() {
		g.printf("func (r Regs) Set%s(%sv uint32) { r[%s] = v }\n\n", name, arg, index)
		g.printf("// Reset%s writes the register default.\n", name)
		g.printf("func (r Regs) Reset%s(%s) { r[%s] = %sDefault }\n\n", name, param, index, name)
	}
	for _, f := range r.Fields {
		g.field(it, f, name, index, param, arg)
	}
}

// goType is the Go type of a field's logical value.
func goType(fn string, f *regmap.Field) string {
	switch {
	case f.Kind == regmap.Bit:
		return "bool"
	case f.Kind == regmap.Enumeration:
		return fn
	case f.Kind == regmap.BitVector && f.Interpretation.Fixed:
		return "float64"
	case f.Signed():
		return "int32"
	}
	return "uint32"
}

func (g *goGen) field(it item, f *regmap.Field, reg, index, param, arg string) {
	fn := reg + Camel(f.Name)
	typ := goType(fn, f)
	path := it.fieldPath(f)
	raw := fmt.Sprintf("regmap.Extract(w, %sShift, %sWidth)", fn, fn)
	fails := f.Kind == regmap.Enumeration || f.Ranged
	names := lowerCamel(fn) + "Names"

	if f.Kind == regmap.Enumeration {
		g.printf("type %s uint32\n\n", fn)
		g.printf("const (\n")
		for _, e := range f.Elements {
			g.printf("%s%s %s = %d\n", fn, Camel(e.Name), fn, e.Value)
		}
		g.printf(")\n\n")
		g.printf("var %s = map[%s]string{\n", names, fn)
		for _, e := range f.Elements {
			g.printf("%s%s: %q,\n", fn, Camel(e.Name), e.Name)
		}
		g.printf("}\n\n")
		g.printf("func (e %s) String() string {\n", fn)
		g.printf("if s, found := %s[e]; found {\nreturn s\n}\n", names)
		g.printf("return \"%s(\" + strconv.FormatUint(uint64(e), 10) + \")\"\n", fn)
		g.printf("}\n\n")
	}

	// Decode.
	var decode string
	switch {
	case f.Kind == regmap.Bit:
		decode = raw + " != 0"
	case f.Kind == regmap.Enumeration:
		decode = fmt.Sprintf("%s(%s)", fn, raw)
	case f.Kind == regmap.BitVector && f.Interpretation.Fixed:
		decode = fmt.Sprintf("regmap.DecodeFixed(%s, %sWidth, %d, %v)",
			raw, fn, f.Interpretation.FractionBits, f.Interpretation.Signed)
	case f.Signed():
		decode = fmt.Sprintf("regmap.SignExtend(%s, %sWidth)", raw, fn)
	default:
		decode = raw
	}
	g.printf("// %sFromValue decodes %s from a register word.\n", fn, path)
	if !fails {
		g.printf("func %sFromValue(w uint32) %s {\nreturn %s\n}\n\n", fn, typ, decode)
	} else {
		g.printf("func %sFromValue(w uint32) (%s, error) {\n", fn, typ)
		g.printf("v := %s\n", decode)
		if f.Kind == regmap.Enumeration {
			g.printf("if _, found := %s[v]; !found {\n", names)
			g.printf("return v, &regmap.DomainError{Field: %q, Bits: %s, Msg: %q}\n",
				path, raw, "is not an element ordinal")
		} else {
			g.printf("if %s {\n", rangeCheck(f))
			g.printf("return v, &regmap.DomainError{Field: %q, Bits: %s, Msg: %q}\n",
				path, raw, fmt.Sprintf("is outside [%d, %d]", f.Min, f.Max))
		}
		g.printf("}\nreturn v, nil\n}\n\n")
	}

	if it.r.Mode.Readable() {
		if fails {
			g.printf("func (r Regs) %s(%s) (%s, error) { return %sFromValue(r[%s]) }\n\n",
				fn, param, typ, fn, index)
		} else {
			g.printf("func (r Regs) %s(%s) %s { return %sFromValue(r[%s]) }\n\n",
				fn, param, typ, fn, index)
		}
	}
	if !it.r.Mode.Writable() {
		return
	}

	// Encode and merge.
	base := reg + "Default"
	if it.r.Mode.MergesCurrent() {
		base = "r[" + index + "]"
	}
	if it.r.Mode.MergesCurrent() {
		g.printf("// Set%s merges v into the current register word.  Concurrent\n", fn)
		g.printf("// sets of fields in one register lose writes; callers serialize them.\n")
	} else {
		g.printf("// Set%s writes v with every other field at its default, so it\n", fn)
		g.printf("// undoes earlier sets of other fields in this register.  Concurrent\n")
		g.printf("// sets of one register lose writes; callers serialize them.\n")
	}
	g.printf("func (r Regs) Set%s(%sv %s) {\n", fn, arg, typ)
	switch {
	case f.Kind == regmap.Bit:
		g.printf("raw := regmap.BoolBits(v)\n")
	case f.Kind == regmap.Enumeration:
		g.printf("if _, found := %s[v]; !found {\n", names)
		g.printf("panic(&regmap.DomainError{Field: %q, Bits: uint32(v), Msg: %q})\n",
			path, "is not an element ordinal")
		g.printf("}\nraw := uint32(v)\n")
	default:
		if f.Ranged {
			g.printf("if %s {\n", rangeCheck(f))
			g.printf("panic(&regmap.RangeError{Field: %q, Value: v, Min: %d, Max: %d})\n",
				path, f.Min, f.Max)
			g.printf("}\n")
		}
		switch {
		case f.Kind == regmap.BitVector && f.Interpretation.Fixed:
			g.printf("raw, err := regmap.EncodeFixed(v, %sWidth, %d, %v)\n",
				fn, f.Interpretation.FractionBits, f.Interpretation.Signed)
		case f.Signed():
			g.printf("raw, err := regmap.EncodeSigned(int64(v), %sWidth)\n", fn)
		default:
			g.printf("raw, err := regmap.EncodeUnsigned(uint64(v), %sWidth)\n", fn)
		}
		g.printf("if err != nil {\npanic(err)\n}\n")
	}
	g.printf("r[%s] = regmap.Insert(%s, %sShift, %sWidth, raw)\n", index, base, fn, fn)
	g.printf("}\n\n")
}

// rangeCheck is a Go condition true if v is outside a ranged field's
// declared range.
func rangeCheck(f *regmap.Field) string {
	if !f.Signed() && f.Min == 0 {
		return fmt.Sprintf("v > %d", f.Max)
	}
	return fmt.Sprintf("v < %d || v > %d", f.Min, f.Max)
}

// layout writes the Registers struct whose memory layout is the image.
func (g *goGen) layout() {
	g.printf("// Registers has the memory layout of the register image.\n")
	g.printf("type Registers struct {\n")
	for _, x := range g.m.Items {
		switch v := x.(type) {
		case *regmap.Register:
			g.printf("%s uint32\n", Camel(v.Name))
		case *regmap.RegisterArray:
			if v.Words() == 0 {
				g.printf("// %s[%d] has no words\n", v.Name, v.Length)
				continue
			}
			g.printf("%s [%d]struct {\n", Camel(v.Name), v.Length)
			for _, r := range v.Registers {
				g.printf("%s uint32\n", Camel(r.Name))
			}
			g.printf("}\n")
		}
	}
	g.printf("}\n")
}
