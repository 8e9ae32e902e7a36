// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/platinasystems/regmap"
)

// C writes a C header of m's constants, register indices and addresses,
// field shifts, masks and defaults, enumeration values and a struct with
// the image layout.  Array element index and address macros take the
// element number.
func C(w io.Writer, m *regmap.Map) error {
	if err := checkC(m); err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	p := func(format string, args ...interface{}) { fmt.Fprintf(b, format, args...) }
	guard := Upper(m.Name, "regmap", "h")

	p("/* autogenerated: do not edit! */\n")
	p("/* generated from regmap %s */\n\n", m.Name)
	p("#ifndef %s\n#define %s\n\n#include <stdint.h>\n\n", guard, guard)
	p("#define %s %d\n\n", Upper(m.Name, "word_count"), m.WordCount())

	for _, c := range m.Constants {
		p("#define %s %s\n", Upper(m.Name, c.Name), cLiteral(c))
	}
	if len(m.Constants) > 0 {
		p("\n")
	}

	for _, x := range m.Items {
		a, ok := x.(*regmap.RegisterArray)
		if !ok {
			continue
		}
		an := Upper(m.Name, a.Name)
		p("/* %s[%d] */\n", a.Name, a.Length)
		p("#define %s_INDEX %d\n", an, a.BaseIndex)
		p("#define %s_LENGTH %d\n", an, a.Length)
		p("#define %s_ROW_SIZE %d\n\n", an, a.RowSize())
	}

	forEachRegister(m, func(it item) {
		r := it.r
		rn := Upper(append([]string{m.Name}, it.parts...)...)
		p("/* %s: %s */\n", it.path(), r.Mode.Description())
		if it.a == nil {
			p("#define %s_INDEX %d\n", rn, r.Index)
			p("#define %s_ADDRESS 0x%x\n", rn, r.Address())
		} else {
			an := Upper(m.Name, it.a.Name)
			p("#define %s_ROW %d\n", rn, r.Index)
			p("#define %s_INDEX(k) (%s_INDEX + (k) * %s_ROW_SIZE + %s_ROW)\n",
				rn, an, an, rn)
			p("#define %s_ADDRESS(k) (%d * %s_INDEX(k))\n", rn, regmap.WordBytes, rn)
		}
		p("#define %s_DEFAULT 0x%08xu\n", rn, r.Default())
		for _, f := range r.Fields {
			fn := rn + "_" + Upper(f.Name)
			p("#define %s_SHIFT %d\n", fn, f.Offset)
			p("#define %s_WIDTH %d\n", fn, f.Width)
			p("#define %s_MASK 0x%xu\n", fn, f.MaskAtBase())
			p("#define %s_MASK_SHIFTED 0x%08xu\n", fn, f.Mask())
			p("#define %s_DEFAULT 0x%xu\n", fn, f.Default)
			for _, e := range f.Elements {
				p("#define %s_%s %du\n", fn, Upper(e.Name), e.Value)
			}
		}
		p("\n")
	})

	if m.WordCount() > 0 {
		tn := m.Name + "_registers_t"
		p("typedef struct {\n")
		for _, x := range m.Items {
			switch v := x.(type) {
			case *regmap.Register:
				p("\tuint32_t %s;\n", v.Name)
			case *regmap.RegisterArray:
				if v.Words() == 0 {
					p("\t/* %s[%d] has no words */\n", v.Name, v.Length)
					continue
				}
				p("\tstruct {\n")
				for _, r := range v.Registers {
					p("\t\tuint32_t %s;\n", r.Name)
				}
				p("\t} %s[%d];\n", v.Name, v.Length)
			}
		}
		p("} %s;\n\n", tn)
		p("_Static_assert(sizeof(%s) == %d, \"%s layout\");\n\n", tn, m.Size(), m.Name)
	}
	p("#endif /* %s */\n", guard)
	return b.Flush()
}

func cLiteral(c *regmap.Constant) string {
	switch v := c.Value.(type) {
	case bool:
		if v {
			return "1"
		}
		return "0"
	case int64:
		if v == math.MinInt64 {
			return "(-9223372036854775807ll - 1)"
		}
		s := regmap.FormatDecimal(v)
		switch {
		case v < math.MinInt32 || v > math.MaxUint32:
			s += "ll"
		case v > math.MaxInt32:
			s += "u"
		}
		if v < 0 {
			s = "(" + s + ")"
		}
		return s
	case regmap.VectorConstant:
		return fmt.Sprintf("0x%xull", v.Value)
	}
	return c.Literal()
}
