// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"go/ast"
	"go/constant"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/internal/example"
	"github.com/platinasystems/regmap/internal/test"
)

// moduleImporter type checks the regmap package from the parent directory
// and gets every other package from source.
type moduleImporter struct {
	fset *token.FileSet
	std  types.Importer
	pkg  *types.Package
}

func newModuleImporter(fset *token.FileSet) *moduleImporter {
	return &moduleImporter{
		fset: fset,
		std:  importer.ForCompiler(fset, "source", nil),
	}
}

func (imp *moduleImporter) Import(path string) (*types.Package, error) {
	if path != ImportPath {
		return imp.std.Import(path)
	}
	if imp.pkg != nil {
		return imp.pkg, nil
	}
	fns, err := filepath.Glob(filepath.Join("..", "*.go"))
	if err != nil {
		return nil, err
	}
	var files []*ast.File
	for _, fn := range fns {
		if strings.HasSuffix(fn, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(imp.fset, fn, nil, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	conf := types.Config{Importer: imp.std}
	imp.pkg, err = conf.Check(path, imp.fset, files, nil)
	return imp.pkg, err
}

func typeCheck(t *testing.T, fn string, src []byte) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, fn, src, 0)
	if err != nil {
		t.Fatal(err)
	}
	conf := types.Config{Importer: newModuleImporter(fset)}
	pkg, err := conf.Check(f.Name.Name, fset, []*ast.File{f}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return pkg
}

// declarations lists a package's objects, constant values and methods.
func declarations(pkg *types.Package) []string {
	var s []string
	qf := types.RelativeTo(pkg)
	for _, name := range pkg.Scope().Names() {
		obj := pkg.Scope().Lookup(name)
		decl := types.ObjectString(obj, qf)
		if c, ok := obj.(*types.Const); ok {
			decl += " = " + c.Val().ExactString()
		}
		s = append(s, decl)
		if named, ok := obj.Type().(*types.Named); ok {
			if _, isType := obj.(*types.TypeName); isType {
				for i := 0; i < named.NumMethods(); i++ {
					s = append(s, types.ObjectString(named.Method(i), qf))
				}
			}
		}
	}
	return s
}

// checkSize asserts that the Registers struct has the image size.
func checkSize(assert test.Assert, pkg *types.Package) {
	assert.Helper()
	wc, ok := pkg.Scope().Lookup("WordCount").(*types.Const)
	assert.True(ok)
	n, exact := constant.Uint64Val(wc.Val())
	assert.True(exact)
	regs := pkg.Scope().Lookup("Registers")
	assert.True(regs != nil)
	for _, arch := range []string{"amd64", "386", "arm64"} {
		size := types.SizesFor("gc", arch).Sizeof(regs.Type())
		if size != int64(regmap.WordBytes*n) {
			assert.Fatalf("%s: Sizeof(Registers) %d != %d", arch, size,
				regmap.WordBytes*n)
		}
	}
}

func TestGoTypes(t *testing.T) {
	assert := test.Assert{TB: t}
	buf := new(bytes.Buffer)
	assert.Nil(Go(buf, example.Caesar(), "caesar"))
	pkg := typeCheck(t, "caesar.go", buf.Bytes())
	checkSize(assert, pkg)

	// the committed example package is what go generate writes
	b, err := ioutil.ReadFile(filepath.Join("..", "internal", "example",
		"caesar", "caesar.go"))
	assert.Nil(err)
	committed := typeCheck(t, "caesar.go", b)
	assert.Equal(strings.Join(declarations(committed), "\n"),
		strings.Join(declarations(pkg), "\n"))
}

func TestGoTrailingEmptyArray(t *testing.T) {
	assert := test.Assert{TB: t}
	m := regmap.New("m")
	m.AppendRegister("r", regmap.ReadWrite, "").AppendBit("a", "", false)
	m.AppendRegisterArray("spare", 0, "").
		AppendRegister("x", regmap.ReadWrite, "").AppendBit("b", "", false)
	assert.Nil(m.Validate())
	buf := new(bytes.Buffer)
	assert.Nil(Go(buf, m, "m"))
	pkg := typeCheck(t, "m.go", buf.Bytes())
	checkSize(assert, pkg)
	st := pkg.Scope().Lookup("Registers").Type().Underlying().(*types.Struct)
	assert.True(st.NumFields() == 1)
	assert.Equal(st.Field(0).Name(), "R")
}
