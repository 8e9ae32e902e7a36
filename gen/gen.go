// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen writes register accessors for a validated map.  Every
// backend takes its indices, masks and defaults from the regmap package,
// and generated Go code calls the regmap codec for its bit arithmetic, so
// accessors in different languages agree bit for bit.
package gen

import (
	"fmt"
	"io"

	"github.com/platinasystems/regmap"
)

// ImportPath is the package generated Go code imports.
const ImportPath = "github.com/platinasystems/regmap"

// Lang names the supported backends.
var Lang = map[string]func(w io.Writer, m *regmap.Map, pkg string) error{
	"go": Go,
	"c":  func(w io.Writer, m *regmap.Map, _ string) error { return C(w, m) },
}

func check(m *regmap.Map) error {
	if !m.Validated() {
		return fmt.Errorf("%s: %w", m.Name, regmap.ErrNotValidated)
	}
	return nil
}

// item is one register template: a plain register, or an array row.
type item struct {
	r *regmap.Register
	a *regmap.RegisterArray
	// Snake case path parts, e.g. ["dummies", "first"].
	parts []string
}

func (it item) path() string {
	if it.a == nil {
		return it.r.Name
	}
	return it.a.Name + "." + it.r.Name
}

func (it item) fieldPath(f *regmap.Field) string { return it.path() + "." + f.Name }

func forEachRegister(m *regmap.Map, fn func(it item)) {
	for _, x := range m.Items {
		switch v := x.(type) {
		case *regmap.Register:
			fn(item{r: v, parts: []string{v.Name}})
		case *regmap.RegisterArray:
			for _, r := range v.Registers {
				fn(item{r: r, a: v, parts: []string{v.Name, r.Name}})
			}
		}
	}
}
