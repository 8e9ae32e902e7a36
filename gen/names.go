// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"strings"
	"unicode"
)

// Camel converts snake case names to exported Go names, joining parts:
// Camel("dummies", "array_bit_a") is "DummiesArrayBitA".
func Camel(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		for _, w := range strings.Split(p, "_") {
			if len(w) == 0 {
				continue
			}
			r := []rune(w)
			r[0] = unicode.ToUpper(r[0])
			b.WriteString(string(r))
		}
	}
	return b.String()
}

// lowerCamel is Camel with a lower case first letter.
func lowerCamel(parts ...string) string {
	r := []rune(Camel(parts...))
	if len(r) > 0 {
		r[0] = unicode.ToLower(r[0])
	}
	return string(r)
}

// Upper converts snake case names to a C macro name, joining parts:
// Upper("caesar", "plain_bit_a") is "CAESAR_PLAIN_BIT_A".
func Upper(parts ...string) string {
	var s []string
	for _, p := range parts {
		if len(p) > 0 {
			s = append(s, strings.ToUpper(p))
		}
	}
	return strings.Join(s, "_")
}
