// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lang provides command text in alternative languages.
//
// The language precedence is the value of the "LANG" environment variable
// followed by Default, then en_US.UTF-8.
package lang

import "os"

const (
	EnUS = "en_US.UTF-8"
	FrFR = "fr_FR.UTF-8"
)

var Default = EnUS

// Lang overrides the environment if set.
var Lang string

type Alt map[string]string

// If available, this returns text in the prefered language.
func (m Alt) String() string {
	env := Lang
	if len(env) == 0 {
		env = os.Getenv("LANG")
	}
	for _, lang := range []string{env, Default, EnUS} {
		if s, found := m[lang]; found {
			return s
		}
	}
	return ""
}
