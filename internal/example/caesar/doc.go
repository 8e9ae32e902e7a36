// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package caesar has the generated Go accessors of the caesar example map.
package caesar

//go:generate go run ../../../cmd/regmap emit -map caesar -o caesar.go
