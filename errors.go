// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrModel        = errors.New("model defect")
	ErrRange        = errors.New("value out of range")
	ErrDomain       = errors.New("value not in domain")
	ErrType         = errors.New("wrong value type")
	ErrNotFound     = errors.New("not found")
	ErrNotReadable  = errors.New("register is not readable")
	ErrNotWritable  = errors.New("register is not writable")
	ErrNotValidated = errors.New("map not validated")
)

// ModelError is one defect found while building or validating a Map.
type ModelError struct {
	// Path names the offending object, e.g. "dummies.first.array_bit_a".
	Path string
	Msg  string
}

func (e *ModelError) Error() string {
	if len(e.Path) == 0 {
		return e.Msg
	}
	return e.Path + ": " + e.Msg
}

func (e *ModelError) Is(target error) bool { return target == ErrModel }

// ErrorList collects model defects in the order they are found.
type ErrorList []*ModelError

func (p *ErrorList) Add(path, format string, args ...interface{}) {
	*p = append(*p, &ModelError{path, fmt.Sprintf(format, args...)})
}

func (p ErrorList) Len() int { return len(p) }

func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	s := make([]string, len(p))
	for i, e := range p {
		s[i] = e.Error()
	}
	return fmt.Sprintf("%d model errors:\n\t%s", len(p), strings.Join(s, "\n\t"))
}

func (p ErrorList) Is(target error) bool { return target == ErrModel }

// Err returns nil for an empty list, otherwise the list itself.
func (p ErrorList) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// RangeError reports a logical value that a field can't represent.
type RangeError struct {
	Field    string
	Value    interface{}
	Min, Max interface{}
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value %v out of range [%v, %v]",
		e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool { return target == ErrRange }

// DomainError reports field bits that don't decode to a logical value,
// such as an unmapped enumeration ordinal.
type DomainError struct {
	Field string
	Bits  uint32
	Msg   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: bits 0x%x %s", e.Field, e.Bits, e.Msg)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }
