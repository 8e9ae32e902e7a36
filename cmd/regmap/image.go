// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/platinasystems/parms"
	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/access"
	"github.com/platinasystems/regmap/image"
	"github.com/platinasystems/regmap/image/redisimage"
)

var imageParms = []interface{}{"-map", "-image", "-redis", "-key", "-n"}

const imageOptions = `
	-map NAME
		register map, default caesar
	-image FILE
		memory mapped image file, created and zero filled as needed
	-redis ADDR
		redis server holding the image as a hash of address to word
	-key KEY
		redis hash key, default regmap
	-n ELEMENT
		register array element, default 0`

// session is an accessor of the selected map and image.
type session struct {
	*access.Accessor
	done func() error
}

func openSession(parm *parms.Parms) (*session, error) {
	m, err := loadMap(parm.ByName["-map"])
	if err != nil {
		return nil, err
	}
	var (
		img  image.Image
		done func() error
	)
	switch fn, addr := parm.ByName["-image"], parm.ByName["-redis"]; {
	case len(fn) > 0 && len(addr) > 0:
		return nil, errors.New("-image and -redis are exclusive")
	case len(fn) > 0:
		f, err := image.OpenFile(fn, m.WordCount())
		if err != nil {
			return nil, err
		}
		img = f
		done = func() error {
			err := f.Sync()
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return err
		}
	case len(addr) > 0:
		key := parm.ByName["-key"]
		if len(key) == 0 {
			key = redisimage.DefaultKey
		}
		r, err := redisimage.Dial("tcp", addr, key, m.WordCount())
		if err != nil {
			return nil, err
		}
		img, done = r, r.Close
	default:
		return nil, errors.New("missing -image FILE or -redis ADDR")
	}
	a, err := access.New(m, img)
	if err != nil {
		done()
		return nil, err
	}
	return &session{a, done}, nil
}

func (s *session) Close() error { return s.done() }

// resolve looks up a register path at element -n.
func (s *session) resolve(parm *parms.Parms, path string) (access.Ref, string, error) {
	var k uint
	if n := parm.ByName["-n"]; len(n) > 0 {
		u, err := strconv.ParseUint(n, 0, 0)
		if err != nil {
			return access.Ref{}, "", fmt.Errorf("-n %s: %w", n, regmap.ErrType)
		}
		k = uint(u)
	}
	return s.Resolve(path, k)
}
