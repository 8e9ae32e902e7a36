// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package redisimage

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/jpillora/backoff"
	"github.com/platinasystems/regmap/image"
	"github.com/platinasystems/regmap/internal/test"
)

// hash is an in memory redis.Conn serving HGET, HSET and HGETALL.
type hash struct {
	h      map[string]map[string][]byte
	err    error
	closed bool
}

func newHash() *hash { return &hash{h: make(map[string]map[string][]byte)} }

func (c *hash) Close() error                      { c.closed = true; return nil }
func (c *hash) Err() error                        { return c.err }
func (c *hash) Send(string, ...interface{}) error { return errors.New("unsupported") }
func (c *hash) Flush() error                      { return nil }
func (c *hash) Receive() (interface{}, error)     { return nil, errors.New("unsupported") }

func (c *hash) Do(cmd string, args ...interface{}) (interface{}, error) {
	if c.err != nil {
		return nil, c.err
	}
	key := fmt.Sprint(args[0])
	switch cmd {
	case "HGET":
		v, found := c.h[key][fmt.Sprint(args[1])]
		if !found {
			return nil, nil
		}
		return v, nil
	case "HSET":
		if c.h[key] == nil {
			c.h[key] = make(map[string][]byte)
		}
		c.h[key][fmt.Sprint(args[1])] = []byte(fmt.Sprint(args[2]))
		return int64(1), nil
	case "HGETALL":
		var reply []interface{}
		for k, v := range c.h[key] {
			reply = append(reply, []byte(k), v)
		}
		return reply, nil
	}
	return nil, redis.Error("ERR unknown command " + cmd)
}

func TestLoadStore(t *testing.T) {
	assert := test.Assert{TB: t}
	c := newHash()
	img := New(c, "dev", 4)
	assert.True(img.Size() == 16)

	v, err := img.Load32(8)
	assert.Nil(err)
	assert.Word(v, 0)

	assert.Nil(img.Store32(8, 0xffffffff))
	assert.Equal(string(c.h["dev"]["8"]), "4294967295")
	v, err = img.Load32(8)
	assert.Nil(err)
	assert.Word(v, 0xffffffff)

	assert.Error(img.Store32(16, 1), image.ErrRange)
	_, err = img.Load32(6)
	assert.Error(err, image.ErrAlign)
}

func TestSnapshot(t *testing.T) {
	assert := test.Assert{TB: t}
	img := New(newHash(), DefaultKey, 8)
	assert.Nil(img.Store32(0, 1))
	assert.Nil(img.Store32(28, 42))
	words, err := img.Snapshot()
	assert.Nil(err)
	assert.Value(words, map[uint]uint32{0: 1, 28: 42})
}

func TestBrokenConn(t *testing.T) {
	assert := test.Assert{TB: t}
	c := newHash()
	img := New(c, "dev", 1)
	c.err = errors.New("EOF")
	_, err := img.Load32(0)
	assert.Match(err.Error(), "connection closed")
	assert.True(c.closed)
}

func TestReconnect(t *testing.T) {
	assert := test.Assert{TB: t}
	var dials int
	good := newHash()
	img := New(nil, "dev", 1)
	img.b = backoff.Backoff{Min: time.Millisecond, Max: time.Millisecond}
	img.dial = func() (redis.Conn, error) {
		dials++
		if dials < Attempts {
			return nil, errors.New("connection refused")
		}
		return good, nil
	}
	assert.Nil(img.Store32(0, 5))
	assert.True(dials == Attempts)
	assert.Equal(string(good.h["dev"]["0"]), "5")

	dials = 0
	img.conn = nil
	img.dial = func() (redis.Conn, error) {
		dials++
		return nil, errors.New("connection refused")
	}
	assert.Error(img.Store32(0, 5), "connection refused")
	assert.True(dials == Attempts)
	assert.Nil(img.Close())
}
