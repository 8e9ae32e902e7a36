// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package redisimage keeps a register image in a redis hash so that
// several processes, or a simulator and a driver, can share one set of
// registers.
//
// The hash field is the decimal byte address and the value is the
// decimal register word.  Words never stored read as zero.
package redisimage

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/jpillora/backoff"
	"github.com/platinasystems/log"
	"github.com/platinasystems/regmap"
	"github.com/platinasystems/regmap/image"
)

const (
	DefaultKey = "regmap"
	Timeout    = 500 * time.Millisecond
	// Connection attempts before Dial, or a reconnect, gives up.
	Attempts = 5
)

// Image is a redis backed image.Image.  It's safe for concurrent use.
type Image struct {
	Key  string
	addr string
	size uint

	mu   sync.Mutex
	conn redis.Conn
	dial func() (redis.Conn, error)
	b    backoff.Backoff
}

// New returns an image of n words over an established connection.  A
// broken connection is not redialed.
func New(conn redis.Conn, key string, n uint) *Image {
	return &Image{Key: key, size: regmap.Address(n), conn: conn}
}

// Dial connects to the redis server at addr and returns an image of n
// words stored in the given hash key.  Failed connections are retried
// with exponential backoff, here and whenever a later command finds the
// connection broken.
func Dial(network, addr, key string, n uint) (*Image, error) {
	img := New(nil, key, n)
	img.addr = addr
	img.dial = func() (redis.Conn, error) {
		return redis.Dial(network, addr,
			redis.DialConnectTimeout(Timeout),
			redis.DialReadTimeout(Timeout),
			redis.DialWriteTimeout(Timeout))
	}
	img.b = backoff.Backoff{
		Min:    50 * time.Millisecond,
		Max:    2 * time.Second,
		Factor: 2,
		Jitter: true,
	}
	img.mu.Lock()
	defer img.mu.Unlock()
	if err := img.connect(); err != nil {
		return nil, err
	}
	return img, nil
}

func (img *Image) connect() error {
	if img.dial == nil {
		return fmt.Errorf("redis %s: connection closed", img.Key)
	}
	img.b.Reset()
	for {
		conn, err := img.dial()
		if err == nil {
			img.conn = conn
			return nil
		}
		if img.b.Attempt() >= Attempts-1 {
			log.Printf("warning", "redis %s: giving up: %v", img.addr, err)
			return err
		}
		d := img.b.Duration()
		log.Printf("warning", "redis %s: %v, retry in %v", img.addr, err, d)
		time.Sleep(d)
	}
}

func (img *Image) do(cmd string, args ...interface{}) (interface{}, error) {
	img.mu.Lock()
	defer img.mu.Unlock()
	if img.conn == nil || img.conn.Err() != nil {
		if img.conn != nil {
			img.conn.Close()
			img.conn = nil
		}
		if err := img.connect(); err != nil {
			return nil, err
		}
	}
	return img.conn.Do(cmd, args...)
}

func (img *Image) Size() uint { return img.size }

func (img *Image) Load32(addr uint) (uint32, error) {
	if err := image.Check(img.size, addr); err != nil {
		return 0, err
	}
	v, err := redis.Uint64(img.do("HGET", img.Key, field(addr)))
	if err == redis.ErrNil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("redis %s[%d]: %d: %w", img.Key, addr, v, image.ErrRange)
	}
	return uint32(v), nil
}

func (img *Image) Store32(addr uint, v uint32) error {
	if err := image.Check(img.size, addr); err != nil {
		return err
	}
	_, err := img.do("HSET", img.Key, field(addr), int64(v))
	return err
}

// Snapshot returns every stored word by byte address.
func (img *Image) Snapshot() (map[uint]uint32, error) {
	m, err := redis.StringMap(img.do("HGETALL", img.Key))
	if err != nil {
		return nil, err
	}
	words := make(map[uint]uint32, len(m))
	for k, s := range m {
		addr, err := strconv.ParseUint(k, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("redis %s: field %q: %w", img.Key, k, err)
		}
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("redis %s[%s]: %w", img.Key, k, err)
		}
		words[uint(addr)] = uint32(v)
	}
	return words, nil
}

func (img *Image) Close() error {
	img.mu.Lock()
	defer img.mu.Unlock()
	img.dial = nil
	if img.conn == nil {
		return nil
	}
	err := img.conn.Close()
	img.conn = nil
	return err
}

func field(addr uint) string { return strconv.FormatUint(uint64(addr), 10) }
