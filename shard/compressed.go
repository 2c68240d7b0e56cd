// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package shard provides alternative Shard implementations. novelrs's
// default wrapper (novelrs.NewShard) trades nothing for simplicity;
// Compressed here trades CPU for memory by keeping a shard's bytes
// snappy-compressed at rest, for callers juggling many mostly-zero shards
// (a common shape for small payloads spread across a large n_req).
package shard

import "github.com/golang/snappy"

// Compressed is a Shard whose backing bytes are snappy-compressed except
// while being actively read or written. It satisfies novelrs.Shard
// structurally and does not import that package.
type Compressed struct {
	compressed []byte
	raw        []byte
	rawLen     int
}

// NewCompressed wraps data, compressing it immediately; the caller's
// slice is not retained.
func NewCompressed(data []byte) *Compressed {
	c := &Compressed{rawLen: len(data)}
	c.compressed = snappy.Encode(nil, data)
	return c
}

// Bytes decompresses into a private buffer, if not already decompressed,
// and returns it. Callers that call SetElement must do so against the
// slice most recently returned by Bytes or Elements.
func (c *Compressed) Bytes() []byte {
	c.inflate()
	return c.raw
}

// Elements reinterprets the decompressed bytes as field-element pairs.
func (c *Compressed) Elements() [][2]byte {
	raw := c.Bytes()
	out := make([][2]byte, len(raw)/2)
	for i := range out {
		out[i][0] = raw[2*i]
		out[i][1] = raw[2*i+1]
	}
	return out
}

// SetElement decompresses if needed, writes element i, and marks the
// compressed cache stale; call Compact to re-pack once writes are done.
func (c *Compressed) SetElement(i int, v [2]byte) {
	c.inflate()
	c.raw[2*i] = v[0]
	c.raw[2*i+1] = v[1]
	c.compressed = nil
}

// Compact recompresses the current bytes and releases the raw buffer.
// A no-op if the raw buffer was never materialized or already compacted.
func (c *Compressed) Compact() {
	if c.raw == nil {
		return
	}
	c.compressed = snappy.Encode(nil, c.raw)
	c.rawLen = len(c.raw)
	c.raw = nil
}

func (c *Compressed) inflate() {
	if c.raw != nil {
		return
	}
	dst := make([]byte, c.rawLen)
	raw, err := snappy.Decode(dst, c.compressed)
	if err != nil {
		// compressed was always produced by Compact/NewCompressed from a
		// buffer of exactly rawLen bytes; a decode failure here means the
		// struct's invariant was broken by something outside this type.
		panic("shard: compressed buffer does not match its own rawLen: " + err.Error())
	}
	c.raw = raw
}
