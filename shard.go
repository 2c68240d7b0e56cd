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

package novelrs

import "github.com/xtaci/novelrs/field"

// Shard is the capability a caller's buffer must offer to take part in an
// encode or reconstruct call. Implementations own their backing storage;
// this package never allocates shard buffers on the caller's behalf
// except inside NewShard.
type Shard interface {
	// Bytes returns the shard's raw bytes, even length, field.Bytes-aligned.
	Bytes() []byte
	// Elements returns the shard reinterpreted as a slice of big-endian
	// field elements. The implementations in this module return a fresh
	// copy: writing to it does not change Bytes; use SetElement for that.
	Elements() [][2]byte
	// SetElement overwrites element i with v; used by Encode and
	// Reconstruct to write computed parity/recovered data back.
	SetElement(i int, v [2]byte)
}

// wrappedShard is the default Shard backed by a single []byte, padding an
// odd-length payload with one trailing zero byte so every shard divides
// evenly into field.Bytes-sized elements.
type wrappedShard struct {
	data []byte
}

// NewShard wraps data as a Shard. If len(data) is odd it is copied into an
// even-length buffer with one zero byte appended; otherwise data is used
// directly, unpadded, without copying.
func NewShard(data []byte) Shard {
	if len(data)%field.Bytes == 0 {
		return &wrappedShard{data: data}
	}
	padded := make([]byte, len(data)+1)
	copy(padded, data)
	return &wrappedShard{data: padded}
}

func (w *wrappedShard) Bytes() []byte {
	return w.data
}

func (w *wrappedShard) Elements() [][2]byte {
	n := len(w.data) / field.Bytes
	out := make([][2]byte, n)
	for i := 0; i < n; i++ {
		out[i][0] = w.data[2*i]
		out[i][1] = w.data[2*i+1]
	}
	return out
}

func (w *wrappedShard) SetElement(i int, v [2]byte) {
	w.data[2*i] = v[0]
	w.data[2*i+1] = v[1]
}

// elementAt reads field element i directly out of s without allocating an
// Elements view, the hot path Encode/Reconstruct actually use.
func elementAt(s Shard, i int) field.Additive {
	b := s.Bytes()
	return field.AdditiveFromBytes(b[2*i : 2*i+2])
}

func setElementAt(s Shard, i int, v field.Additive) {
	var buf [2]byte
	v.PutBytes(buf[:])
	s.SetElement(i, buf)
}
