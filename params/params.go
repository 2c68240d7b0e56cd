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

// Package params derives and validates the (n, k) shard-count pair every
// other package in this module treats as given: n total shards, k of
// which carry payload, both powers of two, n at most the field's size.
package params

import "github.com/xtaci/novelrs/field"

// MinShards is the smallest number of shards this code ever produces;
// below it there is nothing to recover from.
const MinShards = 2

// Derive computes the code parameters (n, k) from the caller's requested
// total shard count nReq and payload shard count kReq. k is the largest
// power of two not exceeding kReq, and n is the smallest power of two not
// less than nReq; when kReq is zero or negative the caller is asking for
// the default 1/3-rate code and k is derived from nReq instead, per spec.
func Derive(nReq, kReq int) (n, k int, err error) {
	if nReq < MinShards {
		return 0, 0, ErrWantedShardCountTooLow{NReq: nReq}
	}
	if nReq > field.Size {
		return 0, 0, ErrWantedShardCountTooHigh{NReq: nReq}
	}

	n = ceilPow2(nReq)

	if kReq <= 0 {
		kReq = (nReq + 2) / 3 // ceil(nReq/3), the default 1/3-rate split
	}
	if kReq < 1 {
		return 0, 0, ErrWantedPayloadShardCountTooLow{KReq: kReq}
	}

	k = floorPow2(kReq)
	if k < 1 {
		k = 1
	}
	if k >= n {
		// k must leave room for at least one parity shard.
		k = n >> 1
	}

	return n, k, nil
}

// RecoverabilitySubsetSize returns k, the number of shards (of any kind)
// that must survive for Reconstruct to succeed, under the default 1/3-rate
// policy for the given nReq.
func RecoverabilitySubsetSize(nReq int) (int, error) {
	_, k, err := Derive(nReq, 0)
	return k, err
}

func ceilPow2(v int) int {
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}

func floorPow2(v int) int {
	p := 1
	for p<<1 <= v {
		p <<= 1
	}
	return p
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
