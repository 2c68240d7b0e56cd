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

import (
	"github.com/xtaci/novelrs/field"
	"github.com/xtaci/novelrs/params"
)

// Reconstruct recovers the original payload from shards, a slice aligned
// to validator/shard index where a missing or erased shard is represented
// by a nil Shard. nReq is the same total-shard-count the caller passed to
// Encode.
func Reconstruct(shards []Shard, nReq int) ([]byte, error) {
	n, k, err := params.Derive(nReq, 0)
	if err != nil {
		return nil, err
	}

	shardBytes, err := verifyReconstructibility(shards)
	if err != nil {
		return nil, err
	}

	equalized := equalizeShardsToBlockLength(shards, n)

	erasures := make([]bool, n)
	existential := 0
	for i, s := range equalized {
		if s == nil {
			erasures[i] = true
		} else {
			existential++
		}
	}
	if existential < k {
		return nil, ErrNeedMoreShards{Have: existential, Min: k, All: n}
	}

	errorPolyLog := make([]field.Log, field.Size)
	evalErrorPolynomial(erasures, errorPolyLog, n)

	shardSyms := shardBytes / field.Bytes
	out := make([]byte, 0, shardSyms*field.Bytes*k)

	present := make([]field.Additive, n)
	have := make([]bool, n)
	for i := 0; i < shardSyms; i++ {
		for idx, s := range equalized {
			if s != nil {
				present[idx] = elementAt(s, i)
				have[idx] = true
			} else {
				have[idx] = false
			}
		}
		piece := reconstructSub(present, have, erasures, errorPolyLog, n, k)
		out = append(out, piece...)
	}

	return out, nil
}

// verifyReconstructibility finds the first present shard, ensures its
// length is nonzero and divides evenly by field.Bytes, and checks every
// other present shard shares that length. It returns the uniform length
// in bytes.
func verifyReconstructibility(shards []Shard) (int, error) {
	var first Shard
	for _, s := range shards {
		if s != nil {
			first = s
			break
		}
	}
	if first == nil {
		return 0, ErrPayloadSizeIsZero
	}

	uniform := len(first.Bytes())
	if uniform == 0 {
		return 0, ErrZeroLengthShards
	}
	if uniform%field.Bytes != 0 {
		return 0, ErrUndivisableShardLength{Len: uniform, FieldBytes: field.Bytes}
	}

	for _, s := range shards {
		if s == nil {
			continue
		}
		if n := len(s.Bytes()); n != uniform {
			return 0, ErrInconsistentShardLengths{First: uniform, Other: n}
		}
	}

	return uniform, nil
}

// equalizeShardsToBlockLength pads or truncates shards to exactly
// blockLength entries, representing absent positions with nil.
func equalizeShardsToBlockLength(shards []Shard, blockLength int) []Shard {
	out := make([]Shard, blockLength)
	for i := 0; i < blockLength && i < len(shards); i++ {
		out[i] = shards[i]
	}
	return out
}

// evalErrorPolynomial computes, once per reconstruction, the per-column
// multiplier decodeMain applies to undo the erasure pattern: two full
// field.Size Walsh transforms around a pointwise multiply by the
// precomputed LogWalsh table, folded back to a sign for the erased
// positions.
func evalErrorPolynomial(erasure []bool, logWalsh2 []field.Log, n int) {
	z := n
	if len(erasure) < z {
		z = len(erasure)
	}
	for i := 0; i < z; i++ {
		if erasure[i] {
			logWalsh2[i] = 1
		} else {
			logWalsh2[i] = 0
		}
	}
	for i := z; i < n; i++ {
		logWalsh2[i] = 0
	}

	field.Walsh(logWalsh2, field.Size)
	for i := 0; i < field.Size; i++ {
		tmp := uint64(logWalsh2[i]) * uint64(field.LogWalshAt(i))
		logWalsh2[i] = field.Log(tmp % field.OneMask)
	}
	field.Walsh(logWalsh2, field.Size)

	for i := 0; i < z; i++ {
		if erasure[i] {
			logWalsh2[i] = field.Log(field.OneMask) - logWalsh2[i]
		}
	}
}

// decodeMain applies the erasure-correcting transform in place: scale
// known columns by the error locator, transform to coefficient space,
// differentiate, transform back, then scale the erased columns by the
// same locator to recover them.
func decodeMain(codeword []field.Additive, erasure []bool, logWalsh2 []field.Log, n, k int) {
	for i := 0; i < n; i++ {
		if erasure[i] {
			codeword[i] = 0
		} else {
			codeword[i] = codeword[i].Mul(logWalsh2[i])
		}
	}

	field.InverseAFFT(codeword, n, 0)
	field.TweakedFormalDerivative(codeword, n)
	field.AFFT(codeword, n, 0)

	for i := 0; i < k; i++ {
		if erasure[i] {
			codeword[i] = codeword[i].Mul(logWalsh2[i])
		} else {
			codeword[i] = 0
		}
	}
}

// reconstructSub recovers one column (one field element per shard) of the
// payload. present holds the element value at every index where have is
// true; erasure marks which shard indices were never received.
func reconstructSub(present []field.Additive, have []bool, erasure []bool, errorPolyLog []field.Log, n, k int) []byte {
	recovered := make([]field.Additive, k)
	codeword := make([]field.Additive, n)

	for idx := 0; idx < n; idx++ {
		if have[idx] {
			codeword[idx] = present[idx]
		} else {
			codeword[idx] = 0
		}
		if idx < k {
			recovered[idx] = codeword[idx]
		}
	}

	decodeMain(codeword, erasure, errorPolyLog, n, k)

	for idx := 0; idx < k; idx++ {
		if erasure[idx] {
			recovered[idx] = codeword[idx]
		}
	}

	out := make([]byte, 0, k*field.Bytes)
	for _, v := range recovered {
		var buf [field.Bytes]byte
		v.PutBytes(buf[:])
		out = append(out, buf[:]...)
	}
	return out
}
