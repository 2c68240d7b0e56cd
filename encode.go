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

// Encode splits payload into nReq shards (k of which, derived by
// params.Derive, carry the payload; the rest are parity) using the
// default 1/3-rate split. Every shard is the same length, rounded up to a
// whole number of field elements.
func Encode(payload []byte, nReq int) ([]Shard, error) {
	if len(payload) == 0 {
		return nil, ErrPayloadSizeIsZero
	}

	n, k, err := params.Derive(nReq, 0)
	if err != nil {
		return nil, err
	}

	shardBytes := shardLenBytes(len(payload), k)
	shards := make([]Shard, nReq)
	for i := range shards {
		shards[i] = NewShard(make([]byte, shardBytes))
	}

	k2 := k * 2
	for chunkIdx, i := 0, 0; i < len(payload); chunkIdx, i = chunkIdx+1, i+k2 {
		end := i + k2
		if end > len(payload) {
			end = len(payload)
		}
		run := encodeSub(payload[i:end], n, k)
		for v := 0; v < nReq; v++ {
			setElementAt(shards[v], chunkIdx, run[v])
		}
	}

	return shards, nil
}

// shardLenBytes returns the per-shard byte length for a payload of
// payloadSize bytes split across k payload shards: payload bytes round up
// to field elements, those elements divide (rounding up) across k shards,
// and the result is converted back to bytes.
func shardLenBytes(payloadSize, k int) int {
	payloadSymbols := (payloadSize + 1) / 2
	shardSymbolsCeil := (payloadSymbols + k - 1) / k
	return shardSymbolsCeil * field.Bytes
}

// encodeSub pads bytes to n field elements and returns the length-n
// codeword produced by encodeLow.
func encodeSub(bytes []byte, n, k int) []field.Additive {
	padded := make([]byte, n*field.Bytes)
	copy(padded, bytes)

	data := make([]field.Additive, n)
	for i := range data {
		data[i] = field.AdditiveFromBytes(padded[2*i : 2*i+2])
	}

	codeword := append([]field.Additive(nil), data...)
	encodeLow(data, k, codeword, n)
	return codeword
}

// encodeLow is the k/n <= 1/2 systematic encoder: the first k codeword
// elements are the untouched payload, and each following block of k
// elements is the additive FFT, at a distinct column offset, of the
// payload's inverse transform.
func encodeLow(data []field.Additive, k int, codeword []field.Additive, n int) {
	copy(codeword, data)

	first := codeword[:k]
	field.InverseAFFT(first, k, 0)

	for shift := k; shift < n; shift += k {
		block := codeword[shift : shift+k]
		copy(block, first)
		field.AFFT(block, k, shift)
	}

	copy(codeword[:k], data[:k])
}
