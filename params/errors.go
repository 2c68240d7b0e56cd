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

package params

import "fmt"

// ErrWantedShardCountTooLow is returned when the caller's requested total
// shard count is below MinShards.
type ErrWantedShardCountTooLow struct {
	NReq int
}

func (e ErrWantedShardCountTooLow) Error() string {
	return fmt.Sprintf("params: wanted shard count %d is below the minimum of %d", e.NReq, MinShards)
}

// ErrWantedShardCountTooHigh is returned when the caller's requested total
// shard count exceeds the field's element count.
type ErrWantedShardCountTooHigh struct {
	NReq int
}

func (e ErrWantedShardCountTooHigh) Error() string {
	return fmt.Sprintf("params: wanted shard count %d exceeds the field size", e.NReq)
}

// ErrWantedPayloadShardCountTooLow is returned when the derived payload
// shard count would be less than one.
type ErrWantedPayloadShardCountTooLow struct {
	KReq int
}

func (e ErrWantedPayloadShardCountTooLow) Error() string {
	return fmt.Sprintf("params: wanted payload shard count %d is too low", e.KReq)
}

// ErrParameterMustBePowerOf2 is returned by callers that require an exact
// power-of-two n or k rather than deriving one, when the supplied value
// fails that check.
type ErrParameterMustBePowerOf2 struct {
	N, K int
}

func (e ErrParameterMustBePowerOf2) Error() string {
	return fmt.Sprintf("params: n=%d k=%d must both be powers of two", e.N, e.K)
}
