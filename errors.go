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
	"errors"
	"fmt"

	"github.com/xtaci/novelrs/params"
)

// Re-exported so callers need only import this package to errors.As
// against a parameter-derivation failure.
type (
	ErrWantedShardCountTooLow        = params.ErrWantedShardCountTooLow
	ErrWantedShardCountTooHigh       = params.ErrWantedShardCountTooHigh
	ErrWantedPayloadShardCountTooLow = params.ErrWantedPayloadShardCountTooLow
	ErrParameterMustBePowerOf2       = params.ErrParameterMustBePowerOf2
)

// ErrPayloadSizeIsZero is returned by Encode when given an empty payload;
// there is nothing to split into shards.
var ErrPayloadSizeIsZero = errors.New("novelrs: payload size is zero")

// ErrZeroLengthShards is returned when the first present shard given to
// Reconstruct has zero length, so it carries no data. A zero-length shard
// after a non-empty first one is reported as ErrInconsistentShardLengths.
var ErrZeroLengthShards = errors.New("novelrs: one or more shards have zero length")

// ErrNeedMoreShards is returned by Reconstruct when fewer than Min of the
// All shards the code was built for are present.
type ErrNeedMoreShards struct {
	Have, Min, All int
}

func (e ErrNeedMoreShards) Error() string {
	return fmt.Sprintf("novelrs: need at least %d of %d shards to reconstruct, have %d", e.Min, e.All, e.Have)
}

// ErrInconsistentShardLengths is returned when the shards passed to
// Reconstruct do not all share one length.
type ErrInconsistentShardLengths struct {
	First, Other int
}

func (e ErrInconsistentShardLengths) Error() string {
	return fmt.Sprintf("novelrs: inconsistent shard lengths: first shard is %d bytes, found %d bytes", e.First, e.Other)
}

// ErrUndivisableShardLength is returned when a shard's length does not
// divide evenly into field elements.
type ErrUndivisableShardLength struct {
	Len, FieldBytes int
}

func (e ErrUndivisableShardLength) Error() string {
	return fmt.Sprintf("novelrs: shard length %d does not divide evenly by %d", e.Len, e.FieldBytes)
}
