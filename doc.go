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

// Package novelrs implements a systematic Reed-Solomon erasure code over
// GF(2^16) using the additive-FFT novel polynomial basis of Lin, Han and
// Chung ("Novel Polynomial Basis and Its Application to Reed-Solomon
// Erasure Codes," FOCS'14). Encode splits a payload into n shards, k of
// which carry payload and the rest parity; Reconstruct recovers the
// payload from any k of the n shards, in any combination.
//
// The field, Walsh transform and additive FFT live in package field; code
// parameter derivation lives in package params. This package wires them
// into the public Encode/Reconstruct pair and the Shard type callers
// implement to supply their own storage.
package novelrs
