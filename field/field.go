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

// Package field implements GF(2^16) arithmetic in the "novel polynomial
// basis" of Lin, Han and Chung, "Novel Polynomial Basis and Its Application
// to Reed-Solomon Erasure Codes" (FOCS'14). It provides the additive and
// logarithm representations of field elements, the precomputed tables that
// depend only on the field, the additive FFT and its inverse, and the fast
// Walsh-Hadamard transform the decoder's error locator needs.
//
// Every exported function here is total and allocation-free save for the
// one-time table construction in init. There is no I/O and no notion of a
// "bad" field element: Additive and Log are plain uint16s and every table
// lookup is in-bounds by construction.
package field

const (
	// Bits is the field's bit-width, r in spec terms.
	Bits = 16
	// Size is q = 2^Bits, the number of field elements.
	Size = 1 << Bits
	// OneMask is q-1, both the nonzero-element mask and the modulus for
	// logarithm-domain arithmetic.
	OneMask = Size - 1
	// Bytes is the big-endian wire width of one field element.
	Bytes = Bits / 8

	// generator is the tail of the field's irreducible polynomial.
	generator = 0x2D
	// baseFinal seeds the Cantor basis recurrence.
	baseFinal = 39198
)

// Additive is a field element in its XOR (additive-group) representation.
type Additive uint16

// Log is a field element in its discrete-logarithm representation. Log(0)
// has no representation; see ToLog.
type Log uint16

// Add returns a+b, which for this field is XOR.
func (a Additive) Add(b Additive) Additive {
	return a ^ b
}

// Mul returns a * exp(b) over GF(2^16). If a is the additive zero, the
// result is zero regardless of b — this is the one place the leaky
// zero-is-not-a-log abstraction is safely papered over: b may be a
// Log derived from a LOG_TABLE[0] slot, and the short-circuit below means
// that never matters.
func (a Additive) Mul(b Log) Additive {
	if a == 0 {
		return 0
	}
	return Log(logTable[a]).Mul(b)
}

// Mul returns exp(a+b) over GF(2^16), with the sum of logarithms reduced
// modulo OneMask by a single mask-and-fold (valid since both operands are
// already < Size, so the sum needs at most one carry fold).
func (a Log) Mul(b Log) Additive {
	s := uint32(a) + uint32(b)
	return Additive(expTable[(s&OneMask)+(s>>Bits)])
}

// ToLog returns the discrete logarithm of a. The result is unspecified
// when a == 0; callers must avoid multiplying by a Log derived from a
// zero Additive except through Additive.Mul, which special-cases it.
func (a Additive) ToLog() Log {
	return Log(logTable[a])
}

// PutBytes writes a big-endian.
func (a Additive) PutBytes(dst []byte) {
	dst[0] = byte(a >> 8)
	dst[1] = byte(a)
}

// AdditiveFromBytes reads a big-endian field element.
func AdditiveFromBytes(src []byte) Additive {
	return Additive(uint16(src[0])<<8 | uint16(src[1]))
}
