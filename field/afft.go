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

package field

// InverseAFFT transforms data, a length-size slice of additive-form field
// elements, from the evaluation basis into the novel polynomial basis.
// size must be a power of two, and columnIndex+size must not exceed Size;
// columnIndex shifts the skew-table lookup so that multiple symbol-columns
// of one longer codeword can share the same skewTable via disjoint slices.
//
// This is Algorithm 2 (page 6288) of Lin-Han-Chung: depart doubles from 1
// to size/2, each level first XOR-accumulating the low half into the high
// half, then (unless the level's skew factor is the all-ones sentinel)
// folding the high half back into the low half scaled by that factor.
func InverseAFFT(data []Additive, size, columnIndex int) {
	for depart := 1; depart < size; depart <<= 1 {
		j := depart
		for j < size {
			for i := j - depart; i < j; i++ {
				data[i+depart] = data[i+depart].Add(data[i])
			}
			if skew, ok := lookupSkew(depart, j, columnIndex); ok {
				for i := j - depart; i < j; i++ {
					data[i] = data[i].Add(data[i+depart].Mul(skew))
				}
			}
			j += depart << 1
		}
	}
}

// AFFT transforms data from the novel polynomial basis into the evaluation
// basis; structurally identical to InverseAFFT with depart running from
// size/2 down to 1 and the two inner loops swapped (Algorithm 1, page
// 6287).
func AFFT(data []Additive, size, columnIndex int) {
	for depart := size >> 1; depart > 0; depart >>= 1 {
		j := depart
		for j < size {
			if skew, ok := lookupSkew(depart, j, columnIndex); ok {
				for i := j - depart; i < j; i++ {
					data[i] = data[i].Add(data[i+depart].Mul(skew))
				}
			}
			for i := j - depart; i < j; i++ {
				data[i+depart] = data[i+depart].Add(data[i])
			}
			j += depart << 1
		}
	}
}

// lookupSkew returns the skew factor s-bar_j(omega) for this butterfly, and
// false if it is the all-ones sentinel. skewTable holds OneMask only where
// the additive skew is zero (logTable[0] is OneMask), so the
// multiply-accumulate would add zero and the caller skips it entirely.
// depart is unused beyond the caller's bounds-checking; j and columnIndex
// alone address skewTable, per spec.
func lookupSkew(_ int, j, columnIndex int) (Log, bool) {
	skew := skewTable[j+columnIndex-1]
	if skew == OneMask {
		return 0, false
	}
	return skew, true
}

// FormalDerivative replaces cos, a length-size codeword column (size may be
// smaller than len(cos); entries at or beyond size are only ever read, via
// the safely-out-of-range-is-zero rule below), with its formal derivative
// in the novel basis.
func FormalDerivative(cos []Additive, size int) {
	get := func(j int) Additive {
		if j < len(cos) {
			return cos[j]
		}
		return 0
	}
	for i := 1; i < size; i++ {
		length := ((i ^ (i - 1)) + 1) >> 1
		for j := i - length; j < i; j++ {
			cos[j] = cos[j].Add(get(j + length))
		}
	}
	for i := size; i < Size && i < len(cos); i <<= 1 {
		for j := 0; j < size; j++ {
			cos[j] = cos[j].Add(get(j + i))
		}
	}
}

// TweakedFormalDerivative computes the formal derivative of codeword (a
// length-n codeword column) with the bTable pre/post twist applied
// unconditionally. The twist is the identity whenever this field's Cantor
// basis yields b=1, which it does here (buildSkewAndBTables in tables.go
// leaves every bTable entry at 0, the logarithm of 1) — applying it
// unconditionally is cheaper than branching on that fact and is always
// correct regardless.
func TweakedFormalDerivative(codeword []Additive, n int) {
	for i := 0; i < n; i += 2 {
		b := Log(OneMask) - bTable[i>>1]
		codeword[i] = codeword[i].Mul(b)
		codeword[i+1] = codeword[i+1].Mul(b)
	}

	FormalDerivative(codeword, n)

	for i := 0; i < n; i += 2 {
		b := bTable[i>>1]
		codeword[i] = codeword[i].Mul(b)
		codeword[i+1] = codeword[i+1].Mul(b)
	}
}
