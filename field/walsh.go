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

// Walsh applies the fast Walsh-Hadamard transform in place to a log-domain
// vector of the given power-of-two size (size must not exceed Size). All
// arithmetic happens in the log domain modulo OneMask: at each butterfly,
//
//	data[i]        := data[i] * data[i+depart]
//	data[i+depart] := data[i] / data[i+depart]
//
// expressed additively as sum and (OneMask-difference), each folded back
// into [0, OneMask] by one mask-and-shift (OneMask and 0 both stand for
// zero modulo OneMask).
func Walsh(data []Log, size int) {
	for depart := 1; depart < size; depart <<= 1 {
		next := depart << 1
		for j := 0; j < size; j += next {
			for i := j; i < depart+j; i++ {
				sum := uint32(data[i]) + uint32(data[i+depart])
				diff := uint32(data[i]) + OneMask - uint32(data[i+depart])
				data[i] = Log((sum & OneMask) + (sum >> Bits))
				data[i+depart] = Log((diff & OneMask) + (diff >> Bits))
			}
		}
	}
}

// LogWalshAt returns element i of the precomputed Walsh transform of the
// logarithm table, the fixed multiplier eval_error_polynomial needs.
func LogWalshAt(i int) Log {
	return logWalsh[i]
}
