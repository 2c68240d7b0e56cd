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

// TableSnapshot exposes the six init-time tables for tooling that wants
// to inspect or re-emit them (cmd/gentables); ordinary callers never need
// this, since every table-backed operation is already exported through
// Additive, Log, InverseAFFT, AFFT and Walsh.
type TableSnapshot struct {
	Base      [Bits]uint16
	LogTable  [Size]uint16
	ExpTable  [Size]uint16
	LogWalsh  [Size]Log
	SkewTable [OneMask]Log
	BTable    [Size >> 1]Log
}

// Snapshot returns a copy of the current tables.
func Snapshot() TableSnapshot {
	return TableSnapshot{
		Base:      base,
		LogTable:  logTable,
		ExpTable:  expTable,
		LogWalsh:  logWalsh,
		SkewTable: skewTable,
		BTable:    bTable,
	}
}
