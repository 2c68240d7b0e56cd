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

// The six tables below are pure functions of the field (bit-width, the
// generator, and the Cantor basis seed) and are built exactly once, here in
// init, giving the tables one-shot-latch publication semantics for free:
// Go guarantees init completes, single-threaded, before any other package
// can observe field's exported state, so no sync.Once is needed for the
// "safe under concurrent first-touch" requirement — there is no first
// touch, only package load.
//
// An alternative, build-time path that emits these as Go source instead of
// computing them at load is provided by cmd/gentables; see field/doc.go.
var (
	base      [Bits]uint16
	logTable  [Size]uint16
	expTable  [Size]uint16
	logWalsh  [Size]Log
	skewTable [OneMask]Log
	bTable    [Size >> 1]Log
)

func init() {
	var ok bool
	base, ok = generateCantorBasis(baseFinal)
	if !ok {
		panic("field: Cantor basis recurrence collapsed for the configured BASE_FINAL")
	}
	buildExpLogTables()
	buildLogWalsh()
	buildSkewAndBTables()
}

// generateCantorBasis solves the Cantor recurrence base[i+1]^2 + base[i+1]
// = base[i] backwards from the seed, filling base[Bits-1] down to base[0].
func generateCantorBasis(seed uint16) ([Bits]uint16, bool) {
	var b [Bits]uint16
	b[0] = 1
	next := seed
	for i := Bits - 1; i >= 0; i-- {
		if next == 0 || (next == 1 && b[i] != 1) {
			return b, false
		}
		b[i] = next
		square := gfMulBitpolyReduced(next, next)
		next ^= square
	}
	return b, next == 0
}

// bitpolyMul multiplies two field elements as GF(2)[x] polynomials, without
// reducing modulo the field's irreducible polynomial.
func bitpolyMul(a, b uint32) uint32 {
	var r uint32
	for i := 0; i < Bits; i++ {
		if (b>>uint(i))&1 != 0 {
			r ^= a << uint(i)
		}
	}
	return r
}

// gfMulBitpolyReduced multiplies a and b over GF(2^Bits), reducing by the
// irreducible polynomial x^Bits + generator.
func gfMulBitpolyReduced(a, b uint16) uint16 {
	r := bitpolyMul(uint32(a), uint32(b))
	red := uint32(1<<Bits) | uint32(generator)
	for i := 2*Bits - 1; i >= Bits; i-- {
		if r&(1<<uint(i)) != 0 {
			r ^= red << uint(i-Bits)
		}
	}
	return uint16(r)
}

// buildExpLogTables generates expTable by walking the multiplicative group
// generator-style, then derives logTable by XOR-combining Cantor basis
// elements according to each index's bit pattern and mapping through
// expTable, then inverts expTable so expTable[logTable[i]] == i.
func buildExpLogTables() {
	const mask = (uint16(1) << (Bits - 1)) - 1

	state := uint16(1)
	for i := uint32(0); i < OneMask; i++ {
		expTable[state] = uint16(i)
		if state>>(Bits-1) != 0 {
			state &= mask
			state = state<<1 ^ generator
		} else {
			state <<= 1
		}
	}
	expTable[0] = OneMask

	logTable[0] = 0
	for i := 0; i < Bits; i++ {
		for j := 0; j < (1 << uint(i)); j++ {
			logTable[j+(1<<uint(i))] = logTable[j] ^ base[i]
		}
	}
	for i := 0; i < Size; i++ {
		logTable[i] = expTable[logTable[i]]
	}
	for i := 0; i < Size; i++ {
		expTable[logTable[i]] = uint16(i)
	}
	expTable[OneMask] = expTable[0]
}

// buildLogWalsh seeds logWalsh from logTable (forcing the zero slot) and
// applies the Walsh transform in place.
func buildLogWalsh() {
	for i := 0; i < Size; i++ {
		logWalsh[i] = Log(logTable[i])
	}
	logWalsh[0] = 0
	Walsh(logWalsh[:], Size)
}

// buildSkewAndBTables computes AFFT_SKEW_TABLE and the b-twist table B by
// the parallel recurrence of Lin-Han-Chung over the Bits-1 recursion
// levels. See field/afft.go for how skewTable and bTable are consumed.
func buildSkewAndBTables() {
	var lvl [Bits - 1]uint16
	var skewsAdditive [OneMask]Additive

	for i := 1; i < Bits; i++ {
		lvl[i-1] = uint16(1) << uint(i)
	}

	for m := 0; m < Bits-1; m++ {
		step := 1 << uint(m+1)
		skewsAdditive[(1<<uint(m))-1] = 0
		for i := m; i < Bits-1; i++ {
			s := 1 << uint(i+1)
			for j := (1 << uint(m)) - 1; j < s; j += step {
				skewsAdditive[j+s] = skewsAdditive[j] ^ Additive(lvl[i])
			}
		}

		idx := Additive(lvl[m]).Mul(Additive(lvl[m] ^ 1).ToLog())
		lvl[m] = OneMask - uint16(idx.ToLog())

		for i := m + 1; i < Bits-1; i++ {
			b := uint32(Additive(lvl[i]^1).ToLog()) + uint32(lvl[m])
			b %= OneMask
			lvl[i] = uint16(Additive(lvl[i]).Mul(Log(b)))
		}
	}

	for i := 0; i < OneMask; i++ {
		skewTable[i] = skewsAdditive[i].ToLog()
	}

	lvl[0] = OneMask - lvl[0]
	for i := 1; i < Bits-1; i++ {
		lvl[i] = uint16((uint32(OneMask) - uint32(lvl[i]) + uint32(lvl[i-1])) % OneMask)
	}

	bTable[0] = 0
	for i := 0; i < Bits-1; i++ {
		depart := 1 << uint(i)
		for j := 0; j < depart; j++ {
			exponent := (uint32(bTable[j]) + uint32(lvl[i])) % OneMask
			bTable[j+depart] = Log(exponent)
		}
	}
}
