package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCantorBasisIsMonicRecurrence(t *testing.T) {
	require.Equal(t, uint16(1), base[0], "base[0] must be 1 by construction")
	for i := 0; i < Bits-1; i++ {
		square := gfMulBitpolyReduced(base[i+1], base[i+1])
		assert.Equalf(t, base[i], square^base[i+1],
			"base[%d]^2 + base[%d] must equal base[%d]", i+1, i+1, i)
	}
}

func TestExpLogAreInverses(t *testing.T) {
	// zero has no logarithm, so the first identity only holds for i != 0.
	for i := 1; i < Size; i++ {
		assert.Equalf(t, uint16(i), expTable[logTable[i]], "expTable[logTable[%d]]", i)
	}
	for i := 0; i < OneMask; i++ {
		assert.Equalf(t, uint16(i), logTable[expTable[i]], "logTable[expTable[%d]]", i)
	}
}

// The zero slot holds OneMask, the value lookupSkew treats as "skew is
// zero, skip the multiply".
func TestLogTableZeroSlotIsOneMask(t *testing.T) {
	assert.Equal(t, uint16(OneMask), logTable[0])
}

func TestAdditiveAddIsXor(t *testing.T) {
	a, b := Additive(0x1234), Additive(0x5678)
	assert.Equal(t, Additive(0x1234^0x5678), a.Add(b))
	assert.Equal(t, a, a.Add(0))
}

func TestAdditiveMulByZeroIsZero(t *testing.T) {
	var zero Additive
	one := Additive(1)
	assert.Equal(t, Additive(0), zero.Mul(one.ToLog()))
}

func TestMultiplicationIsAssociativeAndCommutative(t *testing.T) {
	a := Additive(7).ToLog()
	b := Additive(300).ToLog()
	c := Additive(0xBEEF)

	left := c.Mul(a).ToLog().Mul(b)
	right := c.Mul(b).ToLog().Mul(a)
	assert.Equal(t, left, right)
}

func TestMultiplicativeIdentity(t *testing.T) {
	one := Additive(1).ToLog()
	for _, v := range []Additive{0, 1, 2, 0x7FFF, 0xFFFF} {
		assert.Equal(t, v, v.Mul(one))
	}
}

func TestBytesRoundTrip(t *testing.T) {
	var buf [Bytes]byte
	for _, v := range []Additive{0, 1, 0x00FF, 0xFF00, 0xFFFF, 0xBEEF} {
		v.PutBytes(buf[:])
		assert.Equal(t, v, AdditiveFromBytes(buf[:]))
	}
}
