package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqFor(size int) []Additive {
	data := make([]Additive, size)
	for i := range data {
		data[i] = Additive(i*2654435761 + 1)
	}
	return data
}

func TestAFFTRoundTrip(t *testing.T) {
	for _, size := range []int{2, 4, 8, 16, 32, 64, 256} {
		orig := seqFor(size)

		data := append([]Additive(nil), orig...)
		InverseAFFT(data, size, 0)
		AFFT(data, size, 0)

		require.Equalf(t, len(orig), len(data), "size %d", size)
		for i := range orig {
			assert.Equalf(t, orig[i], data[i], "size %d index %d", size, i)
		}
	}
}

func TestAFFTRoundTripWithColumnOffset(t *testing.T) {
	const size = 16
	for _, col := range []int{0, 16, 32, 64} {
		orig := seqFor(size)

		data := append([]Additive(nil), orig...)
		InverseAFFT(data, size, col)
		AFFT(data, size, col)

		for i := range orig {
			assert.Equalf(t, orig[i], data[i], "column %d index %d", col, i)
		}
	}
}

func TestInverseAFFTOfZeroIsZero(t *testing.T) {
	data := make([]Additive, 16)
	InverseAFFT(data, 16, 0)
	for i, v := range data {
		assert.Equalf(t, Additive(0), v, "index %d", i)
	}
}

func TestTweakedFormalDerivativeOfZeroIsZero(t *testing.T) {
	const n = 16
	data := make([]Additive, n)
	TweakedFormalDerivative(data, n)
	for i, v := range data {
		assert.Equalf(t, Additive(0), v, "index %d", i)
	}
}

func TestAFFTRoundTripAtNonzeroColumnOffset(t *testing.T) {
	orig := []Additive{1, 2, 3, 5, 8, 13, 21, 44, 65, 0, 0xFFFF, 2, 3, 5, 7, 11}

	data := append([]Additive(nil), orig...)
	AFFT(data, 16, 4)
	InverseAFFT(data, 16, 4)

	assert.Equal(t, orig, data)
}

func TestTweakedFormalDerivativeIsDeterministic(t *testing.T) {
	const n = 16
	a := seqFor(n)
	b := append([]Additive(nil), a...)
	TweakedFormalDerivative(a, n)
	TweakedFormalDerivative(b, n)
	assert.Equal(t, a, b)
}
