package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalshOfZeroIsZero(t *testing.T) {
	data := make([]Log, 64)
	Walsh(data, 64)
	// The difference fold maps 0-0 to OneMask, which is zero modulo
	// OneMask; only index 0 sees sums alone and stays exactly 0.
	for i, v := range data {
		want := Log(OneMask)
		if i == 0 {
			want = 0
		}
		assert.Equalf(t, want, v, "index %d", i)
	}
}

func TestWalshSizeTwoButterfly(t *testing.T) {
	a, b := uint32(1000), uint32(2000)
	data := []Log{Log(a), Log(b)}
	Walsh(data, 2)

	sum := a + b
	diff := a + OneMask - b
	wantLo := Log((sum & OneMask) + (sum >> Bits))
	wantHi := Log((diff & OneMask) + (diff >> Bits))

	assert.Equal(t, wantLo, data[0])
	assert.Equal(t, wantHi, data[1])
}

func TestWalshIsDeterministic(t *testing.T) {
	size := 32
	a := make([]Log, size)
	b := make([]Log, size)
	for i := 0; i < size; i++ {
		a[i] = Log(i * 13 % OneMask)
		b[i] = a[i]
	}
	Walsh(a, size)
	Walsh(b, size)
	assert.Equal(t, a, b)
}
