package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDefaultThirdRate(t *testing.T) {
	cases := []struct {
		nReq  int
		wantN int
		wantK int
	}{
		{nReq: 3, wantN: 4, wantK: 1},
		{nReq: 10, wantN: 16, wantK: 4},
		{nReq: 16, wantN: 16, wantK: 4},
		{nReq: 100, wantN: 128, wantK: 32},
	}
	for _, c := range cases {
		n, k, err := Derive(c.nReq, 0)
		require.NoErrorf(t, err, "nReq=%d", c.nReq)
		assert.Equalf(t, c.wantN, n, "nReq=%d n", c.nReq)
		assert.Equalf(t, c.wantK, k, "nReq=%d k", c.nReq)
	}
}

func TestDeriveExplicitK(t *testing.T) {
	n, k, err := Derive(10, 3)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, 2, k)
}

func TestDeriveRejectsTooFewShards(t *testing.T) {
	_, _, err := Derive(1, 0)
	require.Error(t, err)
	var tooLow ErrWantedShardCountTooLow
	assert.ErrorAs(t, err, &tooLow)
	assert.Equal(t, 1, tooLow.NReq)
}

func TestDeriveRejectsTooManyShards(t *testing.T) {
	_, _, err := Derive(1<<20, 0)
	require.Error(t, err)
	var tooHigh ErrWantedShardCountTooHigh
	assert.ErrorAs(t, err, &tooHigh)
}

func TestDeriveKNeverReachesN(t *testing.T) {
	n, k, err := Derive(8, 8)
	require.NoError(t, err)
	assert.Less(t, k, n)
}

func TestRecoverabilitySubsetSizeMatchesDerive(t *testing.T) {
	_, wantK, err := Derive(100, 0)
	require.NoError(t, err)

	gotK, err := RecoverabilitySubsetSize(100)
	require.NoError(t, err)
	assert.Equal(t, wantK, gotK)
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []int{1, 2, 4, 8, 1024} {
		assert.Truef(t, IsPowerOfTwo(v), "%d", v)
	}
	for _, v := range []int{0, -2, 3, 5, 6, 100} {
		assert.Falsef(t, IsPowerOfTwo(v), "%d", v)
	}
}
