package novelrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/xtaci/novelrs/internal/testdata"
	"github.com/xtaci/novelrs/params"
)

// truncate drops the trailing zero padding Encode/Reconstruct introduce so
// the recovered payload can be compared against the exact original bytes.
func truncate(got []byte, want int) []byte {
	if len(got) < want {
		return got
	}
	return got[:want]
}

func encodeAndDrop(t require.TestingT, payload []byte, nReq int, drop []int) []Shard {
	shards, err := Encode(payload, nReq)
	require.NoError(t, err)
	dropped := make([]Shard, len(shards))
	copy(dropped, shards)
	for _, i := range drop {
		dropped[i] = nil
	}
	return dropped
}

func TestRoundTripNoErasures(t *testing.T) {
	payload := testdata.Bytes(4096)
	shards := encodeAndDrop(t, payload, 12, nil)
	got, err := Reconstruct(shards, 12)
	require.NoError(t, err)
	assert.Equal(t, payload, truncate(got, len(payload)))
}

func TestRoundTripToleratesMaximalErasures(t *testing.T) {
	payload := testdata.Bytes(4096)
	const n = 16
	_, k, err := params.Derive(n, 0)
	require.NoError(t, err)

	// drop every shard above index k-1, the most erasures the code
	// guarantees to tolerate.
	drop := make([]int, 0, n-k)
	for i := k; i < n; i++ {
		drop = append(drop, i)
	}

	shards := encodeAndDrop(t, payload, n, drop)
	got, err := Reconstruct(shards, n)
	require.NoError(t, err)
	assert.Equal(t, payload, truncate(got, len(payload)))
}

func TestRoundTripFailsWithTooFewShards(t *testing.T) {
	payload := testdata.Bytes(256)
	const n = 8
	_, k, err := params.Derive(n, 0)
	require.NoError(t, err)

	drop := make([]int, 0, n-k+1)
	for i := 0; i < n-k+1; i++ {
		drop = append(drop, i)
	}

	shards := encodeAndDrop(t, payload, n, drop)
	_, err = Reconstruct(shards, n)
	require.Error(t, err)
	var needMore ErrNeedMoreShards
	assert.ErrorAs(t, err, &needMore)
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 1, 2000).Draw(t, "payload")
		nReq := rapid.IntRange(2, 32).Draw(t, "nReq")

		shards, err := Encode(payload, nReq)
		if err != nil {
			return
		}

		_, k, err := params.Derive(nReq, 0)
		require.NoError(t, err)

		dropped := make([]Shard, len(shards))
		copy(dropped, shards)

		survivors := len(shards)
		for i := 0; i < len(shards) && survivors > k; i++ {
			if rapid.Bool().Draw(t, "drop") {
				dropped[i] = nil
				survivors--
			}
		}

		got, err := Reconstruct(dropped, nReq)
		require.NoError(t, err)
		assert.Equal(t, payload, truncate(got, len(payload)))
	})
}
