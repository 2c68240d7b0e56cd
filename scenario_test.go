package novelrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtaci/novelrs/internal/testdata"
	"github.com/xtaci/novelrs/params"
)

// The tests in this file pin the module's behaviour against fixed,
// hand-picked (payload, n_req, erasure-pattern) triples chosen to exercise
// the code's boundary conditions: minimal surviving shard counts, very
// small and very large n_req, shard lengths that divide evenly, and the
// empty-payload rejection.

func dropRange(shards []Shard, lo, hi int) {
	for i := lo; i < hi && i < len(shards); i++ {
		shards[i] = nil
	}
}

func TestScenarioSmallNReqDropToMinimum(t *testing.T) {
	payload := testdata.Bytes(16)
	const nReq = 10

	shards, err := Encode(payload, nReq)
	require.NoError(t, err)

	_, k, err := params.Derive(nReq, 0)
	require.NoError(t, err)

	// drop every shard except the first k, the minimum that must survive.
	dropRange(shards, k, nReq)

	got, err := Reconstruct(shards, nReq)
	require.NoError(t, err)
	assert.Equal(t, payload, truncate(got, len(payload)))
}

func TestScenarioLargeNReqSingleByteSymmetricDrop(t *testing.T) {
	payload := []byte{0x5A}
	const nReq = 100

	shards, err := Encode(payload, nReq)
	require.NoError(t, err)

	_, k, err := params.Derive(nReq, 0)
	require.NoError(t, err)

	half := (nReq - k) / 2
	dropRange(shards, 0, half)
	dropRange(shards, nReq-half, nReq)

	got, err := Reconstruct(shards, nReq)
	require.NoError(t, err)
	assert.Equal(t, payload, truncate(got, len(payload)))
}

func TestScenarioMultiShardPayloadSingleErasure(t *testing.T) {
	payload := testdata.Bytes(100)
	const nReq = 4

	shards, err := Encode(payload, nReq)
	require.NoError(t, err)
	shards[0] = nil

	got, err := Reconstruct(shards, nReq)
	require.NoError(t, err)
	assert.Equal(t, payload, truncate(got, len(payload)))
}

func TestScenarioVeryLargeNReq(t *testing.T) {
	payload := testdata.Bytes(17)
	const nReq = 2003

	shards, err := Encode(payload, nReq)
	require.NoError(t, err)

	_, k, err := params.Derive(nReq, 0)
	require.NoError(t, err)
	dropRange(shards, k, nReq)

	got, err := Reconstruct(shards, nReq)
	require.NoError(t, err)
	assert.Equal(t, payload, truncate(got, len(payload)))
}

func TestScenarioExactSymbolAlignedShards(t *testing.T) {
	const nReq = 2000
	_, k, err := params.Derive(nReq, 0)
	require.NoError(t, err)

	payload := testdata.Bytes(2 * k * 23)
	shards, err := Encode(payload, nReq)
	require.NoError(t, err)
	assert.Equal(t, 23*2, len(shards[0].Bytes()))

	dropRange(shards, 0, 256)
	dropRange(shards, nReq-256, nReq)

	got, err := Reconstruct(shards, nReq)
	require.NoError(t, err)
	assert.Equal(t, payload, truncate(got, len(payload)))
}

func TestScenarioEmptyPayloadRejected(t *testing.T) {
	_, err := Encode(nil, 2003)
	require.Error(t, err)
	assert.Equal(t, ErrPayloadSizeIsZero, err)
}
