package novelrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtaci/novelrs/internal/testdata"
)

func TestEncodeRejectsEmptyPayload(t *testing.T) {
	_, err := Encode(nil, 4)
	require.Error(t, err)
	assert.Equal(t, ErrPayloadSizeIsZero, err)
}

func TestEncodeProducesNReqShardsOfEqualLength(t *testing.T) {
	payload := testdata.Bytes(1000)
	shards, err := Encode(payload, 10)
	require.NoError(t, err)
	require.Len(t, shards, 10)

	want := len(shards[0].Bytes())
	for i, s := range shards {
		assert.Equalf(t, want, len(s.Bytes()), "shard %d", i)
	}
}

func TestEncodeRejectsTooFewShards(t *testing.T) {
	_, err := Encode([]byte("x"), 1)
	require.Error(t, err)
	var tooLow ErrWantedShardCountTooLow
	assert.ErrorAs(t, err, &tooLow)
}
