package novelrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShardPadsOddLength(t *testing.T) {
	s := NewShard([]byte{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3, 0}, s.Bytes())
}

func TestNewShardLeavesEvenLengthUnpadded(t *testing.T) {
	s := NewShard([]byte{1, 2, 3, 4})
	assert.Equal(t, []byte{1, 2, 3, 4}, s.Bytes())
}

func TestShardElementsMatchesBytes(t *testing.T) {
	s := NewShard([]byte{0xAB, 0xCD, 0x01, 0x02})

	elems := s.Elements()
	require.Len(t, elems, 2)
	assert.Equal(t, [2]byte{0xAB, 0xCD}, elems[0])
	assert.Equal(t, [2]byte{0x01, 0x02}, elems[1])
}

func TestShardSetElementUpdatesBytesAndElements(t *testing.T) {
	s := NewShard([]byte{0, 0, 0, 0})

	s.SetElement(1, [2]byte{0x12, 0x34})
	assert.Equal(t, []byte{0, 0, 0x12, 0x34}, s.Bytes())
	assert.Equal(t, [2]byte{0x12, 0x34}, s.Elements()[1])
}
