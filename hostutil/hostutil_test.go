package hostutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotbarSlotKnownDigits(t *testing.T) {
	assert := assert.New(t)
	for digit := 0; digit <= 9; digit++ {
		slot, ok := HotbarSlot('0' + digit)
		assert.True(ok)
		assert.Equal(digit, slot)
	}
}

func TestHotbarSlotAbsentSentinel(t *testing.T) {
	assert := assert.New(t)
	_, ok := HotbarSlot('a')
	assert.False(ok)
}

func TestRefreshToFPSCeilSemantics(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, RefreshToFPS(60.0))
	assert.Equal(60, RefreshToFPS(59.999999999))
	assert.Equal(75, RefreshToFPS(74.97))
	assert.Equal(144, RefreshToFPS(143.5))
}

func TestRepeatBuildsSlice(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]bool{true, true, true}, Repeat(true, 3))
	assert.Empty(Repeat("x", 0))
}
