package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, 0, Clamp(-3, 0, 5))
	assert.Equal(t, 3, Clamp(3, 5, 0)) // swapped bounds
	assert.Equal(t, int64(800), Clamp(int64(801), 0, 800))
}

func TestBetween(t *testing.T) {
	assert.True(t, Between(300000, 300000, 8500300000))
	assert.True(t, Between(5, 9, 1))
	assert.False(t, Between(-1, 0, 1))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(2), FloorDiv(int64(7), 3))
	assert.Equal(t, int64(-3), FloorDiv(int64(-7), 3))
	assert.Equal(t, int64(0), FloorDiv(int64(0), 3))
}
