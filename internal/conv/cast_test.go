package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64ToInt(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := Uint64ToInt(123)
		assert.NoError(t, err)
		assert.Equal(t, 123, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(math.MaxUint64)
		assert.Error(t, err)
	})
}

func TestMulUint64(t *testing.T) {
	got, ok := MulUint64(1<<32-1, 1<<32-1)
	assert.True(t, ok)
	assert.Equal(t, uint64(18446744065119617025), got)

	_, ok = MulUint64(1<<32, 1<<32)
	assert.False(t, ok)

	got, ok = MulUint64(0, math.MaxUint64)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), got)
}

func TestSaturating(t *testing.T) {
	assert.Equal(t, uint64(169), MulSaturating(13, 13))
	assert.Equal(t, uint64(math.MaxUint64), MulSaturating(1<<40, 1<<40))

	assert.Equal(t, uint64(30), AddSaturating(13, 17))
	assert.Equal(t, uint64(math.MaxUint64), AddSaturating(math.MaxUint64-1, 2))
}
