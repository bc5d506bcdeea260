package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(7), Seed(7))
	assert.NotZero(t, Seed(0))
}

func TestDeriveStreams(t *testing.T) {
	assert.Equal(t, Derive(9, 1).Uint64(), Derive(9, 1).Uint64())
	assert.NotEqual(t, Derive(9, 1).Uint64(), Derive(9, 2).Uint64())
	assert.NotEqual(t, Derive(9, 0).Uint64(), New(9).Uint64())
}
