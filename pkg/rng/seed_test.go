package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	assert.NoError(t, err)
	b, err := NewSeed()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDeriveSeed(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		s := DeriveSeed(42, i)
		assert.Equal(t, s, DeriveSeed(42, i))
		assert.False(t, seen[s], "derived seed %d repeated", i)
		seen[s] = true
	}
	assert.NotEqual(t, DeriveSeed(42, 0), DeriveSeed(43, 0))
}

func TestSplitMix64(t *testing.T) {
	// reference outputs of splitmix64 seeded with 0
	assert.Equal(t, uint64(0xe220a8397b1dcdaf), SplitMix64(0x9e3779b97f4a7c15))
	assert.Equal(t, uint64(0), SplitMix64(0))
}
