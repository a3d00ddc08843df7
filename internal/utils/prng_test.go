package utils

import (
	"testing"

	"go-road-defense/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestPRNGSeeded(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(1)
	assert.Equal(t, defs.CollectibleCoin, s.ChooseWeighted(nil))

	only := []defs.DropEntry{{Kind: defs.CollectibleGem, Weight: 0}, {Kind: defs.CollectibleHeart, Weight: 3}}
	for i := 0; i < 20; i++ {
		assert.Equal(t, defs.CollectibleHeart, s.ChooseWeighted(only))
	}

	zero := []defs.DropEntry{{Kind: defs.CollectibleGem}}
	assert.Equal(t, defs.CollectibleGem, s.ChooseWeighted(zero))
}

func TestChanceBounds(t *testing.T) {
	s := NewPRNGService(3)
	for i := 0; i < 50; i++ {
		assert.False(t, s.Chance(0))
		assert.True(t, s.Chance(1))
	}
}
