package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelRankOrdering(t *testing.T) {
	ordered := []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(),
			"%s must rank above %s", ordered[i], ordered[i-1])
	}
}

func TestLevelRankUnknownIsZero(t *testing.T) {
	assert.Equal(t, 0, Level("D1").Rank())
	assert.Equal(t, 0, Level("").Rank())
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("B2")
	assert.True(t, ok)
	assert.Equal(t, LevelB2, lvl)

	_, ok = ParseLevel("b2")
	assert.False(t, ok)

	_, ok = ParseLevel("A3")
	assert.False(t, ok)
}
