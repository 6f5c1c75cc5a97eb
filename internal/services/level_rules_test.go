package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"testschool/internal/models"
)

// Пороговая таблица целиком, включая граничные значения.
func TestDetermineAwardedLevel(t *testing.T) {
	tests := []struct {
		step    int
		score   int
		want    models.Level
		awarded bool
	}{
		{1, 0, "", false},
		{1, 24, "", false},
		{1, 25, models.LevelA1, true},
		{1, 49, models.LevelA1, true},
		{1, 50, models.LevelA2, true},
		{1, 74, models.LevelA2, true},
		{1, 75, models.LevelA2, true},
		{1, 100, models.LevelA2, true},

		{2, 0, "", false},
		{2, 24, "", false},
		{2, 25, models.LevelB1, true},
		{2, 49, models.LevelB1, true},
		{2, 50, models.LevelB2, true},
		{2, 74, models.LevelB2, true},
		{2, 75, models.LevelB2, true},
		{2, 100, models.LevelB2, true},

		{3, 0, "", false},
		{3, 24, "", false},
		{3, 25, models.LevelC1, true},
		{3, 49, models.LevelC1, true},
		{3, 50, models.LevelC2, true},
		{3, 74, models.LevelC2, true},
		{3, 75, models.LevelC2, true},
		{3, 100, models.LevelC2, true},
	}

	for _, tt := range tests {
		got, ok := DetermineAwardedLevel(tt.step, tt.score)
		assert.Equal(t, tt.awarded, ok, "step=%d score=%d", tt.step, tt.score)
		assert.Equal(t, tt.want, got, "step=%d score=%d", tt.step, tt.score)
	}
}

func TestDetermineAwardedLevelInvalidStep(t *testing.T) {
	_, ok := DetermineAwardedLevel(0, 100)
	assert.False(t, ok)
	_, ok = DetermineAwardedLevel(4, 100)
	assert.False(t, ok)
}

func TestNextStep(t *testing.T) {
	assert.Equal(t, 2, NextStep(1, 75))
	assert.Equal(t, 2, NextStep(1, 100))
	assert.Equal(t, 0, NextStep(1, 74))
	assert.Equal(t, 3, NextStep(2, 80))
	// с последнего шага хода дальше нет, даже при максимуме
	assert.Equal(t, 0, NextStep(3, 100))
}

func TestIsValidStep(t *testing.T) {
	assert.True(t, IsValidStep(1))
	assert.True(t, IsValidStep(2))
	assert.True(t, IsValidStep(3))
	assert.False(t, IsValidStep(0))
	assert.False(t, IsValidStep(4))
}
