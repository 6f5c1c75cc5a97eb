package services

import "testschool/internal/models"

// Шаг теста покрывает две соседние ступени.
var StepLevels = map[int][]models.Level{
	1: {models.LevelA1, models.LevelA2},
	2: {models.LevelB1, models.LevelB2},
	3: {models.LevelC1, models.LevelC2},
}

const (
	FinalStep = 3

	// пороги по проценту правильных ответов
	minAwardScore  = 25 // ниже — уровень не присваивается
	upperBandScore = 50 // с этого процента — старшая ступень шага
	proceedScore   = 75 // допуск к следующему шагу

	questionsPerLevel = 22 // по каждой из двух ступеней шага, итого 44
)

func IsValidStep(step int) bool {
	_, ok := StepLevels[step]
	return ok
}

// DetermineAwardedLevel — чистая функция порогов:
//
//	p < 25         — уровень не присвоен
//	25 <= p < 50   — младшая ступень шага
//	p >= 50        — старшая ступень шага
func DetermineAwardedLevel(step, score int) (models.Level, bool) {
	levels, ok := StepLevels[step]
	if !ok || score < minAwardScore {
		return "", false
	}
	if score < upperBandScore {
		return levels[0], true
	}
	return levels[1], true
}

// NextStep — допуск к шагу step+1; вычисляется из балла при ответе,
// нигде не хранится. 0 — дальше хода нет.
func NextStep(step, score int) int {
	if step < FinalStep && score >= proceedScore {
		return step + 1
	}
	return 0
}
