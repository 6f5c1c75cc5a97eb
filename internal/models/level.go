package models

// Level — одна из шести ступеней цифровой компетентности.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Явный ранг вместо позиции в срезе: если набор когда-нибудь расширят,
// сравнение уровней не поедет молча.
var levelRank = map[Level]int{
	LevelA1: 1,
	LevelA2: 2,
	LevelB1: 3,
	LevelB2: 4,
	LevelC1: 5,
	LevelC2: 6,
}

// Rank возвращает позицию уровня в фиксированном порядке A1 < ... < C2.
// Для неизвестного значения — 0.
func (l Level) Rank() int {
	return levelRank[l]
}

func (l Level) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	if !l.Valid() {
		return "", false
	}
	return l, true
}
