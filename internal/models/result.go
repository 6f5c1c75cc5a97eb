package models

import "time"

// Result — итог одного шага теста. Пишется ровно один раз на пару
// (user, step) и дальше не меняется.
type Result struct {
	ID      int64 `json:"id"`
	UserID  int   `json:"user_id"`
	Step    int   `json:"step"`
	Score   int   `json:"score"` // проценты, 0..100
	Correct int   `json:"correct"`
	Total   int   `json:"total"`

	// nil — порог в 25% не взят, уровень не присвоен
	AwardedLevel *Level `json:"awarded_level"`

	CreatedAt time.Time `json:"created_at"`

	// NextStep вычисляется при ответе (step+1 при score>=75), не хранится.
	NextStep int `json:"next_step,omitempty"`
}

type SubmitRequest struct {
	// question_id -> индекс выбранного варианта
	Answers map[int64]int `json:"answers" binding:"required"`
}
