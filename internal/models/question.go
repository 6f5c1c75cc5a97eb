package models

import (
	"fmt"
	"time"
)

type Question struct {
	ID          int64     `json:"id"`
	Competency  string    `json:"competency"`
	Level       Level     `json:"level"`
	Text        string    `json:"text"`
	Options     []string  `json:"options"`
	AnswerIndex int       `json:"answer_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicQuestion — вариант вопроса для выдачи клиенту, без правильного ответа.
type PublicQuestion struct {
	ID         int64    `json:"id"`
	Competency string   `json:"competency"`
	Level      Level    `json:"level"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
}

func (q *Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:         q.ID,
		Competency: q.Competency,
		Level:      q.Level,
		Text:       q.Text,
		Options:    q.Options,
	}
}

func (q *Question) Validate() error {
	if q.Competency == "" {
		return fmt.Errorf("competency is required")
	}
	if !q.Level.Valid() {
		return fmt.Errorf("level must be one of A1, A2, B1, B2, C1, C2")
	}
	if q.Text == "" {
		return fmt.Errorf("question text is required")
	}
	if len(q.Options) < 2 || len(q.Options) > 5 {
		return fmt.Errorf("questions must have between 2 and 5 options")
	}
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return fmt.Errorf("answer index must be a valid option index")
	}
	return nil
}
