package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"testschool/internal/models"
)

type QuestionRepository interface {
	Create(q *models.Question) error
	List(limit, offset int) ([]*models.Question, error)
	GetCount() (int, error)
	// SampleByLevel — случайная выборка n вопросов одного уровня.
	SampleByLevel(level models.Level, n int) ([]*models.Question, error)
	// GetAnswerKey — правильные индексы для набора вопросов.
	GetAnswerKey(ids []int64) (map[int64]int, error)
}

type questionRepository struct {
	DB *sql.DB
}

func NewQuestionRepository(db *sql.DB) QuestionRepository {
	return &questionRepository{DB: db}
}

func (r *questionRepository) Create(q *models.Question) error {
	const query = `
		INSERT INTO questions (competency, level, text, options, answer_index, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(query,
		q.Competency, q.Level, q.Text, pq.Array(q.Options), q.AnswerIndex,
	).Scan(&q.ID, &q.CreatedAt); err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (r *questionRepository) List(limit, offset int) ([]*models.Question, error) {
	const query = `
		SELECT id, competency, level, text, options, answer_index, created_at
		FROM questions
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *questionRepository) GetCount() (int, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

func (r *questionRepository) SampleByLevel(level models.Level, n int) ([]*models.Question, error) {
	const query = `
		SELECT id, competency, level, text, options, answer_index, created_at
		FROM questions
		WHERE level = $1
		ORDER BY RANDOM()
		LIMIT $2
	`
	rows, err := r.DB.Query(query, level, n)
	if err != nil {
		return nil, fmt.Errorf("sample questions level=%s: %w", level, err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *questionRepository) GetAnswerKey(ids []int64) (map[int64]int, error) {
	const query = `
		SELECT id, answer_index
		FROM questions
		WHERE id = ANY($1)
	`
	rows, err := r.DB.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("answer key: %w", err)
	}
	defer rows.Close()

	key := make(map[int64]int, len(ids))
	for rows.Next() {
		var id int64
		var idx int
		if err := rows.Scan(&id, &idx); err != nil {
			return nil, fmt.Errorf("scan answer key: %w", err)
		}
		key[id] = idx
	}
	return key, rows.Err()
}

func scanQuestions(rows *sql.Rows) ([]*models.Question, error) {
	var questions []*models.Question
	for rows.Next() {
		q := &models.Question{}
		if err := rows.Scan(
			&q.ID, &q.Competency, &q.Level, &q.Text, pq.Array(&q.Options), &q.AnswerIndex, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
