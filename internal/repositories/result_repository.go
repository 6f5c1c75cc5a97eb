package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"testschool/internal/models"
)

// ErrDuplicateResult — нарушение уникальности (user_id, step): результат по
// этому шагу уже записан. Проигравший в гонке двух одновременных сабмитов
// получает именно эту ошибку.
var ErrDuplicateResult = errors.New("result already exists for this user and step")

type ResultRepository interface {
	// Create — атомарный insert; уникальный индекс (user_id, step) в схеме
	// гарантирует не больше одного результата на шаг.
	Create(res *models.Result) error
	GetByUserAndStep(userID, step int) (*models.Result, error)
	ListByUser(userID int) ([]*models.Result, error)
}

type resultRepository struct {
	DB *sql.DB
}

func NewResultRepository(db *sql.DB) ResultRepository {
	return &resultRepository{DB: db}
}

func (r *resultRepository) Create(res *models.Result) error {
	const q = `
		INSERT INTO results (user_id, step, score, correct, total, awarded_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(q,
		res.UserID, res.Step, res.Score, res.Correct, res.Total, res.AwardedLevel,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateResult
		}
		return fmt.Errorf("create result: %w", err)
	}
	return nil
}

func (r *resultRepository) GetByUserAndStep(userID, step int) (*models.Result, error) {
	const q = `
		SELECT id, user_id, step, score, correct, total, awarded_level, created_at
		FROM results
		WHERE user_id = $1 AND step = $2
	`
	res, err := scanResult(r.DB.QueryRow(q, userID, step))
	if err != nil {
		return nil, fmt.Errorf("get result user=%d step=%d: %w", userID, step, err)
	}
	return res, nil
}

func (r *resultRepository) ListByUser(userID int) ([]*models.Result, error) {
	const q = `
		SELECT id, user_id, step, score, correct, total, awarded_level, created_at
		FROM results
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q, userID)
	if err != nil {
		return nil, fmt.Errorf("list results user=%d: %w", userID, err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		res := &models.Result{}
		var awarded sql.NullString
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.Step, &res.Score, &res.Correct, &res.Total, &awarded, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if awarded.Valid {
			lvl := models.Level(awarded.String)
			res.AwardedLevel = &lvl
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func scanResult(row *sql.Row) (*models.Result, error) {
	res := &models.Result{}
	var awarded sql.NullString
	err := row.Scan(
		&res.ID, &res.UserID, &res.Step, &res.Score, &res.Correct, &res.Total, &awarded, &res.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if awarded.Valid {
		lvl := models.Level(awarded.String)
		res.AwardedLevel = &lvl
	}
	return res, nil
}

// 23505 = unique_violation
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
