package repositories

import (
	"database/sql"
	"fmt"

	"testschool/internal/models"
)

type VerificationCodeRepository interface {
	Create(code *models.VerificationCode) error
	// GetLatestByIdentifierAndCode — последняя по времени запись с таким кодом.
	GetLatestByIdentifierAndCode(identifier, code string) (*models.VerificationCode, error)
	// DeleteByIdentifier — чистим все коды идентификатора разом
	// (успешное подтверждение гасит и устаревшие, и свежие).
	DeleteByIdentifier(identifier string) error
}

type verificationCodeRepository struct {
	DB *sql.DB
}

func NewVerificationCodeRepository(db *sql.DB) VerificationCodeRepository {
	return &verificationCodeRepository{DB: db}
}

func (r *verificationCodeRepository) Create(code *models.VerificationCode) error {
	const q = `
		INSERT INTO verification_codes (identifier, code, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q,
		code.Identifier, code.Code, code.ExpiresAt,
	).Scan(&code.ID, &code.CreatedAt); err != nil {
		return fmt.Errorf("create verification code: %w", err)
	}
	return nil
}

func (r *verificationCodeRepository) GetLatestByIdentifierAndCode(identifier, code string) (*models.VerificationCode, error) {
	const q = `
		SELECT id, identifier, code, expires_at, created_at
		FROM verification_codes
		WHERE identifier = $1 AND code = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	row := r.DB.QueryRow(q, identifier, code)
	var v models.VerificationCode
	if err := row.Scan(&v.ID, &v.Identifier, &v.Code, &v.ExpiresAt, &v.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("verification code latest: %w", err)
	}
	return &v, nil
}

func (r *verificationCodeRepository) DeleteByIdentifier(identifier string) error {
	if _, err := r.DB.Exec(`DELETE FROM verification_codes WHERE identifier = $1`, identifier); err != nil {
		return fmt.Errorf("delete verification codes: %w", err)
	}
	return nil
}
