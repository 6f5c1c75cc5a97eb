package models

import "time"

// VerificationCode — отдельная запись на каждую отправку кода.
// Старые записи не трогаем при выдаче нового — все строки идентификатора
// удаляются разом при успешном подтверждении.
type VerificationCode struct {
	ID         int64     `json:"id"`
	Identifier string    `json:"identifier"` // email
	Code       string    `json:"-"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}
