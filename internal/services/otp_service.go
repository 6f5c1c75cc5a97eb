package services

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"testschool/internal/models"
	"testschool/internal/repositories"
)

const defaultCodeTTL = 5 * time.Minute

// OTPService — выдача и подтверждение одноразовых кодов.
type OTPService interface {
	// Issue — новый 6-значный код на идентификатор (email). Старые коды
	// при выдаче не удаляются — только при успешном Consume.
	Issue(identifier string) (string, error)
	// Consume — проверка кода. "Не найден" и "просрочен" снаружи
	// неразличимы (false, nil): не даём оракула для перебора.
	Consume(identifier, code string) (bool, error)
}

type otpService struct {
	repo repositories.VerificationCodeRepository
	ttl  time.Duration
}

func NewOTPService(repo repositories.VerificationCodeRepository) OTPService {
	return &otpService{repo: repo, ttl: defaultCodeTTL}
}

func generateCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

func (s *otpService) Issue(identifier string) (string, error) {
	code := generateCode()
	ttl := s.ttl
	if ttl <= 0 {
		ttl = defaultCodeTTL
	}
	rec := &models.VerificationCode{
		Identifier: identifier,
		Code:       code,
		ExpiresAt:  time.Now().Add(ttl),
	}
	if err := s.repo.Create(rec); err != nil {
		return "", err
	}
	log.Printf("[otp][issue] identifier=%s expires_at=%s", identifier, rec.ExpiresAt.Format(time.RFC3339))
	return code, nil
}

func (s *otpService) Consume(identifier, code string) (bool, error) {
	rec, err := s.repo.GetLatestByIdentifierAndCode(identifier, code)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}
	if time.Now().After(rec.ExpiresAt) {
		return false, nil
	}
	// удаляем все коды идентификатора, не только совпавший — повтор
	// любого старого кода после успеха невозможен
	if err := s.repo.DeleteByIdentifier(identifier); err != nil {
		return false, err
	}
	log.Printf("[otp][consume] OK identifier=%s", identifier)
	return true, nil
}
