package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"testschool/internal/pdf"
)

type CertificateService interface {
	// GenerateCertificate — PDF по максимальному присвоенному уровню.
	// Возвращает абсолютный путь до файла.
	GenerateCertificate(userID int) (string, error)
}

type certificateService struct {
	tests TestService
	users UserService
	gen   pdf.Generator
}

func NewCertificateService(tests TestService, users UserService, gen pdf.Generator) CertificateService {
	return &certificateService{
		tests: tests,
		users: users,
		gen:   gen,
	}
}

func (s *certificateService) GenerateCertificate(userID int) (string, error) {
	level, err := s.tests.ResolveCertification(userID)
	if err != nil {
		return "", err
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("user %d not found", userID)
	}

	return s.gen.GenerateCertificate(pdf.CertificateData{
		UserName:      user.Name,
		Level:         string(level),
		IssuedAt:      time.Now(),
		CertificateID: uuid.NewString(),
	})
}
