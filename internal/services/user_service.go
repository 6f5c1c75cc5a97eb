package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"testschool/internal/authz"
	"testschool/internal/models"
	"testschool/internal/repositories"
)

var ErrEmailTaken = errors.New("email already registered")

type UserService interface {
	// Register — создаёт пользователя, выдаёт код подтверждения и шлёт его
	// на почту.
	Register(req *models.RegisterRequest) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	VerifyUser(userID int) error
	ResendVerificationCode(email string) error

	// refresh helpers
	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	GetByRefreshToken(token string) (*models.User, error)
}

type userService struct {
	repo         repositories.UserRepository
	emailService EmailService
	authService  AuthService
	otpService   OTPService
}

func NewUserService(
	repo repositories.UserRepository,
	emailService EmailService,
	authService AuthService,
	otpService OTPService,
) UserService {
	return &userService{
		repo:         repo,
		emailService: emailService,
		authService:  authService,
		otpService:   otpService,
	}
}

func (s *userService) Register(req *models.RegisterRequest) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("password is required")
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		RoleID:       authz.RoleStudent,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	// код не должен валить регистрацию: есть /register/resend
	if err := s.sendCode(email); err != nil {
		log.Printf("Register: warning: failed to send verification code to %s: %v", email, err)
	}

	return user, nil
}

func (s *userService) ResendVerificationCode(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		// не раскрываем, есть ли такой аккаунт
		log.Printf("[user][resend] unknown email=%q", email)
		return nil
	}
	if user.IsVerified {
		return fmt.Errorf("user already verified")
	}
	return s.sendCode(email)
}

func (s *userService) sendCode(email string) error {
	code, err := s.otpService.Issue(email)
	if err != nil {
		return err
	}
	if s.emailService == nil {
		return nil
	}
	return s.emailService.SendVerificationCodeEmail(email, code)
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(strings.TrimSpace(strings.ToLower(email)))
}

func (s *userService) VerifyUser(userID int) error {
	return s.repo.VerifyUser(userID)
}

func (s *userService) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	return s.repo.UpdateRefresh(userID, token, expiresAt)
}

func (s *userService) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	return s.repo.RotateRefresh(oldToken, newToken, newExpiresAt)
}

func (s *userService) GetByRefreshToken(token string) (*models.User, error) {
	return s.repo.GetByRefreshToken(token)
}
