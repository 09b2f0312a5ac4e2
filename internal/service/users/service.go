package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	userRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/user"
	"github.com/m04kA/Barbershop-BookingService/internal/service/users/models"
)

// Service регистрация и аутентификация пользователей
type Service struct {
	repo   UserRepository
	tokens TokenIssuer
	logger Logger
}

func NewService(repo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

// Register создает нового пользователя с ролью client.
// Пароль хранится только в виде bcrypt-хэша.
func (s *Service) Register(ctx context.Context, input models.RegisterInput) (*models.User, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("users: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	u := &domain.User{
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         domain.RoleClient,
		IsActive:     true,
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		s.logger.Error("users: failed to create user %s: %v", u.Email, err)
		return nil, fmt.Errorf("%w: create user: %v", ErrInternal, err)
	}

	s.logger.Info("users: registered user %d %s", created.ID, created.Email)

	return models.FromDomain(created), nil
}

// Login проверяет учетные данные и выдает access-токен.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Token, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("users: failed to get user by email: %v", err)
		return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}

	if !u.IsActive {
		s.logger.Warn("users: login attempt for inactive user %d", u.ID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, string(u.Role))
	if err != nil {
		s.logger.Error("users: failed to generate token for user %d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: generate token: %v", ErrInternal, err)
	}

	s.logger.Info("users: user %d logged in", u.ID)

	return &models.Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

// GetByID возвращает профиль пользователя
func (s *Service) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("users: failed to get user %d: %v", id, err)
		return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}

	return models.FromDomain(u), nil
}

func validateRegisterInput(input models.RegisterInput) error {
	email := normalizeEmail(input.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	atIdx := strings.Index(email, "@")
	if atIdx <= 0 || atIdx == len(email)-1 {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if len(input.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
