package service

import (
	"context"
	"log"
	"time"

	"tasktracker/internal/auth"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// WelcomeMailer отправляет приветственное письмо новому пользователю
type WelcomeMailer interface {
	SendWelcome(to, name string) error
}

type AuthService struct {
	users     repository.UserRepositoryInterface
	mailer    WelcomeMailer // nil, если SMTP не настроен
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users repository.UserRepositoryInterface, mailer WelcomeMailer, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Register создает пользователя с захэшированным паролем и выдает токен сессии
func (s *AuthService) Register(ctx context.Context, email, password, name, role string) (string, *UserDTO, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		Email:          email,
		HashedPassword: string(hash),
		Name:           name,
		Role:           role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", nil, err
	}

	if s.mailer != nil {
		// Письмо не должно блокировать и тем более ронять регистрацию
		go func() {
			if err := s.mailer.SendWelcome(user.Email, user.Name); err != nil {
				log.Printf("⚠️  Failed to send welcome email to %s: %v", user.Email, err)
			}
		}()
	}

	dto := mapUserToDTO(user)
	return token, &dto, nil
}

// Login проверяет учетные данные и выдает токен сессии. Несуществующий
// email и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *UserDTO, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", nil, err
	}

	dto := mapUserToDTO(user)
	return token, &dto, nil
}
