package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campaign-backend/internal/config"
	"campaign-backend/internal/models"
	"campaign-backend/internal/repository"
	"campaign-backend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// login response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	// ParseToken validates a bearer token and returns its claims.
	ParseToken(token string) (*Claims, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

type authService struct {
	repo   repository.UserRepository
	cfg    config.AuthConfig
	logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, cfg config.AuthConfig, logger *logrus.Logger) AuthService {
	return &authService{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if isRecordNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPassword(user.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.WithField("email", user.Email).Info("User logged in")
	return token, user, nil
}

func (s *authService) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
