package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository"
	"github.com/vfg2006/marketing-warehouse-api/internal/config"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Authenticator interface {
	CreateUser(ctx context.Context, email, password string) (*domain.User, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int) error
	LoginUser(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// CreateUser registers a user with a bcrypt-hashed password. The email is
// normalized before the uniqueness check so "A@b.c" and "a@b.c " collide.
func (s *Service) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	email = normalizeEmail(email)
	if !strings.Contains(email, "@") {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrInvalidFormat, "email is not valid")
	}

	if len(password) < minPasswordLength {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("password must have at least %d characters", minPasswordLength))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          email,
		HashedPassword: string(hashedPassword),
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "email already registered")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "failed to create user")
	}

	return user, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "user not found")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "failed to fetch user")
	}

	user.HashedPassword = ""
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, userID int) error {
	err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "user not found")
		}
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "failed to delete user")
	}

	return nil
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	email = normalizeEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "user not found")
		}
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "failed to query user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "incorrect password")
	}

	token, err := generateJWT(user, s.cfg.Auth.Secret)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "failed to sign token")
	}

	return token, nil
}

func normalizeEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:    user.ID,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
