package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-warehouse-api/internal/config"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "test-secret"},
	}
}

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "registers and normalizes the email",
			email:    " Analyst@Example.COM ",
			password: "long-enough-password",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) error {
						assert.Equal(t, "analyst@example.com", user.Email)
						assert.NotEmpty(t, user.HashedPassword)
						assert.NotEqual(t, "long-enough-password", user.HashedPassword)
						user.ID = 42
						return nil
					})
			},
		},
		{
			name:     "missing email",
			password: "long-enough-password",
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "email without at sign",
			email:    "not-an-email",
			password: "long-enough-password",
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "short password",
			email:    "analyst@example.com",
			password: "short",
			wantErr:  ErrWeakPassword,
		},
		{
			name:     "duplicate email",
			email:    "analyst@example.com",
			password: "long-enough-password",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(domain.NewWarehouseError("create user", domain.ErrConflict, ""))
			},
			wantErr: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockUserRepository(ctrl)
			if tt.setup != nil {
				tt.setup(mockRepo)
			}

			service := NewService(mockRepo, testConfig())
			user, err := service.CreateUser(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 42, user.ID)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:             7,
		Email:          "analyst@example.com",
		HashedPassword: string(hashed),
	}

	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "analyst@example.com").Return(stored, nil)

		service := NewService(mockRepo, testConfig())
		token, err := service.LoginUser(context.Background(), "Analyst@Example.com", "correct-password")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "analyst@example.com", claims.UserEmail)

		require.NotNil(t, claims.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "analyst@example.com").Return(stored, nil)

		service := NewService(mockRepo, testConfig())
		_, err := service.LoginUser(context.Background(), "analyst@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.NewWarehouseError("get user", domain.ErrNotFound, ""))

		service := NewService(mockRepo, testConfig())
		_, err := service.LoginUser(context.Background(), "nobody@example.com", "whatever-password")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())
		_, err := service.LoginUser(context.Background(), "", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "analyst@example.com").
		Return(&domain.User{ID: 7, Email: "analyst@example.com", HashedPassword: string(hashed)}, nil)

	issuer := NewService(mockRepo, testConfig())
	token, err := issuer.LoginUser(context.Background(), "analyst@example.com", "correct-password")
	require.NoError(t, err)

	verifier := NewService(mocks.NewMockUserRepository(ctrl), &config.Config{
		Auth: config.Auth{Secret: "another-secret"},
	})
	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestService_GetUserProfile(t *testing.T) {
	t.Run("clears the password hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), 7).
			Return(&domain.User{ID: 7, Email: "analyst@example.com", HashedPassword: "hash"}, nil)

		service := NewService(mockRepo, testConfig())
		user, err := service.GetUserProfile(context.Background(), 7)
		require.NoError(t, err)
		assert.Empty(t, user.HashedPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), 99).
			Return(nil, domain.NewWarehouseError("get user", domain.ErrNotFound, ""))

		service := NewService(mockRepo, testConfig())
		_, err := service.GetUserProfile(context.Background(), 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().DeleteUser(gomock.Any(), 99).
		Return(domain.NewWarehouseError("delete user", domain.ErrNotFound, ""))

	service := NewService(mockRepo, testConfig())
	err := service.DeleteUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "Analyst@Example.COM", expected: "analyst@example.com"},
		{name: "trims whitespace", input: "  analyst@example.com  ", expected: "analyst@example.com"},
		{name: "strips inner spaces", input: "ana lyst@example.com", expected: "analyst@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeEmail(tt.input))
		})
	}
}
