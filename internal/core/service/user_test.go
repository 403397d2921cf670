package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/LudNieto/ecommerce-go/internal/adapter/auth"
	"github.com/LudNieto/ecommerce-go/internal/adapter/config"
	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/LudNieto/ecommerce-go/internal/core/port"
	"github.com/LudNieto/ecommerce-go/internal/core/port/mock"
	"github.com/LudNieto/ecommerce-go/internal/core/service"
	"github.com/LudNieto/ecommerce-go/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type prepareUserMocks func(repo *mock.MockRepository, ts *mock.MockTokenService)

func TestService_RegisterUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	newUser := domain.User{Name: "test", Email: "test@test.io", Password: "hashed"}
	storedUser := domain.User{ID: 1, Name: "test", Email: "test@test.io", Password: "hashed", IsActive: true, CreatedAt: time.Now()}

	type registerTest struct {
		name     string
		user     domain.User
		mock     prepareUserMocks
		expError error
	}

	tests := []registerTest{
		{
			name: "New user",
			user: newUser,
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "test@test.io").
					Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), &newUser).
					Return(&storedUser, nil)
			},
			expError: nil,
		},
		{
			name: "Email already taken",
			user: newUser,
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "test@test.io").
					Return(&storedUser, nil)
			},
			expError: domain.ErrConflictingData,
		},
		{
			name: "Race lost on insert",
			user: newUser,
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "test@test.io").
					Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), &newUser).
					Return(nil, domain.ErrConflictingData)
			},
			expError: domain.ErrConflictingData,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo, ts)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			user := test.user
			result, err := s.RegisterUser(context.Background(), &user)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, &storedUser, result)
			}
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	hashed, err := utils.HashPassword("secret")
	require.NoError(t, err)

	user := domain.User{ID: 1, Name: "test", Email: "test@test.io", Password: hashed, IsActive: true}
	pair := port.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 1800}

	type loginTest struct {
		name     string
		email    string
		password string
		mock     prepareUserMocks
		expError error
	}

	tests := []loginTest{
		{
			name:     "Good credentials",
			email:    "test@test.io",
			password: "secret",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "test@test.io").
					Return(&user, nil)
				ts.EXPECT().CreateTokenPair(&user).Return(&pair, nil)
			},
			expError: nil,
		},
		{
			name:     "Wrong password",
			email:    "test@test.io",
			password: "not-the-secret",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "test@test.io").
					Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "nobody@test.io",
			password: "secret",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@test.io").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Token creation failure",
			email:    "test@test.io",
			password: "secret",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "test@test.io").
					Return(&user, nil)
				ts.EXPECT().CreateTokenPair(&user).Return(nil, domain.ErrTokenCreation)
			},
			expError: domain.ErrTokenCreation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo, ts)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.LoginUser(context.Background(), test.email, test.password)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, &pair, result)
			}
		})
	}
}

// TestService_RefreshToken uses the real paseto adapter so the refreshed
// access token is actually verifiable.
func TestService_RefreshToken(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	tokenService, err := auth.New(&config.Token{
		AccessDuration:  time.Minute,
		RefreshDuration: time.Hour,
	})
	require.NoError(t, err)

	user := domain.User{ID: 1, Name: "test", Email: "test@test.io", IsActive: true}

	pair, err := tokenService.CreateTokenPair(&user)
	require.NoError(t, err)

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil)

	s, err := service.NewService(repo, tokenService, logger)
	assert.NoError(t, err)

	refreshed, err := s.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)

	assert.Equal(t, pair.RefreshToken, refreshed.RefreshToken)

	payload, err := tokenService.VerifyToken(refreshed.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), payload.UserID)

	// garbage instead of a token
	_, err = s.RefreshToken(context.Background(), "not-a-token")
	assert.Equal(t, domain.ErrInvalidToken, err)
}

func TestService_DeactivateUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	user := domain.User{ID: 1, Name: "test", Email: "test@test.io", IsActive: true}

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)

	repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).
		DoAndReturn(func(_ context.Context, _ uint64) (*domain.User, error) {
			u := user
			return &u, nil
		})
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.False(t, u.IsActive)
			return u, nil
		})

	s, err := service.NewService(repo, ts, logger)
	assert.NoError(t, err)

	result, err := s.DeactivateUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, result.IsActive)
}
