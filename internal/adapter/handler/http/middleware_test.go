package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LudNieto/ecommerce-go/internal/adapter/auth"
	"github.com/LudNieto/ecommerce-go/internal/adapter/config"
	handler "github.com/LudNieto/ecommerce-go/internal/adapter/handler/http"
	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/LudNieto/ecommerce-go/internal/core/port/mock"
	"github.com/LudNieto/ecommerce-go/internal/core/service"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthRouterProtectedRoutes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	tokenService, err := auth.New(&config.Token{
		AccessDuration:  time.Minute,
		RefreshDuration: time.Hour,
	})
	require.NoError(t, err)

	user := domain.User{ID: 1, Name: "test", Email: "test@test.io", IsActive: true, CreatedAt: time.Now()}

	pair, err := tokenService.CreateTokenPair(&user)
	require.NoError(t, err)

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil).AnyTimes()

	svc, err := service.NewService(repo, tokenService, logger)
	require.NoError(t, err)

	userHandler, err := handler.NewUserHandler(svc, logger)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router, err := handler.NewAuthRouter(&config.Cors{FrontendURL: "http://localhost:3000"}, tokenService, userHandler)
	require.NoError(t, err)

	type authTest struct {
		name      string
		header    string
		expStatus int
	}

	tests := []authTest{
		{
			name:      "Valid bearer token",
			header:    "Bearer " + pair.AccessToken,
			expStatus: http.StatusOK,
		},
		{
			name:      "No header",
			header:    "",
			expStatus: http.StatusUnauthorized,
		},
		{
			name:      "Wrong scheme",
			header:    "Basic " + pair.AccessToken,
			expStatus: http.StatusUnauthorized,
		},
		{
			name:      "Garbage token",
			header:    "Bearer not-a-token",
			expStatus: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
			if test.header != "" {
				req.Header.Set("Authorization", test.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, test.expStatus, w.Code)
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	tokenService, err := auth.New(&config.Token{
		AccessDuration:  time.Minute,
		RefreshDuration: time.Hour,
	})
	require.NoError(t, err)

	repo := mock.NewMockRepository(mockCtrl)

	svc, err := service.NewService(repo, tokenService, logger)
	require.NoError(t, err)

	userHandler, err := handler.NewUserHandler(svc, logger)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router, err := handler.NewAuthRouter(&config.Cors{FrontendURL: "http://localhost:3000"}, tokenService, userHandler)
	require.NoError(t, err)

	// incoming id is echoed back
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))

	// otherwise one is minted
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
