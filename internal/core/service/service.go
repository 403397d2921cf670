package service

import (
	"github.com/LudNieto/ecommerce-go/internal/core/port"
	"go.uber.org/zap"
)

// Service implements the auth, catalog and order use cases on top of
// the repository and token ports.
type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}
