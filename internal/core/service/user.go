package service

import (
	"context"
	"errors"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/LudNieto/ecommerce-go/internal/core/port"
	"github.com/LudNieto/ecommerce-go/internal/core/utils"
	"go.uber.org/zap"
)

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, email string, password string) (*port.TokenPair, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokenService.CreateTokenPair(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return nil, domain.ErrTokenCreation
	}

	return pair, nil
}

// RefreshToken issues a fresh access token for a valid refresh token.
// The presented refresh token stays in the pair, same as on sign-in
// with an explicit refresh.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*port.TokenPair, error) {
	payload, err := s.tokenService.VerifyToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.GetUserByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrInternal
	}

	pair, err := s.tokenService.CreateTokenPair(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return nil, domain.ErrTokenCreation
	}
	pair.RefreshToken = refreshToken

	return pair, nil
}

func (s *Service) GetUser(ctx context.Context, userID uint64) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, userID uint64, update *domain.UserUpdate) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		hashed, err := utils.HashPassword(*update.Password)
		if err != nil {
			s.logger.Error("Hash password", zap.Error(err))
			return nil, domain.ErrInternal
		}
		user.Password = hashed
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}

	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Update user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return updated, nil
}

// DeactivateUser is the soft delete: the row stays, is_active drops.
func (s *Service) DeactivateUser(ctx context.Context, userID uint64) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.IsActive = false

	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		s.logger.Error("Deactivate user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return updated, nil
}
