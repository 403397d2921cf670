package port

import "github.com/LudNieto/ecommerce-go/internal/core/domain"

type TokenPayload struct {
	UserID uint64
}

// TokenPair is what a successful sign-in hands back to the client.
// ExpiresIn is the access token lifetime in seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateTokenPair(user *domain.User) (*TokenPair, error)
	VerifyToken(token string) (*TokenPayload, error)
}
