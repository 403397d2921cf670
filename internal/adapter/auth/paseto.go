package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/LudNieto/ecommerce-go/internal/adapter/config"
	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/LudNieto/ecommerce-go/internal/core/port"
)

type PasetoToken struct {
	parser          *paseto.Parser
	key             *paseto.V4SymmetricKey
	accessDuration  time.Duration
	refreshDuration time.Duration
}

func New(conf *config.Token) (port.TokenService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	s := PasetoToken{
		parser:          &parser,
		key:             &key,
		accessDuration:  conf.AccessDuration,
		refreshDuration: conf.RefreshDuration,
	}

	return &s, nil
}

func (p *PasetoToken) createToken(user *domain.User, lifetime time.Duration) (string, error) {
	token := paseto.NewToken()
	token.SetIssuedAt(time.Now())
	token.SetExpiration(time.Now().Add(lifetime))

	payload := port.TokenPayload{UserID: user.ID}
	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) CreateTokenPair(user *domain.User) (*port.TokenPair, error) {
	access, err := p.createToken(user, p.accessDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := p.createToken(user, p.refreshDuration)
	if err != nil {
		return nil, err
	}

	return &port.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(p.accessDuration.Seconds()),
	}, nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
