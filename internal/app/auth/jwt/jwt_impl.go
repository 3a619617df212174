package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authjwt "github.com/condiments/condiments-api/internal/domain/auth/jwt"
	"github.com/condiments/condiments-api/internal/domain/auth/model"
	customErrors "github.com/condiments/condiments-api/internal/domain/errors"
	"github.com/condiments/condiments-api/internal/infra/config"
)

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

type Option func(*TokenManager)

// WithClock replaces time.Now for both issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(m *TokenManager) { m.now = now }
}

func NewTokenManager(cfg *config.Config, opts ...Option) (*TokenManager, error) {
	if cfg.JWTSecret == "" {
		return nil, customErrors.WrapInternal(errors.New("empty secret"), "init token manager")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, customErrors.WrapInternal(errors.New("non-positive ttl"), "init token manager")
	}

	m := &TokenManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenTTL,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *TokenManager) Issue(userID int64) (model.Token, error) {
	now := m.now()

	claims := authjwt.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
		UserID: userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return model.Token{}, customErrors.WrapInternal(err, "sign access token")
	}

	return model.Token{
		Value:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
		TTL:       m.ttl,
		UserID:    userID,
	}, nil
}

func (m *TokenManager) Verify(raw string) (authjwt.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var claims authjwt.Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)

	switch {
	case err == nil && token.Valid:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return authjwt.Claims{}, customErrors.ErrTokenBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return authjwt.Claims{}, customErrors.ErrTokenExpired
	default:
		return authjwt.Claims{}, customErrors.ErrTokenMalformed
	}

	if claims.UserID <= 0 {
		return authjwt.Claims{}, customErrors.ErrTokenMalformed
	}
	return claims, nil
}
