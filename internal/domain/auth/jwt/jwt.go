package jwt

import (
	"github.com/condiments/condiments-api/internal/domain/auth/model"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

type TokenIssuer interface {
	Issue(userID int64) (model.Token, error)
}

// TokenVerifier returns the claims of a valid token, or an error matching
// one of ErrTokenMalformed, ErrTokenBadSignature or ErrTokenExpired.
type TokenVerifier interface {
	Verify(raw string) (Claims, error)
}

type TokenManager interface {
	TokenIssuer
	TokenVerifier
}
