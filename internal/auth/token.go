package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer is embedded in every access token and checked on verification,
// so tokens minted by another service sharing the same key are rejected.
const TokenIssuer = "jwt-auth"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidIssuer  = errors.New("invalid token issuer")
	ErrMissingSubject = errors.New("token subject missing")
)

// TokenCodec signs and verifies short-lived access tokens. Tokens are stateless;
// a stolen token stays valid until its natural expiry, which is why the TTL is
// kept short and renewal goes through revocable refresh tokens.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: secret}
}

// Issue mints an HS256-signed token with {iss, sub, iat, exp} claims.
func (c *TokenCodec) Issue(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks the signature and expiry (strict, no leeway), then the issuer
// and subject claims. It returns the subject user ID without looking it up.
func (c *TokenCodec) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	if claims.Issuer != TokenIssuer {
		return uuid.Nil, ErrInvalidIssuer
	}

	if claims.Subject == "" {
		return uuid.Nil, ErrMissingSubject
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
