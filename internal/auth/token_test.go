package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lordbaldwin1/jwt/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret-key-for-testing-only")

// signClaims builds a token outside the codec, for tokens the codec itself
// refuses to mint (wrong issuer, empty subject).
func signClaims(t *testing.T, secret []byte, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret)
	userID := uuid.New()

	token, err := codec.Issue(userID, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenCodec_Verify(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret)
	otherCodec := auth.NewTokenCodec([]byte("a-completely-different-secret"))
	userID := uuid.New()

	validToken, err := codec.Issue(userID, time.Hour)
	require.NoError(t, err)

	expiredToken, err := codec.Issue(userID, -time.Second)
	require.NoError(t, err)

	// Flip a character in the payload segment
	parts := strings.Split(validToken, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tamperedToken := parts[0] + "." + string(payload) + "." + parts[2]

	now := time.Now()
	wrongIssuerToken := signClaims(t, testSecret, jwt.RegisteredClaims{
		Issuer:    "some-other-service",
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	noSubjectToken := signClaims(t, testSecret, jwt.RegisteredClaims{
		Issuer:    auth.TokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	badSubjectToken := signClaims(t, testSecret, jwt.RegisteredClaims{
		Issuer:    auth.TokenIssuer,
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:  "valid token",
			token: validToken,
		},
		{
			name:    "wrong secret",
			token:   mustIssue(t, otherCodec, userID),
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "tampered payload",
			token:   tamperedToken,
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "expired token",
			token:   expiredToken,
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "malformed token",
			token:   "notavalidjwt",
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "wrong issuer",
			token:   wrongIssuerToken,
			wantErr: auth.ErrInvalidIssuer,
		},
		{
			name:    "missing subject",
			token:   noSubjectToken,
			wantErr: auth.ErrMissingSubject,
		},
		{
			name:    "subject is not a user id",
			token:   badSubjectToken,
			wantErr: auth.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Verify(tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, got)
		})
	}
}

func mustIssue(t *testing.T, codec *auth.TokenCodec, userID uuid.UUID) string {
	t.Helper()
	token, err := codec.Issue(userID, time.Hour)
	require.NoError(t, err)
	return token
}
