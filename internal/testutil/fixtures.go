package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lordbaldwin1/jwt/internal/auth"
	"github.com/lordbaldwin1/jwt/internal/domain"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// RefreshTokenBuilder creates test refresh tokens with a builder pattern
type RefreshTokenBuilder struct {
	userID    uuid.UUID
	expiresAt time.Time
	revokedAt *time.Time
}

// NewRefreshTokenBuilder creates a new RefreshTokenBuilder with default values
func NewRefreshTokenBuilder(userID uuid.UUID) *RefreshTokenBuilder {
	return &RefreshTokenBuilder{
		userID:    userID,
		expiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
}

// Expired sets the expiry in the past
func (b *RefreshTokenBuilder) Expired() *RefreshTokenBuilder {
	b.expiresAt = time.Now().Add(-time.Hour)
	return b
}

// Revoked marks the token revoked
func (b *RefreshTokenBuilder) Revoked() *RefreshTokenBuilder {
	now := time.Now()
	b.revokedAt = &now
	return b
}

// Build creates the refresh token in the database and returns its value
func (b *RefreshTokenBuilder) Build(t *testing.T, db *gorm.DB) string {
	t.Helper()

	token, err := auth.NewRefreshToken()
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	record := &domain.RefreshToken{
		Token:     token,
		UserID:    b.userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		ExpiresAt: b.expiresAt,
		RevokedAt: b.revokedAt,
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}

	return token
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
