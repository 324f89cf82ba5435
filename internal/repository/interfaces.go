package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lordbaldwin1/jwt/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateCredentials(ctx context.Context, id uuid.UUID, email, passwordHash string) (*domain.User, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetUserByToken(ctx context.Context, token string) (*domain.User, error)
	Revoke(ctx context.Context, token string) error
}

type Repositories struct {
	User         UserRepository
	RefreshToken RefreshTokenRepository
}
