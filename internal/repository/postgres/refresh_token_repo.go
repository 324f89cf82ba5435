package postgres

import (
	"context"
	"time"

	"github.com/lordbaldwin1/jwt/internal/domain"
	"gorm.io/gorm"
)

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *refreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// GetUserByToken resolves a token to its owning user. Missing, revoked, and
// expired tokens all come back as gorm.ErrRecordNotFound so callers cannot
// tell which case they hit.
func (r *refreshTokenRepository) GetUserByToken(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Joins("JOIN refresh_tokens ON refresh_tokens.user_id = users.id").
		Where("refresh_tokens.token = ?", token).
		Where("refresh_tokens.revoked_at IS NULL").
		Where("refresh_tokens.expires_at > ?", time.Now()).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Revoke marks the token unusable. Revoking an unknown or already-revoked
// token is a no-op.
func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Model(&domain.RefreshToken{}).
		Where("token = ?", token).
		Where("revoked_at IS NULL").
		Update("revoked_at", time.Now()).Error
}
