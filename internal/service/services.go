package service

import (
	"github.com/lordbaldwin1/jwt/internal/config"
	"github.com/lordbaldwin1/jwt/internal/repository"
)

type Services struct {
	Auth *AuthService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, repos.RefreshToken, cfg),
	}
}
