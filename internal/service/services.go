package service

import (
	"github.com/BramsuryaJP/my-portfolio-backend/internal/config"
	"github.com/BramsuryaJP/my-portfolio-backend/internal/repository"
)

type Services struct {
	Auth    *AuthService
	JWT     JWTService
	Project *ProjectService
	Skill   *SkillService
	Images  *ImageStore
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	jwtService := NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	hasher := NewPasswordHasher()
	images := NewImageStore(cfg.UploadsDir)

	return &Services{
		Auth:    NewAuthService(repos.User, hasher, jwtService),
		JWT:     jwtService,
		Project: NewProjectService(repos.Project, images),
		Skill:   NewSkillService(repos.Skill),
		Images:  images,
	}
}
