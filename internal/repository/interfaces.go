package repository

import (
	"context"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*domain.User, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetAll(ctx context.Context) ([]*domain.Project, error)
	GetPage(ctx context.Context, offset, limit int) ([]*domain.Project, error)
	Count(ctx context.Context) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Project, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) error
	GetByID(ctx context.Context, id int64) (*domain.Skill, error)
	GetAll(ctx context.Context) ([]*domain.Skill, error)
	GetPage(ctx context.Context, offset, limit int) ([]*domain.Skill, error)
	Count(ctx context.Context) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, skill *domain.Skill) error
	Delete(ctx context.Context, id int64) error
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Skill, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type Repositories struct {
	User    UserRepository
	Project ProjectRepository
	Skill   SkillRepository
}
