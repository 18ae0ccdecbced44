package postgres

import (
	"context"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/domain"
	"gorm.io/gorm"
)

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *skillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	var skill domain.Skill
	err := r.db.WithContext(ctx).First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) GetAll(ctx context.Context) ([]*domain.Skill, error) {
	var skills []*domain.Skill
	err := r.db.WithContext(ctx).Order("id DESC").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) GetPage(ctx context.Context, offset, limit int) ([]*domain.Skill, error) {
	var skills []*domain.Skill
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&skills).Error
	return skills, err
}

func (r *skillRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Skill{}).Count(&count).Error
	return count, err
}

func (r *skillRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Skill{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	return count > 0, err
}

func (r *skillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *skillRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Skill{}, "id = ?", id).Error
}

func (r *skillRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Skill, error) {
	var skills []*domain.Skill
	err := r.db.WithContext(ctx).Find(&skills, "id IN ?", ids).Error
	return skills, err
}

func (r *skillRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Skill{}, "id IN ?", ids).Error
}
