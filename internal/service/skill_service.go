package service

import (
	"context"
	"errors"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/domain"
	"github.com/BramsuryaJP/my-portfolio-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSkillExists   = errors.New("skill already exists")
	ErrSkillNotFound = errors.New("skill not found")
)

type SkillService struct {
	skillRepo repository.SkillRepository
}

func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

type SkillPage struct {
	Data        []*domain.Skill
	CurrentPage int
	Limit       int
	TotalCount  int64
	TotalPages  int
}

func (s *SkillService) List(ctx context.Context) ([]*domain.Skill, error) {
	return s.skillRepo.GetAll(ctx)
}

func (s *SkillService) ListPage(ctx context.Context, page, limit int) (*SkillPage, error) {
	totalCount, err := s.skillRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	skills, err := s.skillRepo.GetPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &SkillPage{
		Data:        skills,
		CurrentPage: page,
		Limit:       limit,
		TotalCount:  totalCount,
		TotalPages:  pageCount(totalCount, limit),
	}, nil
}

func (s *SkillService) Create(ctx context.Context, name string) (*domain.Skill, error) {
	exists, err := s.skillRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSkillExists
	}

	skill := &domain.Skill{Name: name}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, id int64, name string) (*domain.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	skill.Name = name
	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id int64) (*domain.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	if err := s.skillRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *SkillService) DeleteMany(ctx context.Context, ids []int64) ([]*domain.Skill, error) {
	skills, err := s.skillRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, ErrSkillNotFound
	}

	deletedIDs := make([]int64, 0, len(skills))
	for _, skill := range skills {
		deletedIDs = append(deletedIDs, skill.ID)
	}

	if err := s.skillRepo.DeleteByIDs(ctx, deletedIDs); err != nil {
		return nil, err
	}

	return skills, nil
}
