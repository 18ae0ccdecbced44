package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/domain"
	"github.com/BramsuryaJP/my-portfolio-backend/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProjectExists   = errors.New("project already exists")
	ErrProjectNotFound = errors.New("project not found")
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
	images      *ImageStore
}

func NewProjectService(projectRepo repository.ProjectRepository, images *ImageStore) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		images:      images,
	}
}

type CreateProjectInput struct {
	Name        string
	Description string
	Tags        []string

	// Image is nil when no file was uploaded.
	Image     io.Reader
	ImageName string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	Tags        []string

	Image     io.Reader
	ImageName string
}

// ProjectPage is one page of projects ordered by newest first.
type ProjectPage struct {
	Data        []*domain.Project
	CurrentPage int
	Limit       int
	TotalCount  int64
	TotalPages  int
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

func (s *ProjectService) ListPage(ctx context.Context, page, limit int) (*ProjectPage, error) {
	totalCount, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.GetPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &ProjectPage{
		Data:        projects,
		CurrentPage: page,
		Limit:       limit,
		TotalCount:  totalCount,
		TotalPages:  pageCount(totalCount, limit),
	}, nil
}

// Create rejects names already taken by another project, compared
// case-insensitively.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	exists, err := s.projectRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrProjectExists
	}

	tags, err := marshalTags(input.Tags)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		Tags:        tags,
	}

	if input.Image != nil {
		imagePath, err := s.images.SaveProjectImage(input.Image, input.ImageName)
		if err != nil {
			return nil, err
		}
		project.Image = imagePath
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Update applies the provided fields, leaving nil ones unchanged. A new
// image replaces and removes the previous file.
func (s *ProjectService) Update(ctx context.Context, id int64, input UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Tags != nil {
		tags, err := marshalTags(input.Tags)
		if err != nil {
			return nil, err
		}
		project.Tags = tags
	}

	if input.Image != nil {
		s.images.DeleteProjectImage(project.Image)
		imagePath, err := s.images.SaveProjectImage(input.Image, input.ImageName)
		if err != nil {
			return nil, err
		}
		project.Image = imagePath
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	s.images.DeleteProjectImage(project.Image)

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteMany removes every project whose id is in ids, along with its
// image file, and returns the deleted records. Unknown ids are skipped;
// ErrProjectNotFound is returned only when none matched.
func (s *ProjectService) DeleteMany(ctx context.Context, ids []int64) ([]*domain.Project, error) {
	projects, err := s.projectRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrProjectNotFound
	}

	deletedIDs := make([]int64, 0, len(projects))
	for _, project := range projects {
		s.images.DeleteProjectImage(project.Image)
		deletedIDs = append(deletedIDs, project.ID)
	}

	if err := s.projectRepo.DeleteByIDs(ctx, deletedIDs); err != nil {
		return nil, err
	}

	return projects, nil
}

func marshalTags(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func pageCount(totalCount int64, limit int) int {
	return int((totalCount + int64(limit) - 1) / int64(limit))
}
