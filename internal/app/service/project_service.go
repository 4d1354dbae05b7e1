package service

import (
	"context"

	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository}
}

func (s *ProjectService) FilterProjects(ctx context.Context, filter domain.ProjectFilter) (domain.ProjectPage, error) {
	return s.projectRepository.FilterProjects(ctx, filter)
}

func (s *ProjectService) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	return s.projectRepository.GetProject(ctx, id)
}

func (s *ProjectService) CreateProject(ctx context.Context, input domain.CreateProjectInput) (uint64, error) {
	return s.projectRepository.CreateProject(ctx, input)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) error {
	return s.projectRepository.UpdateProject(ctx, id, input)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uint64) error {
	return s.projectRepository.DeleteProject(ctx, id)
}

var _ ports.ProjectService = (*ProjectService)(nil)
