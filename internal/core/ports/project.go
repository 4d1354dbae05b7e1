package ports

import (
	"context"

	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
)

type ProjectRepository interface {
	FilterProjects(ctx context.Context, filter domain.ProjectFilter) (domain.ProjectPage, error)
	GetProject(ctx context.Context, id uint64) (domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (uint64, error)
	UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) error
	DeleteProject(ctx context.Context, id uint64) error
}

type ProjectService interface {
	FilterProjects(ctx context.Context, filter domain.ProjectFilter) (domain.ProjectPage, error)
	GetProject(ctx context.Context, id uint64) (domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (uint64, error)
	UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) error
	DeleteProject(ctx context.Context, id uint64) error
}
