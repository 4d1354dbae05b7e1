package tests

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
)

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) FilterProjects(ctx context.Context, filter domain.ProjectFilter) (domain.ProjectPage, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.ProjectPage), args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, input domain.CreateProjectInput) (uint64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *projectServiceMock) UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type clientServiceMock struct {
	mock.Mock
}

func (m *clientServiceMock) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)

	var clients []domain.Client
	if value := args.Get(0); value != nil {
		clients = value.([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *clientServiceMock) CreateClient(ctx context.Context, input domain.CreateClientInput) (uint64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uint64), args.Error(1)
}

type imageStoreMock struct {
	mock.Mock
}

func (m *imageStoreMock) Save(filename string, size int64, content io.Reader, baseURL string) (string, error) {
	args := m.Called(filename, size, content, baseURL)
	return args.String(0), args.Error(1)
}

func (m *imageStoreMock) Remove(imageURL string) error {
	args := m.Called(imageURL)
	return args.Error(0)
}
