package ports

import (
	"context"

	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
)

type ClientRepository interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, input domain.CreateClientInput) (uint64, error)
}

type ClientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, input domain.CreateClientInput) (uint64, error)
}
