package service

import (
	"context"

	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/ports"
)

type ClientService struct {
	clientRepository ports.ClientRepository
}

func NewClientService(clientRepository ports.ClientRepository) *ClientService {
	return &ClientService{clientRepository: clientRepository}
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepository.ListClients(ctx)
}

func (s *ClientService) CreateClient(ctx context.Context, input domain.CreateClientInput) (uint64, error) {
	return s.clientRepository.CreateClient(ctx, input)
}

var _ ports.ClientService = (*ClientService)(nil)
