package mapper

import (
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/dto"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
)

func ToClientItems(clients []domain.Client) []dto.ClientItem {
	items := make([]dto.ClientItem, 0, len(clients))
	for _, client := range clients {
		items = append(items, dto.ClientItem{
			ID:    client.ID,
			Name:  client.Name,
			Email: client.Email,
		})
	}
	return items
}
