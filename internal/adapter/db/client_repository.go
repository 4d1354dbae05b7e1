package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/ports"
)

const listClientsQuery = `
SELECT id, name, email
FROM clients
ORDER BY id;
`

type ClientRepository struct {
	db *sqlx.DB
}

type clientRow struct {
	ID    uint64 `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

var _ ports.ClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	var rows []clientRow
	if err := r.db.SelectContext(ctx, &rows, listClientsQuery); err != nil {
		return nil, err
	}

	clients := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, domain.Client{
			ID:    row.ID,
			Name:  row.Name,
			Email: row.Email,
		})
	}

	return clients, nil
}

func (r *ClientRepository) CreateClient(ctx context.Context, input domain.CreateClientInput) (uint64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO clients (name, email) VALUES (?, ?)",
		input.Name,
		input.Email,
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	return uint64(id), nil
}
