package repository

import (
	"context"

	"legalapi/internal/model"
)

// ClientRepository defines data access for clients.
type ClientRepository interface {
	// List returns all clients ordered by last_name, first_name.
	List(ctx context.Context) ([]model.Client, error)

	// FindByID returns a client by id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Client, error)

	Create(ctx context.Context, c *model.Client) (*model.Client, error)

	// Update applies the supplied fields only; returns
	// apperr.ErrNoFields when the update carries nothing.
	Update(ctx context.Context, id string, u model.ClientUpdate) (*model.Client, error)

	Delete(ctx context.Context, id string) error
}
