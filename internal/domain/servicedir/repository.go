package servicedir

import (
	"context"

	"onexhib-admin/internal/backend"
)

// Repository talks to the service directory endpoints.
type Repository struct {
	api *backend.Client
}

func NewRepository(api *backend.Client) *Repository {
	return &Repository{api: api}
}

func (r *Repository) List(ctx context.Context) ([]Entry, error) {
	var items []Entry
	if err := r.api.GetJSON(ctx, "/api/get/service", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) Create(ctx context.Context, e *Entry) error {
	return r.api.PostJSON(ctx, "/api/add/service", e, nil)
}
