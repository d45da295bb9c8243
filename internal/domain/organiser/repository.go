package organiser

import (
	"context"
	"errors"
	"net/http"

	"onexhib-admin/internal/backend"
)

// Repository talks to the exhibition backend's signup endpoints.
type Repository struct {
	api *backend.Client
}

func NewRepository(api *backend.Client) *Repository {
	return &Repository{api: api}
}

// Create registers a new organiser account.
func (r *Repository) Create(ctx context.Context, o *Organiser) error {
	return r.api.PostJSON(ctx, "/api/signup", o, nil)
}

// List fetches the full organiser collection for the admin dashboard.
func (r *Repository) List(ctx context.Context) ([]Organiser, error) {
	var items []Organiser
	if err := r.api.GetJSON(ctx, "/api/admin/signup", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one organiser by id.
func (r *Repository) Get(ctx context.Context, id string) (*Organiser, error) {
	var o Organiser
	if err := r.api.GetJSON(ctx, "/api/find/signup/"+id, &o); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}
