package exhibition

import (
	"context"
	"errors"
	"net/http"

	"onexhib-admin/internal/backend"
)

// Repository talks to the exhibition endpoints of the platform backend. The
// create endpoint takes multipart with the optional cover image and layout
// riding along; everything else is plain JSON.
type Repository struct {
	api *backend.Client
}

func NewRepository(api *backend.Client) *Repository {
	return &Repository{api: api}
}

func (r *Repository) List(ctx context.Context) ([]Exhibition, error) {
	var items []Exhibition
	if err := r.api.GetJSON(ctx, "/api/exhibition", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) AdminList(ctx context.Context) ([]Exhibition, error) {
	var items []Exhibition
	if err := r.api.GetJSON(ctx, "/api/admin/exhibition", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*Exhibition, error) {
	var e Exhibition
	if err := r.api.GetJSON(ctx, "/api/find/exhibition/"+id, &e); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(ctx context.Context, fields map[string]string, files []backend.File) error {
	return r.api.PostMultipart(ctx, "/api/exhibition", fields, files, nil)
}

func (r *Repository) Update(ctx context.Context, id string, e *Exhibition) error {
	return r.api.PutJSON(ctx, "/api/admin/updateexhibitions/"+id, e, nil)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/api/delete/exhibition/"+id)
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.api.Delete(ctx, "/api/admin/deleteallexhibition")
}
