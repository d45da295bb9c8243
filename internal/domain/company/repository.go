package company

import (
	"context"
	"errors"
	"io"
	"net/http"

	"onexhib-admin/internal/backend"
)

// Repository talks to the company endpoints of the platform backend.
type Repository struct {
	api *backend.Client
}

func NewRepository(api *backend.Client) *Repository {
	return &Repository{api: api}
}

// ByExhibition fetches every company registered under one exhibition.
func (r *Repository) ByExhibition(ctx context.Context, exhibitionID string) ([]Company, error) {
	var items []Company
	if err := r.api.GetJSON(ctx, "/api/company/"+exhibitionID, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdminList fetches the full company collection.
func (r *Repository) AdminList(ctx context.Context) ([]Company, error) {
	var items []Company
	if err := r.api.GetJSON(ctx, "/api/admin/company", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*Company, error) {
	var co Company
	if err := r.api.GetJSON(ctx, "/api/companydetail/"+id, &co); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &co, nil
}

func (r *Repository) Create(ctx context.Context, fields map[string]string, files []backend.File) error {
	return r.api.PostMultipart(ctx, "/api/company", fields, files, nil)
}

func (r *Repository) Update(ctx context.Context, id string, co *Company) error {
	return r.api.PutJSON(ctx, "/api/admin/updatecompany/"+id, co, nil)
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.api.Delete(ctx, "/api/admin/deleteallcompany")
}

// Brochure streams the stored brochure file for a new-tab download. The
// caller owns the returned body.
func (r *Repository) Brochure(ctx context.Context, companyID string) (io.ReadCloser, string, error) {
	body, contentType, err := r.api.Stream(ctx, "/api/brochure/"+companyID)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	return body, contentType, nil
}
