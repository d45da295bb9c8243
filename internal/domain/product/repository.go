package product

import (
	"context"
	"errors"
	"net/http"

	"onexhib-admin/internal/backend"
)

// Repository talks to the product endpoints of the platform backend.
type Repository struct {
	api *backend.Client
}

func NewRepository(api *backend.Client) *Repository {
	return &Repository{api: api}
}

func (r *Repository) List(ctx context.Context) ([]Product, error) {
	var items []Product
	if err := r.api.GetJSON(ctx, "/api/product", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) AdminList(ctx context.Context) ([]Product, error) {
	var items []Product
	if err := r.api.GetJSON(ctx, "/api/admin/product", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ByCompany fetches every product of one company.
func (r *Repository) ByCompany(ctx context.Context, companyID string) ([]Product, error) {
	var items []Product
	if err := r.api.GetJSON(ctx, "/api/product/"+companyID, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := r.api.GetJSON(ctx, "/api/product/detail/"+id, &p); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create posts one multipart product document. The ownership references ride
// as form fields: createdBy names the company, exhibitionid the exhibition.
func (r *Repository) Create(ctx context.Context, companyID, exhibitionID string, fields map[string]string, files []backend.File) error {
	withRefs := make(map[string]string, len(fields)+2)
	for k, v := range fields {
		withRefs[k] = v
	}
	withRefs["createdBy"] = companyID
	withRefs["exhibitionid"] = exhibitionID
	return r.api.PostMultipart(ctx, "/api/product", withRefs, files, nil)
}

func (r *Repository) Update(ctx context.Context, id string, p *Product) error {
	return r.api.PutJSON(ctx, "/api/admin/updateproduct/"+id, p, nil)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/api/product/delete/"+id)
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.api.Delete(ctx, "/api/admin/deleteallproduct")
}
