package servicedir

import (
	"context"

	"onexhib-admin/internal/pkg/forms"
	"onexhib-admin/internal/pkg/listview"
)

var directoryList = listview.Model[Entry]{
	PageSize: 5,
	Extractors: []listview.Extractor[Entry]{
		func(e Entry, _ int) string { return e.FullName },
		func(e Entry, _ int) string { return e.ServiceName },
		func(e Entry, _ int) string { return e.Country },
		func(e Entry, _ int) string { return e.State },
		func(e Entry, _ int) string { return e.City },
	},
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, query string, page int) (listview.Page[Entry], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return listview.Page[Entry]{}, err
	}
	return directoryList.View(items, query, page), nil
}

// Create validates the popup and registers the provider listing.
func (s *Service) Create(ctx context.Context, values forms.Values) (map[string]string, error) {
	sub := forms.NewSubmission(forms.NewValidator(FormRules()))
	return sub.Submit(ctx, values, func(ctx context.Context) error {
		return s.repo.Create(ctx, &Entry{
			FullName:     values["full_name"],
			ServiceName:  values["service_name"],
			Country:      values["country"],
			State:        values["state"],
			City:         values["city"],
			Address:      values["address"],
			MobileNumber: values["mobile_number"],
		})
	})
}
