package organiser

import (
	"context"

	"onexhib-admin/internal/pkg/forms"
	"onexhib-admin/internal/pkg/listview"
)

// adminList is the admin dashboard's organiser table: six rows per page,
// searchable by name, email, company, designation and mobile number.
var adminList = listview.Model[Organiser]{
	PageSize: 6,
	Extractors: []listview.Extractor[Organiser]{
		func(o Organiser, _ int) string { return o.FirstName },
		func(o Organiser, _ int) string { return o.LastName },
		func(o Organiser, _ int) string { return o.Email },
		func(o Organiser, _ int) string { return o.CompanyName },
		func(o Organiser, _ int) string { return o.Designation },
		func(o Organiser, _ int) string { return o.MobileNumber },
	},
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Signup validates the submitted values and, only when clean, registers the
// organiser with the backend. A non-nil field map means the submission was
// rejected before any network call.
func (s *Service) Signup(ctx context.Context, values forms.Values) (map[string]string, error) {
	sub := forms.NewSubmission(forms.NewValidator(SignupRules()))
	return sub.Submit(ctx, values, func(ctx context.Context) error {
		return s.repo.Create(ctx, &Organiser{
			FirstName:    values["first_name"],
			LastName:     values["last_name"],
			Email:        values["email"],
			Password:     values["password"],
			CompanyName:  values["company_name"],
			Designation:  values["designation"],
			Website:      values["website"],
			MobileNumber: values["mobile_number"],
			Country:      values["country"],
			State:        values["state"],
			City:         values["city"],
			Address:      values["address"],
		})
	})
}

// List fetches every organiser and renders the requested page.
func (s *Service) List(ctx context.Context, query string, page int) (listview.Page[Organiser], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return listview.Page[Organiser]{}, err
	}
	return adminList.View(items, query, page), nil
}

// Get returns one organiser's detail view.
func (s *Service) Get(ctx context.Context, id string) (*Organiser, error) {
	return s.repo.Get(ctx, id)
}
