package exhibition

import (
	"context"
	"errors"
	"mime/multipart"

	"onexhib-admin/internal/backend"
	"onexhib-admin/internal/pkg/forms"
	"onexhib-admin/internal/pkg/listview"
	"onexhib-admin/internal/pkg/upload"
)

func searchColumns() []listview.Extractor[Exhibition] {
	return []listview.Extractor[Exhibition]{
		func(e Exhibition, _ int) string { return e.ExhibitionName },
		func(e Exhibition, _ int) string { return e.Category },
		func(e Exhibition, _ int) string { return e.AddedBy },
		func(e Exhibition, _ int) string { return e.ExhibitionAddress },
	}
}

// The organiser dashboard shows five exhibitions per page, the admin one six.
var (
	organiserList = listview.Model[Exhibition]{PageSize: 5, Extractors: searchColumns()}
	adminList     = listview.Model[Exhibition]{PageSize: 6, Extractors: searchColumns()}
)

type Service struct {
	repo        *Repository
	imageGuard  upload.Guard
	layoutGuard upload.Guard
}

func NewService(repo *Repository) *Service {
	return &Service{
		repo:        repo,
		imageGuard:  ImageGuard(),
		layoutGuard: LayoutGuard(),
	}
}

func (s *Service) List(ctx context.Context, query string, page int) (listview.Page[Exhibition], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return listview.Page[Exhibition]{}, err
	}
	return organiserList.View(items, query, page), nil
}

func (s *Service) AdminList(ctx context.Context, query string, page int) (listview.Page[Exhibition], error) {
	items, err := s.repo.AdminList(ctx)
	if err != nil {
		return listview.Page[Exhibition]{}, err
	}
	return adminList.View(items, query, page), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Exhibition, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the form and the optional uploads, then forwards one
// multipart request to the backend. Guard rejections land in the field map
// next to the text-field errors; nothing is sent unless the map is empty.
func (s *Service) Create(ctx context.Context, values forms.Values, image, layout *multipart.FileHeader) (map[string]string, error) {
	var files []backend.File

	fileErrs := make(map[string]string)
	if image != nil {
		accepted, err := s.imageGuard.Check(image)
		switch {
		case errors.Is(err, upload.ErrUnsupportedType):
			fileErrs["exhibition_image"] = "Image must be JPG/PNG/WEBP."
		case errors.Is(err, upload.ErrTooLarge):
			fileErrs["exhibition_image"] = "Image exceeds 5MB."
		case err != nil:
			return nil, err
		default:
			files = append(files, backend.File{
				Field:       "exhibition_image",
				Name:        accepted.Filename,
				ContentType: accepted.MimeType,
				Content:     accepted.Content,
			})
		}
	}
	if layout != nil {
		accepted, err := s.layoutGuard.Check(layout)
		switch {
		case errors.Is(err, upload.ErrUnsupportedType):
			fileErrs["layout"] = "Layout must be PDF or image (JPG/PNG/WEBP)."
		case errors.Is(err, upload.ErrTooLarge):
			fileErrs["layout"] = "Layout file exceeds 5MB."
		case err != nil:
			return nil, err
		default:
			files = append(files, backend.File{
				Field:       "layout",
				Name:        accepted.Filename,
				ContentType: accepted.MimeType,
				Content:     accepted.Content,
			})
		}
	}

	// File errors block submission the same way field errors do: surface them
	// together with the text-field errors and never touch the network.
	if len(fileErrs) > 0 {
		v := forms.NewValidator(FormRules())
		v.TouchAll()
		for field, msg := range v.Validate(values) {
			fileErrs[field] = msg
		}
		return fileErrs, nil
	}

	sub := forms.NewSubmission(forms.NewValidator(FormRules()))
	return sub.Submit(ctx, values, func(ctx context.Context) error {
		return s.repo.Create(ctx, map[string]string(values), files)
	})
}

// Update is the fetch-then-PUT edit popup: the current document is loaded,
// the editable fields are overlaid, and the merged document is sent back.
// AddedBy is immutable and never overwritten.
func (s *Service) Update(ctx context.Context, id string, values forms.Values) (map[string]string, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sub := forms.NewSubmission(forms.NewValidator(FormRules()))
	return sub.Submit(ctx, values, func(ctx context.Context) error {
		merged := *current
		merged.ExhibitionName = values["exhibition_name"]
		merged.Category = values["category"]
		merged.Venue = values["venue"]
		merged.ExhibitionAddress = values["exhibition_address"]
		merged.Email = values["email"]
		merged.StartingDate = values["starting_date"]
		merged.EndingDate = values["ending_date"]
		merged.AboutExhibition = values["about_exhibition"]
		merged.Speakers = values["speakers"]
		merged.Session = values["session"]
		merged.Sponsor = values["sponsor"]
		merged.Partners = values["partners"]
		merged.Support = values["Support"]
		merged.PrivacyPolicy = values["privacy_policy"]
		merged.TermsOfService = values["terms_of_service"]
		return s.repo.Update(ctx, id, &merged)
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DeleteAll wipes the whole collection; the caller must pass the explicit
// confirmation through or the call never leaves the gateway.
func (s *Service) DeleteAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationNeeded
	}
	return s.repo.DeleteAll(ctx)
}
