package company

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"onexhib-admin/internal/backend"
	"onexhib-admin/internal/pkg/forms"
	"onexhib-admin/internal/pkg/listview"
	"onexhib-admin/internal/pkg/upload"
)

// The company tables are searchable by the visible row number too, so "3"
// finds the third row of the unfiltered table.
func searchColumns() []listview.Extractor[Company] {
	return []listview.Extractor[Company]{
		listview.RowNumber[Company],
		func(co Company, _ int) string { return co.CompanyName },
		func(co Company, _ int) string { return co.CompanyEmail },
		func(co Company, _ int) string { return co.CompanyNature },
		func(co Company, _ int) string { return co.StallNo },
		func(co Company, _ int) string { return co.HallNo },
	}
}

var (
	organiserList = listview.Model[Company]{PageSize: 5, Extractors: searchColumns()}
	adminList     = listview.Model[Company]{PageSize: 6, Extractors: searchColumns()}
)

type Service struct {
	repo          *Repository
	brochureGuard upload.Guard
	imageGuard    upload.Guard
	previewDir    string
}

func NewService(repo *Repository, previewDir string) *Service {
	return &Service{
		repo:          repo,
		brochureGuard: BrochureGuard(),
		imageGuard:    ImageGuard(),
		previewDir:    previewDir,
	}
}

// ListByExhibition renders the organiser's company table for one exhibition.
func (s *Service) ListByExhibition(ctx context.Context, exhibitionID, query string, page int) (listview.Page[Company], error) {
	items, err := s.repo.ByExhibition(ctx, exhibitionID)
	if err != nil {
		return listview.Page[Company]{}, err
	}
	return organiserList.View(items, query, page), nil
}

func (s *Service) AdminList(ctx context.Context, query string, page int) (listview.Page[Company], error) {
	items, err := s.repo.AdminList(ctx)
	if err != nil {
		return listview.Page[Company]{}, err
	}
	return adminList.View(items, query, page), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Company, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the popup and forwards one multipart request. The company
// image goes through an upload slot so an accepted image gets its preview and
// the preview is released on every exit path.
func (s *Service) Create(ctx context.Context, exhibitionID string, values forms.Values, brochure, image *multipart.FileHeader) (map[string]string, error) {
	var files []backend.File

	fileErrs := make(map[string]string)
	if brochure != nil {
		accepted, err := s.brochureGuard.Check(brochure)
		switch {
		case errors.Is(err, upload.ErrUnsupportedType):
			fileErrs["brochure"] = "Brochure must be PDF, DOC, or image"
		case errors.Is(err, upload.ErrTooLarge):
			fileErrs["brochure"] = "Brochure size must be under 5MB"
		case err != nil:
			return nil, err
		default:
			files = append(files, backend.File{
				Field:       "brochure",
				Name:        accepted.Filename,
				ContentType: accepted.MimeType,
				Content:     accepted.Content,
			})
		}
	}
	if image != nil {
		slot := upload.NewSlot(s.imageGuard, s.previewDir)
		defer slot.Close()

		if err := slot.Select(s.imageGuard.Check(image)); err != nil {
			if errors.Is(err, upload.ErrTooLarge) {
				fileErrs["company_image_url"] = "Image size must be under 3MB"
			} else {
				fileErrs["company_image_url"] = "Only JPG or PNG allowed"
			}
		} else if accepted := slot.File(); accepted != nil {
			files = append(files, backend.File{
				Field:       "company_image_url",
				Name:        accepted.Filename,
				ContentType: accepted.MimeType,
				Content:     accepted.Content,
			})
		}
	}

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
		fields := make(map[string]string, len(values)+1)
		for k, v := range values {
			fields[k] = v
		}
		fields["createdBy"] = exhibitionID
		return s.repo.Create(ctx, fields, files)
	})
}

// Update is the fetch-then-PUT edit: the stored document is loaded, the
// editable fields overlaid, and the merge sent back. CreatedBy and the
// uploaded file URLs survive untouched.
func (s *Service) Update(ctx context.Context, id string, values forms.Values) (map[string]string, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sub := forms.NewSubmission(forms.NewValidator(FormRules()))
	return sub.Submit(ctx, values, func(ctx context.Context) error {
		merged := *current
		merged.CompanyName = values["company_name"]
		merged.CompanyEmail = values["company_email"]
		merged.CompanyNature = values["company_nature"]
		merged.CompanyPhoneNumber = values["company_phone_number"]
		merged.CompanyAddress = values["company_address"]
		merged.Pincode = values["pincode"]
		merged.AboutCompany = values["about_company"]
		merged.CompanyWebsite = values["company_website"]
		merged.StallNo = values["stall_no"]
		merged.HallNo = values["hall_no"]
		return s.repo.Update(ctx, id, &merged)
	})
}

func (s *Service) DeleteAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationNeeded
	}
	return s.repo.DeleteAll(ctx)
}

func (s *Service) Brochure(ctx context.Context, companyID string) (io.ReadCloser, string, error) {
	return s.repo.Brochure(ctx, companyID)
}
