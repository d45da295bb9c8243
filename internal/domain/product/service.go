package product

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/shopspring/decimal"

	"onexhib-admin/internal/backend"
	"onexhib-admin/internal/pkg/forms"
	"onexhib-admin/internal/pkg/listview"
	"onexhib-admin/internal/pkg/upload"
)

// The organiser table searches name, category and price; the admin one adds
// the visible row number.
var (
	organiserList = listview.Model[Product]{
		PageSize: 5,
		Extractors: []listview.Extractor[Product]{
			func(p Product, _ int) string { return p.ProductName },
			func(p Product, _ int) string { return p.Category },
			func(p Product, _ int) string { return p.Price.String() },
		},
	}
	adminList = listview.Model[Product]{
		PageSize: 6,
		Extractors: []listview.Extractor[Product]{
			listview.RowNumber[Product],
			func(p Product, _ int) string { return p.ProductName },
			func(p Product, _ int) string { return p.Category },
			func(p Product, _ int) string { return p.Price.String() },
		},
	}
)

type Service struct {
	repo       *Repository
	imageGuard upload.Guard
	videoGuard upload.Guard
}

func NewService(repo *Repository) *Service {
	return &Service{
		repo:       repo,
		imageGuard: ImageGuard(),
		videoGuard: VideoGuard(),
	}
}

// List serves the organiser-side table over the whole product collection,
// not scoped to one company.
func (s *Service) List(ctx context.Context, query string, page int) (listview.Page[Product], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return listview.Page[Product]{}, err
	}
	return organiserList.View(items, query, page), nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID, query string, page int) (listview.Page[Product], error) {
	items, err := s.repo.ByCompany(ctx, companyID)
	if err != nil {
		return listview.Page[Product]{}, err
	}
	return organiserList.View(items, query, page), nil
}

func (s *Service) AdminList(ctx context.Context, query string, page int) (listview.Page[Product], error) {
	items, err := s.repo.AdminList(ctx)
	if err != nil {
		return listview.Page[Product]{}, err
	}
	return adminList.View(items, query, page), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the popup and posts one multipart request carrying the
// company and exhibition references. The media files are class-checked (any
// image, any video) rather than pinned to specific formats.
func (s *Service) Create(ctx context.Context, companyID, exhibitionID string, values forms.Values, image, video *multipart.FileHeader) (map[string]string, error) {
	var files []backend.File

	fileErrs := make(map[string]string)
	if image != nil {
		accepted, err := s.imageGuard.Check(image)
		switch {
		case errors.Is(err, upload.ErrUnsupportedType):
			fileErrs["image"] = "File must be an image."
		case errors.Is(err, upload.ErrTooLarge):
			fileErrs["image"] = "Image exceeds 5MB."
		case err != nil:
			return nil, err
		default:
			files = append(files, backend.File{
				Field:       "image",
				Name:        accepted.Filename,
				ContentType: accepted.MimeType,
				Content:     accepted.Content,
			})
		}
	}
	if video != nil {
		accepted, err := s.videoGuard.Check(video)
		switch {
		case errors.Is(err, upload.ErrUnsupportedType):
			fileErrs["video"] = "File must be a video."
		case errors.Is(err, upload.ErrTooLarge):
			fileErrs["video"] = "Video exceeds 5MB."
		case err != nil:
			return nil, err
		default:
			files = append(files, backend.File{
				Field:       "video",
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
		return s.repo.Create(ctx, companyID, exhibitionID, map[string]string(values), files)
	})
}

// Update overlays the editable fields on the stored document and PUTs the
// merge back. The ownership references and media URLs are preserved.
func (s *Service) Update(ctx context.Context, id string, values forms.Values) (map[string]string, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sub := forms.NewSubmission(forms.NewValidator(FormRules()))
	return sub.Submit(ctx, values, func(ctx context.Context) error {
		merged := *current
		merged.ProductName = values["product_name"]
		merged.Category = values["category"]
		merged.Details = values["details"]
		merged.ProductURL = values["product_url"]
		merged.ProductVideoURL = values["product_video_url"]
		// the price rule already guaranteed this parses
		merged.Price, _ = decimal.NewFromString(values["price"])
		return s.repo.Update(ctx, id, &merged)
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) DeleteAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationNeeded
	}
	return s.repo.DeleteAll(ctx)
}
