package exhibition

import (
	"onexhib-admin/internal/pkg/forms"
	"onexhib-admin/internal/pkg/upload"
)

// FormRules covers both the create and the fetch-then-edit popup. The legal
// page URLs are optional but must carry a scheme when present, and the end
// date may never precede the start date.
func FormRules() forms.RuleSet {
	return forms.RuleSet{
		"exhibition_name":    {forms.Required("Exhibition name is required.")},
		"category":           {forms.Required("Category is required.")},
		"venue":              {forms.Required("Venue is required.")},
		"exhibition_address": {forms.Required("Address is required.")},
		"email": {
			forms.Required("Contact email is required."),
			forms.Email("Enter a valid email address."),
		},
		"starting_date": {forms.Required("Start date is required.")},
		"ending_date": {
			forms.Required("End date is required."),
			forms.DateNotBefore("starting_date", "End date must be same or after start date."),
		},
		"about_exhibition": {forms.Required("Description is required.")},
		"privacy_policy":   {forms.URL("Enter a valid URL (include http/https).")},
		"terms_of_service": {forms.URL("Enter a valid URL (include http/https).")},
	}
}

// ImageGuard accepts the cover image: JPG, PNG or WEBP up to 5MB.
func ImageGuard() upload.Guard {
	return upload.Allow(upload.MaxDocumentSize, "image/jpeg", "image/png", "image/webp")
}

// LayoutGuard accepts the floor layout: PDF or an image up to 5MB.
func LayoutGuard() upload.Guard {
	return upload.Allow(upload.MaxDocumentSize, "application/pdf", "image/jpeg", "image/png", "image/webp")
}
