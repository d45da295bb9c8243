package company

import (
	"onexhib-admin/internal/pkg/forms"
	"onexhib-admin/internal/pkg/upload"
)

// FormRules is the company popup rule set. Unlike the organiser form, the
// website here is mandatory.
func FormRules() forms.RuleSet {
	return forms.RuleSet{
		"company_name": {forms.Required("Company name is required")},
		"company_email": {
			forms.Required("Invalid email"),
			forms.Email("Invalid email"),
		},
		"company_nature": {forms.Required("Nature of business is required")},
		"company_phone_number": {
			forms.Required("Phone number must be 10 digits"),
			forms.Digits(10, "Phone number must be 10 digits"),
		},
		"pincode": {
			forms.Required("Pincode must be 6 digits"),
			forms.Digits(6, "Pincode must be 6 digits"),
		},
		"company_address": {forms.Required("Address is required")},
		"about_company":   {forms.Required("About company is required")},
		"company_website": {
			forms.Required("Enter a valid website URL"),
			forms.URL("Enter a valid website URL"),
		},
		"stall_no": {forms.Required("Stall number is required")},
		"hall_no":  {forms.Required("Hall number is required")},
	}
}

// BrochureGuard accepts PDF, Word or image brochures up to 5MB.
func BrochureGuard() upload.Guard {
	return upload.Allow(upload.MaxDocumentSize,
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"image/jpeg",
		"image/png",
	)
}

// ImageGuard accepts the company logo image: JPG or PNG up to 3MB. Accepted
// images get a spooled preview for the popup.
func ImageGuard() upload.Guard {
	return upload.Allow(upload.MaxImageSize, "image/jpeg", "image/png")
}
