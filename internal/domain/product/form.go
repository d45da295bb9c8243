package product

import (
	"github.com/shopspring/decimal"

	"onexhib-admin/internal/pkg/forms"
	"onexhib-admin/internal/pkg/upload"
)

// FormRules is the product popup rule set. Price must parse as a decimal
// number; the optional media URLs need an http/https scheme.
func FormRules() forms.RuleSet {
	priceParses := func(v string) bool {
		_, err := decimal.NewFromString(v)
		return err == nil
	}
	return forms.RuleSet{
		"product_name": {forms.Required("Product name is required.")},
		"category":     {forms.Required("Category is required.")},
		"details":      {forms.Required("Details are required.")},
		"price": {
			forms.Required("Price is required."),
			forms.Check(priceParses, "Price must be a number."),
		},
		"product_url":       {forms.URL("Enter a valid URL (include http/https).")},
		"product_video_url": {forms.URL("Enter a valid URL (include http/https).")},
	}
}

// ImageGuard accepts any image type up to 5MB.
func ImageGuard() upload.Guard {
	return upload.Allow(upload.MaxDocumentSize, "image/*")
}

// VideoGuard accepts any video type up to 5MB.
func VideoGuard() upload.Guard {
	return upload.Allow(upload.MaxDocumentSize, "video/*")
}
