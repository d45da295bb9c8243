package product

import "github.com/shopspring/decimal"

// Product is a company's exhibited product. CreatedBy references the owning
// company, ExhibitionID the exhibition the company registered under.
type Product struct {
	ID              string          `json:"_id,omitempty"`
	ProductName     string          `json:"product_name"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Details         string          `json:"details"`
	ProductURL      string          `json:"product_url,omitempty"`
	ProductVideoURL string          `json:"product_video_url,omitempty"`
	CreatedBy       string          `json:"createdBy,omitempty"`
	ExhibitionID    string          `json:"exhibitionid,omitempty"`
	Image           string          `json:"product_image,omitempty"`
	Video           string          `json:"product_video,omitempty"`
}
