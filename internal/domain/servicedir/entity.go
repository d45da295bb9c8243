package servicedir

// Entry is one exhibition service provider listing.
type Entry struct {
	ID           string `json:"_id,omitempty"`
	FullName     string `json:"full_name"`
	ServiceName  string `json:"service_name"`
	Country      string `json:"country"`
	State        string `json:"state"`
	City         string `json:"city"`
	Address      string `json:"address"`
	MobileNumber string `json:"mobile_number"`
}

// ServiceNames is the fixed set of offered service categories.
var ServiceNames = []string{
	"Printing",
	"Furniture Rental",
	"LED / TV Rental",
	"Fabrication",
	"Protocol Staff",
	"Catalog Printing",
	"Corporate Gifting",
}
