package organiser

// Organiser is an exhibition organiser account as the backend stores it.
// Password is write-only: it rides on the signup payload and never comes back.
type Organiser struct {
	ID           string `json:"_id,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
	Designation  string `json:"designation,omitempty"`
	Website      string `json:"website,omitempty"`
	MobileNumber string `json:"mobile_number"`
	Country      string `json:"country"`
	State        string `json:"state"`
	City         string `json:"city"`
	Address      string `json:"address"`
}
