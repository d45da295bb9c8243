package company

// Company is an exhibiting company, always scoped under an exhibition via
// CreatedBy. Brochure carries the backend URL of the uploaded brochure file.
type Company struct {
	ID                 string `json:"_id,omitempty"`
	CompanyName        string `json:"company_name"`
	CompanyEmail       string `json:"company_email"`
	CompanyNature      string `json:"company_nature"`
	CompanyPhoneNumber string `json:"company_phone_number"`
	CompanyAddress     string `json:"company_address"`
	Pincode            string `json:"pincode"`
	AboutCompany       string `json:"about_company"`
	CompanyWebsite     string `json:"company_website"`
	StallNo            string `json:"stall_no"`
	HallNo             string `json:"hall_no"`
	CreatedBy          string `json:"createdBy,omitempty"`
	Brochure           string `json:"company_url,omitempty"`
	Image              string `json:"company_image,omitempty"`
}
