package exhibition

// Exhibition mirrors the backend document. AddedBy references the organiser
// that created it and never changes after creation. Image and Layout are the
// backend-assigned URLs of the uploaded files.
type Exhibition struct {
	ID                string `json:"_id,omitempty"`
	ExhibitionName    string `json:"exhibition_name"`
	AddedBy           string `json:"addedBy,omitempty"`
	ExhibitionAddress string `json:"exhibition_address"`
	Category          string `json:"category"`
	Venue             string `json:"venue"`
	StartingDate      string `json:"starting_date"`
	EndingDate        string `json:"ending_date"`
	Email             string `json:"email"`
	AboutExhibition   string `json:"about_exhibition"`
	Speakers          string `json:"speakers,omitempty"`
	Session           string `json:"session,omitempty"`
	Sponsor           string `json:"sponsor,omitempty"`
	Partners          string `json:"partners,omitempty"`
	Support           string `json:"Support,omitempty"`
	PrivacyPolicy     string `json:"privacy_policy,omitempty"`
	TermsOfService    string `json:"terms_of_service,omitempty"`
	Image             string `json:"exhibition_image,omitempty"`
	Layout            string `json:"exhibition_layout,omitempty"`
}
