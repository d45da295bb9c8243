package location

// Static country/state/city reference data, loaded once for the process
// lifetime. Codes follow ISO 3166: alpha-2 for countries, the subdivision
// suffix for states. Cities are plain names.

// Country is one selectable country with its subdivisions.
type Country struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	States []State `json:"-"`
}

// State is one selectable subdivision with its cities.
type State struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Cities []string `json:"-"`
}

var countries = []Country{
	{
		Code: "IN", Name: "India",
		States: []State{
			{Code: "DL", Name: "Delhi", Cities: []string{"New Delhi", "Delhi", "Dwarka", "Rohini"}},
			{Code: "MH", Name: "Maharashtra", Cities: []string{"Mumbai", "Pune", "Nagpur", "Nashik", "Thane"}},
			{Code: "KA", Name: "Karnataka", Cities: []string{"Bengaluru", "Mysuru", "Mangaluru", "Hubballi"}},
			{Code: "TN", Name: "Tamil Nadu", Cities: []string{"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli"}},
			{Code: "GJ", Name: "Gujarat", Cities: []string{"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Gandhinagar"}},
			{Code: "UP", Name: "Uttar Pradesh", Cities: []string{"Lucknow", "Kanpur", "Noida", "Varanasi", "Agra"}},
			{Code: "WB", Name: "West Bengal", Cities: []string{"Kolkata", "Howrah", "Durgapur", "Siliguri"}},
			{Code: "RJ", Name: "Rajasthan", Cities: []string{"Jaipur", "Jodhpur", "Udaipur", "Kota"}},
			{Code: "TG", Name: "Telangana", Cities: []string{"Hyderabad", "Warangal", "Nizamabad"}},
			{Code: "HR", Name: "Haryana", Cities: []string{"Gurugram", "Faridabad", "Panipat", "Ambala"}},
		},
	},
	{
		Code: "US", Name: "United States",
		States: []State{
			{Code: "CA", Name: "California", Cities: []string{"Los Angeles", "San Francisco", "San Diego", "San Jose"}},
			{Code: "NY", Name: "New York", Cities: []string{"New York City", "Buffalo", "Rochester", "Albany"}},
			{Code: "TX", Name: "Texas", Cities: []string{"Houston", "Dallas", "Austin", "San Antonio"}},
			{Code: "IL", Name: "Illinois", Cities: []string{"Chicago", "Springfield", "Naperville"}},
			{Code: "NV", Name: "Nevada", Cities: []string{"Las Vegas", "Reno", "Henderson"}},
		},
	},
	{
		Code: "AE", Name: "United Arab Emirates",
		States: []State{
			{Code: "DU", Name: "Dubai", Cities: []string{"Dubai", "Jebel Ali"}},
			{Code: "AZ", Name: "Abu Dhabi", Cities: []string{"Abu Dhabi", "Al Ain"}},
			{Code: "SH", Name: "Sharjah", Cities: []string{"Sharjah", "Khor Fakkan"}},
		},
	},
	{
		Code: "GB", Name: "United Kingdom",
		States: []State{
			{Code: "ENG", Name: "England", Cities: []string{"London", "Birmingham", "Manchester", "Leeds", "Liverpool"}},
			{Code: "SCT", Name: "Scotland", Cities: []string{"Glasgow", "Edinburgh", "Aberdeen"}},
			{Code: "WLS", Name: "Wales", Cities: []string{"Cardiff", "Swansea", "Newport"}},
		},
	},
	{
		Code: "DE", Name: "Germany",
		States: []State{
			{Code: "BY", Name: "Bavaria", Cities: []string{"Munich", "Nuremberg", "Augsburg"}},
			{Code: "HE", Name: "Hesse", Cities: []string{"Frankfurt", "Wiesbaden", "Kassel"}},
			{Code: "NW", Name: "North Rhine-Westphalia", Cities: []string{"Cologne", "Düsseldorf", "Dortmund", "Essen"}},
			{Code: "BE", Name: "Berlin", Cities: []string{"Berlin"}},
		},
	},
	{
		Code: "SG", Name: "Singapore",
		States: []State{
			{Code: "SG", Name: "Singapore", Cities: []string{"Singapore"}},
		},
	},
	{
		Code: "AU", Name: "Australia",
		States: []State{
			{Code: "NSW", Name: "New South Wales", Cities: []string{"Sydney", "Newcastle", "Wollongong"}},
			{Code: "VIC", Name: "Victoria", Cities: []string{"Melbourne", "Geelong", "Ballarat"}},
			{Code: "QLD", Name: "Queensland", Cities: []string{"Brisbane", "Gold Coast", "Cairns"}},
		},
	},
}

// Countries returns every selectable country.
func Countries() []Country { return countries }

// StatesOf returns the states of a country, or an empty list when the
// country code is unknown or unset.
func StatesOf(countryCode string) []State {
	for _, c := range countries {
		if c.Code == countryCode {
			return c.States
		}
	}
	return nil
}

// CitiesOf returns the cities of a state, or an empty list when either code
// is unknown or unset.
func CitiesOf(countryCode, stateCode string) []string {
	for _, s := range StatesOf(countryCode) {
		if s.Code == stateCode {
			return s.Cities
		}
	}
	return nil
}
