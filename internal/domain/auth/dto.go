package auth

// LoginRequest is the login form payload forwarded to the backend.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// backendLoginResponse is the backend's login reply. A failed login comes
// back as a 200 with message "login failed" rather than an error status.
type backendLoginResponse struct {
	Message string `json:"message"`
	User    struct {
		ID        string `json:"_id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		Role      string `json:"role"`
	} `json:"user"`
}

// LoginResult tells the caller where to go next. Redirect is one of
// "signup", "admin" or "organiser"; Token is empty when login failed.
type LoginResult struct {
	Redirect string `json:"redirect"`
	Role     string `json:"role,omitempty"`
	Token    string `json:"token,omitempty"`
}
