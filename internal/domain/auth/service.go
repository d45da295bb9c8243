package auth

import (
	"context"
	"fmt"

	"onexhib-admin/internal/backend"
	"onexhib-admin/internal/pkg/forms"
	jwtsvc "onexhib-admin/internal/pkg/jwt"
)

const RoleAdmin = "ADMIN"

// LoginRules is deliberately light: the backend owns the credential check,
// the gateway only refuses obviously empty submissions.
func LoginRules() forms.RuleSet {
	return forms.RuleSet{
		"email": {
			forms.Required("Email is required."),
			forms.Email("Invalid email address."),
		},
		"password": {forms.Required("Password is required.")},
	}
}

type Service struct {
	api *backend.Client
	jwt *jwtsvc.Service
}

func NewService(api *backend.Client, jwt *jwtsvc.Service) *Service {
	return &Service{api: api, jwt: jwt}
}

// Login forwards the credentials to the backend and maps its reply onto a
// routing decision: unknown accounts go to signup, admins to the admin
// dashboard, everyone else to the organiser one. Known accounts get a
// gateway token carrying their role.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	var reply backendLoginResponse
	if err := s.api.PostJSON(ctx, "/api/login", req, &reply); err != nil {
		return nil, err
	}

	if reply.Message == "login failed" {
		return &LoginResult{Redirect: "signup"}, nil
	}

	role := reply.User.Role
	token, err := s.jwt.GenerateToken(reply.User.Email, role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	redirect := "organiser"
	if role == RoleAdmin {
		redirect = "admin"
	}
	return &LoginResult{Redirect: redirect, Role: role, Token: token}, nil
}
