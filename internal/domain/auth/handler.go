package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"onexhib-admin/internal/backend"
	"onexhib-admin/internal/pkg/forms"
	"onexhib-admin/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles the login form and returns the routing decision plus the
// gateway token for known accounts.
// @Summary Log in
// @Description Forwards the credentials to the platform backend. Unknown accounts are routed to signup, admins to the admin dashboard, organisers to theirs.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON credentials")
		return
	}

	v := forms.NewValidator(LoginRules())
	v.TouchAll()
	if errs := v.Validate(forms.Values{"email": req.Email, "password": req.Password}); len(errs) > 0 {
		response.ValidationError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", apiErr.Message)
			return
		}
		response.Error(c, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "the exhibition service is unavailable, please try again")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
}
