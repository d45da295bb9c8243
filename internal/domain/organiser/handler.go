package organiser

import (
	"errors"
	"net/http"
	"strconv"

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

// Signup handles the organiser registration form.
// @Summary Register an organiser
// @Description Validates the signup form and forwards it to the platform backend. Field errors are returned without any upstream call.
// @Tags Organisers
// @Accept json
// @Produce json
// @Param body body map[string]string true "Signup form values"
// @Success 201 {object} map[string]interface{} "Account created"
// @Failure 422 {object} map[string]interface{} "Field validation errors"
// @Failure 502 {object} map[string]interface{} "Backend rejected the request"
// @Router /api/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var values forms.Values
	if err := c.ShouldBindJSON(&values); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object of form fields")
		return
	}

	fieldErrs, err := h.service.Signup(c.Request.Context(), values)
	if err != nil {
		handleError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		response.ValidationError(c, http.StatusUnprocessableEntity, fieldErrs)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "account created"})
}

// List serves the admin organiser table.
// @Summary List organisers
// @Description Admin dashboard table over the full organiser collection with free-text search and pagination.
// @Tags Organisers
// @Produce json
// @Param q query string false "Search across name, email, company and mobile number"
// @Param page query integer false "Page number, clamped to the available range"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/signup [get]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	view, err := h.service.List(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Get serves one organiser detail view.
// @Summary Get organiser detail
// @Tags Organisers
// @Produce json
// @Param id path string true "Organiser id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/find/signup/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o)
}

func handleError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "organiser not found")
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", apiErr.Message)
		return
	}
	response.Error(c, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "the exhibition service is unavailable, please try again")
}
