package servicedir

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

// List serves the service provider directory.
// @Summary List exhibition service providers
// @Tags Services
// @Produce json
// @Param q query string false "Search across name, service and location"
// @Param page query integer false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/get/service [get]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	view, err := h.service.List(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Create handles the "Add Exhibition Service" popup.
// @Summary Register a service provider
// @Tags Services
// @Accept json
// @Produce json
// @Param body body map[string]string true "Form values"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/add/service [post]
func (h *Handler) Create(c *gin.Context) {
	var values forms.Values
	if err := c.ShouldBindJSON(&values); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object of form fields")
		return
	}
	fieldErrs, err := h.service.Create(c.Request.Context(), values)
	if err != nil {
		handleError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		response.ValidationError(c, http.StatusUnprocessableEntity, fieldErrs)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "service registered"})
}

func handleError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", apiErr.Message)
		return
	}
	response.Error(c, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "the exhibition service is unavailable, please try again")
}
