package company

import (
	"errors"
	"io"
	"mime/multipart"
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

// ListByExhibition serves the organiser's company table for one exhibition.
// @Summary List companies of an exhibition
// @Tags Companies
// @Produce json
// @Param exhibitionId path string true "Exhibition id"
// @Param q query string false "Search query, row numbers included"
// @Param page query integer false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/company/{exhibitionId} [get]
func (h *Handler) ListByExhibition(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	view, err := h.service.ListByExhibition(c.Request.Context(), c.Param("exhibitionId"), c.Query("q"), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// AdminList serves the admin company table over the full collection.
// @Summary List companies (admin)
// @Tags Companies
// @Produce json
// @Param q query string false "Search query"
// @Param page query integer false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/company [get]
func (h *Handler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	view, err := h.service.AdminList(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Get serves one company detail view.
// @Summary Get company detail
// @Tags Companies
// @Produce json
// @Param id path string true "Company id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/companydetail/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	co, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, co)
}

// Create handles the company popup: multipart form with an optional brochure
// and logo image, scoped under the exhibition named in the form.
// @Summary Register a company
// @Tags Companies
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{} "Field or upload validation errors"
// @Router /api/company [post]
func (h *Handler) Create(c *gin.Context) {
	values, err := formValues(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "request must be multipart/form-data")
		return
	}
	exhibitionID := values["createdBy"]
	if exhibitionID == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_EXHIBITION", "createdBy must reference an exhibition")
		return
	}
	delete(values, "createdBy")

	brochure := fileOrNil(c, "brochure")
	image := fileOrNil(c, "company_image_url")

	fieldErrs, err := h.service.Create(c.Request.Context(), exhibitionID, values, brochure, image)
	if err != nil {
		handleError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		response.ValidationError(c, http.StatusUnprocessableEntity, fieldErrs)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "company registered"})
}

// Update handles the fetch-then-PUT company edit.
// @Summary Update a company
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Company id"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/admin/updatecompany/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var values forms.Values
	if err := c.ShouldBindJSON(&values); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object of form fields")
		return
	}
	fieldErrs, err := h.service.Update(c.Request.Context(), c.Param("id"), values)
	if err != nil {
		handleError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		response.ValidationError(c, http.StatusUnprocessableEntity, fieldErrs)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "company updated"})
}

// DeleteAll wipes the company collection after an explicit confirmation.
// @Summary Delete all companies
// @Tags Companies
// @Produce json
// @Param confirm query boolean true "Must be true"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Missing confirmation"
// @Router /api/admin/deleteallcompany [delete]
func (h *Handler) DeleteAll(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := h.service.DeleteAll(c.Request.Context(), confirmed); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "all companies deleted"})
}

// Brochure streams the stored brochure straight through for a new-tab
// download.
// @Summary Download a company brochure
// @Tags Companies
// @Produce octet-stream
// @Param companyId path string true "Company id"
// @Success 200
// @Failure 404 {object} map[string]interface{}
// @Router /api/brochure/{companyId} [get]
func (h *Handler) Brochure(c *gin.Context) {
	body, contentType, err := h.service.Brochure(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		handleError(c, err)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
}

func formValues(c *gin.Context) (forms.Values, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	values := make(forms.Values, len(form.Value))
	for key, vals := range form.Value {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}
	return values, nil
}

func fileOrNil(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "company not found")
		return
	case errors.Is(err, ErrConfirmationNeeded):
		response.Error(c, http.StatusBadRequest, "CONFIRMATION_REQUIRED", "pass confirm=true to delete the whole collection")
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", apiErr.Message)
		return
	}
	response.Error(c, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "the exhibition service is unavailable, please try again")
}
