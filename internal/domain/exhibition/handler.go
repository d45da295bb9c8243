package exhibition

import (
	"errors"
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

// List serves the organiser exhibition table.
// @Summary List exhibitions
// @Description Full exhibition collection with free-text search across name, category, organiser and address, five rows per page.
// @Tags Exhibitions
// @Produce json
// @Param q query string false "Search query"
// @Param page query integer false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/exhibition [get]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	view, err := h.service.List(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// AdminList serves the admin exhibition table (six rows per page).
// @Summary List exhibitions (admin)
// @Tags Exhibitions
// @Produce json
// @Param q query string false "Search query"
// @Param page query integer false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/exhibition [get]
func (h *Handler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	view, err := h.service.AdminList(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Get serves one exhibition detail view.
// @Summary Get exhibition detail
// @Tags Exhibitions
// @Produce json
// @Param id path string true "Exhibition id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/find/exhibition/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	e, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

// Create handles the multipart create form with the optional cover image and
// floor layout.
// @Summary Create an exhibition
// @Tags Exhibitions
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{} "Field or upload validation errors"
// @Router /api/exhibition [post]
func (h *Handler) Create(c *gin.Context) {
	values, err := formValues(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "request must be multipart/form-data")
		return
	}
	image := fileOrNil(c, "exhibition_image")
	layout := fileOrNil(c, "layout")

	fieldErrs, err := h.service.Create(c.Request.Context(), values, image, layout)
	if err != nil {
		handleError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		response.ValidationError(c, http.StatusUnprocessableEntity, fieldErrs)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "exhibition created"})
}

// Update handles the fetch-then-PUT edit popup.
// @Summary Update an exhibition
// @Tags Exhibitions
// @Accept json
// @Produce json
// @Param id path string true "Exhibition id"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/admin/updateexhibitions/{id} [put]
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
	response.Success(c, http.StatusOK, gin.H{"message": "exhibition updated"})
}

// Delete removes one exhibition.
// @Summary Delete an exhibition
// @Tags Exhibitions
// @Produce json
// @Param id path string true "Exhibition id"
// @Success 200 {object} map[string]interface{}
// @Router /api/delete/exhibition/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "exhibition deleted"})
}

// DeleteAll wipes the collection after an explicit confirmation.
// @Summary Delete all exhibitions
// @Description Destructive bulk delete. Refused unless confirm=true is supplied.
// @Tags Exhibitions
// @Produce json
// @Param confirm query boolean true "Must be true"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Missing confirmation"
// @Router /api/admin/deleteallexhibition [delete]
func (h *Handler) DeleteAll(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := h.service.DeleteAll(c.Request.Context(), confirmed); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "all exhibitions deleted"})
}

// formValues flattens the multipart value fields into a form value map.
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "exhibition not found")
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
