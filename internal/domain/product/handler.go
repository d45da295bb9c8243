package product

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

// List serves the product table across all companies.
// @Summary List products
// @Tags Products
// @Produce json
// @Param q query string false "Search across name, category and price"
// @Param page query integer false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/product [get]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	view, err := h.service.List(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// ListByCompany serves one company's product table.
// @Summary List products of a company
// @Tags Products
// @Produce json
// @Param companyId path string true "Company id"
// @Param q query string false "Search across name, category and price"
// @Param page query integer false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/product/list/{companyId} [get]
func (h *Handler) ListByCompany(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	view, err := h.service.ListByCompany(c.Request.Context(), c.Param("companyId"), c.Query("q"), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// AdminList serves the full product table.
// @Summary List products (admin)
// @Tags Products
// @Produce json
// @Param q query string false "Search query, row numbers included"
// @Param page query integer false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/product [get]
func (h *Handler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	view, err := h.service.AdminList(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Get serves one product detail view.
// @Summary Get product detail
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/product/detail/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Create handles the product popup: multipart form with optional image and
// video, scoped under the company in the path. The exhibitionid field names
// the exhibition the company exhibits at.
// @Summary Add a product to a company
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Param companyId path string true "Company id"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{} "Field or upload validation errors"
// @Router /api/company/addproduct/{companyId} [post]
func (h *Handler) Create(c *gin.Context) {
	values, err := formValues(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "request must be multipart/form-data")
		return
	}
	exhibitionID := values["exhibitionid"]
	delete(values, "exhibitionid")
	image := fileOrNil(c, "image")
	video := fileOrNil(c, "video")

	fieldErrs, err := h.service.Create(c.Request.Context(), c.Param("companyId"), exhibitionID, values, image, video)
	if err != nil {
		handleError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		response.ValidationError(c, http.StatusUnprocessableEntity, fieldErrs)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "product added"})
}

// Update handles the product edit.
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/admin/updateproduct/{id} [put]
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
	response.Success(c, http.StatusOK, gin.H{"message": "product updated"})
}

// Delete removes one product.
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} map[string]interface{}
// @Router /api/product/delete/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "product deleted"})
}

// DeleteAll wipes the product collection after an explicit confirmation.
// @Summary Delete all products
// @Tags Products
// @Produce json
// @Param confirm query boolean true "Must be true"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Missing confirmation"
// @Router /api/admin/deleteallproduct [delete]
func (h *Handler) DeleteAll(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := h.service.DeleteAll(c.Request.Context(), confirmed); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "all products deleted"})
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "product not found")
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
