package company

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onexhib-admin/internal/backend"
)

func newTestBackend(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.New(backend.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func newRouter(t *testing.T, api *backend.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(NewRepository(api), t.TempDir()))
	h.RegisterRoutes(r.Group("/api"))
	h.RegisterAdminRoutes(r.Group("/api/admin"))
	return r
}

func multipartRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validCompanyFields() map[string]string {
	return map[string]string{
		"createdBy":            "ex1",
		"company_name":         "Stallcraft Pvt Ltd",
		"company_email":        "hello@stallcraft.test",
		"company_nature":       "Fabrication",
		"company_phone_number": "9876543210",
		"company_address":      "Plot 7, MIDC",
		"pincode":              "400093",
		"about_company":        "Custom stall fabrication.",
		"company_website":      "https://stallcraft.test",
		"stall_no":             "A-12",
		"hall_no":              "4",
	}
}

func TestCreateForwardsMultipartToBackend(t *testing.T) {
	var posts int64
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/company", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "ex1", r.FormValue("createdBy"))
		assert.Equal(t, "Stallcraft Pvt Ltd", r.FormValue("company_name"))
		atomic.AddInt64(&posts, 1)
		w.WriteHeader(http.StatusCreated)
	}))
	router := newRouter(t, api)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, "/api/company", validCompanyFields()))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 1, atomic.LoadInt64(&posts))
}

func TestCreateForwardsLogoUnderOriginalPartName(t *testing.T) {
	png := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range validCompanyFields() {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("company_image_url", "logo.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		_, header, err := r.FormFile("company_image_url")
		require.NoError(t, err, "logo must arrive under company_image_url")
		assert.Equal(t, "logo.png", header.Filename)
		w.WriteHeader(http.StatusCreated)
	}))
	router := newRouter(t, api)

	req := httptest.NewRequest(http.MethodPost, "/api/company", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateShortPincodeReturns422AndNoUpstreamCall(t *testing.T) {
	var posts int64
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&posts, 1)
	}))
	router := newRouter(t, api)

	fields := validCompanyFields()
	fields["pincode"] = "4000"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, "/api/company", fields))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.EqualValues(t, 0, atomic.LoadInt64(&posts))

	var body struct {
		Error struct {
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Pincode must be 6 digits", body.Error.Fields["pincode"])
}

func TestListSearchByRowNumber(t *testing.T) {
	items := []Company{
		{CompanyName: "Alpha Expo"},
		{CompanyName: "Beta Stalls"},
		{CompanyName: "Gamma Prints"},
	}
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/company/ex1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(items)
	}))
	router := newRouter(t, api)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/company/ex1?q=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Items []Company `json:"items"`
			Rows  []int     `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "Beta Stalls", body.Data.Items[0].CompanyName)
	assert.Equal(t, []int{2}, body.Data.Rows)
}

func TestDeleteAllWithoutConfirmIsRefused(t *testing.T) {
	var calls int64
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	router := newRouter(t, api)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/deleteallcompany", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, 0, atomic.LoadInt64(&calls))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/deleteallcompany?confirm=true", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls))
}

func TestBrochureStreamsThrough(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake brochure body")
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/brochure/co1", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))
	router := newRouter(t, api)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brochure/co1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, pdf, rec.Body.Bytes())
}

func TestBrochureNotFound(t *testing.T) {
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "no brochure"})
	}))
	router := newRouter(t, api)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brochure/co9", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBackendFailureSurfacesAsBadGateway(t *testing.T) {
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "db down"})
	}))
	router := newRouter(t, api)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/company", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "db down")
}
