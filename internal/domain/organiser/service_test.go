package organiser

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onexhib-admin/internal/backend"
	"onexhib-admin/internal/pkg/forms"
)

func newTestBackend(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.New(backend.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func validSignup() forms.Values {
	return forms.Values{
		"first_name":    "Asha",
		"last_name":     "Patel",
		"email":         "asha@onexhib.test",
		"password":      "pass1234",
		"mobile_number": "9876543210",
		"country":       "IN",
		"state":         "MH",
		"city":          "Mumbai",
		"address":       "12 Marine Drive",
	}
}

func TestSignupShortMobileBlocksSubmission(t *testing.T) {
	var posts int64
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&posts, 1)
		w.WriteHeader(http.StatusCreated)
	}))
	svc := NewService(NewRepository(api))

	values := validSignup()
	values["mobile_number"] = "98765432"

	fieldErrs, err := svc.Signup(context.Background(), values)
	require.NoError(t, err)
	assert.Equal(t, "Mobile number must be 10 digits.", fieldErrs["mobile_number"])
	assert.EqualValues(t, 0, atomic.LoadInt64(&posts), "rejected form must not reach the backend")
}

func TestSignupValidFormPostsExactlyOnce(t *testing.T) {
	var posts int64
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/signup", r.URL.Path)

		var o Organiser
		require.NoError(t, json.NewDecoder(r.Body).Decode(&o))
		assert.Equal(t, "9876543210", o.MobileNumber)
		assert.Equal(t, "asha@onexhib.test", o.Email)

		atomic.AddInt64(&posts, 1)
		w.WriteHeader(http.StatusCreated)
	}))
	svc := NewService(NewRepository(api))

	fieldErrs, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.EqualValues(t, 1, atomic.LoadInt64(&posts))
}

func TestSignupOptionalFieldsMayBeEmpty(t *testing.T) {
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	svc := NewService(NewRepository(api))

	values := validSignup() // no company_name, no website
	fieldErrs, err := svc.Signup(context.Background(), values)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
}

func TestSignupWebsiteNeedsScheme(t *testing.T) {
	svc := NewService(NewRepository(newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))))

	values := validSignup()
	values["website"] = "onexhib.test"

	fieldErrs, err := svc.Signup(context.Background(), values)
	require.NoError(t, err)
	assert.Equal(t, "Enter a valid URL (include http/https).", fieldErrs["website"])
}

func TestSignupStateMustBelongToCountry(t *testing.T) {
	svc := NewService(NewRepository(newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))))

	values := validSignup()
	values["state"] = "CA" // not an Indian state

	fieldErrs, err := svc.Signup(context.Background(), values)
	require.NoError(t, err)
	assert.Equal(t, "Select a valid state.", fieldErrs["state"])
}

func TestSignupUnknownCountryIsRejected(t *testing.T) {
	svc := NewService(NewRepository(newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))))

	values := validSignup()
	values["country"] = "Atlantis"
	values["state"] = ""
	values["city"] = ""

	fieldErrs, err := svc.Signup(context.Background(), values)
	require.NoError(t, err)
	assert.Equal(t, "Select a valid country.", fieldErrs["country"])
}

func TestSignupBackendFailureIsRecoverable(t *testing.T) {
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
	}))
	svc := NewService(NewRepository(api))

	fieldErrs, err := svc.Signup(context.Background(), validSignup())
	assert.Nil(t, fieldErrs)
	require.Error(t, err)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestListSearchAndPaging(t *testing.T) {
	items := []Organiser{
		{FirstName: "Asha", LastName: "Patel", Email: "asha@x.test", CompanyName: "Expo Lines", MobileNumber: "9876543210"},
		{FirstName: "Boris", LastName: "Ide", Email: "boris@x.test", CompanyName: "Fairworks", MobileNumber: "9123456780"},
		{FirstName: "Chen", LastName: "Patel", Email: "chen@x.test", CompanyName: "Stallcraft", MobileNumber: "9000000001"},
	}
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/signup", r.URL.Path)
		_ = json.NewEncoder(w).Encode(items)
	}))
	svc := NewService(NewRepository(api))

	view, err := svc.List(context.Background(), "patel", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Filtered)
	assert.Equal(t, []int{1, 3}, view.Rows)
	assert.Equal(t, 1, view.TotalPages)
}

func TestListSearchesDesignation(t *testing.T) {
	items := []Organiser{
		{FirstName: "Asha", Email: "asha@x.test", Designation: "Event Director"},
		{FirstName: "Boris", Email: "boris@x.test", Designation: "Sales Head"},
	}
	api := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(items)
	}))
	svc := NewService(NewRepository(api))

	view, err := svc.List(context.Background(), "director", 1)
	require.NoError(t, err)
	require.Equal(t, 1, view.Filtered)
	assert.Equal(t, "Asha", view.Items[0].FirstName)
}
