package location

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"onexhib-admin/internal/pkg/response"
)

// Handler serves the reference data behind the country/state/city dropdowns.
// The dependent options are always derived server-side: asking for states
// without a country, or cities without a state, yields an empty list, the
// same way a dependent dropdown renders empty until its parent is chosen.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Countries lists every country in the reference dataset.
// @Summary List countries
// @Tags Locations
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/locations/countries [get]
func (h *Handler) Countries(c *gin.Context) {
	response.Success(c, http.StatusOK, Countries())
}

// States lists the states of one country.
// @Summary List states of a country
// @Tags Locations
// @Produce json
// @Param country query string true "Country code"
// @Success 200 {object} map[string]interface{}
// @Router /api/locations/states [get]
func (h *Handler) States(c *gin.Context) {
	states := StatesOf(c.Query("country"))
	if states == nil {
		states = []State{}
	}
	response.Success(c, http.StatusOK, states)
}

// Cities lists the cities of one state.
// @Summary List cities of a state
// @Tags Locations
// @Produce json
// @Param country query string true "Country code"
// @Param state query string true "State code"
// @Success 200 {object} map[string]interface{}
// @Router /api/locations/cities [get]
func (h *Handler) Cities(c *gin.Context) {
	cities := CitiesOf(c.Query("country"), c.Query("state"))
	if cities == nil {
		cities = []string{}
	}
	response.Success(c, http.StatusOK, cities)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	loc := r.Group("/locations")
	{
		loc.GET("/countries", h.Countries)
		loc.GET("/states", h.States)
		loc.GET("/cities", h.Cities)
	}
}
