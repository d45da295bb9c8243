package company

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/company", h.Create)
	r.GET("/company/:exhibitionId", h.ListByExhibition)
	r.GET("/companydetail/:id", h.Get)
	r.GET("/brochure/:companyId", h.Brochure)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/company", h.AdminList)
	r.PUT("/updatecompany/:id", h.Update)
	r.DELETE("/deleteallcompany", h.DeleteAll)
}
