package exhibition

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/exhibition", h.List)
	r.POST("/exhibition", h.Create)
	r.GET("/find/exhibition/:id", h.Get)
	r.DELETE("/delete/exhibition/:id", h.Delete)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/exhibition", h.AdminList)
	r.PUT("/updateexhibitions/:id", h.Update)
	r.DELETE("/deleteallexhibition", h.DeleteAll)
}
