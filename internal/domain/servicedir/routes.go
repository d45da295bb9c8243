package servicedir

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/get/service", h.List)
	r.POST("/add/service", h.Create)
}
