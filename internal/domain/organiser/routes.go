package organiser

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/signup", h.Signup)
	r.GET("/find/signup/:id", h.Get)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/signup", h.List)
}
