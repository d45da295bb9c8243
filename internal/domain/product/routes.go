package product

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/company/addproduct/:companyId", h.Create)
	r.GET("/product", h.List)
	r.GET("/product/detail/:id", h.Get)
	r.GET("/product/list/:companyId", h.ListByCompany)
	r.DELETE("/product/delete/:id", h.Delete)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/product", h.AdminList)
	r.PUT("/updateproduct/:id", h.Update)
	r.DELETE("/deleteallproduct", h.DeleteAll)
}
