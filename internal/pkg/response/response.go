package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ValidationError carries the field → message map produced by a form
// validator. The form stays open and editable; nothing was sent upstream.
func ValidationError(c *gin.Context, statusCode int, fields map[string]string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Please fix the highlighted errors.",
			"fields":  fields,
		},
	})
}
