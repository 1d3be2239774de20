// Package response writes the API's JSON envelope: every body carries a
// "success" flag, with either "data" or an "error" object holding a stable
// machine-readable code and a human message.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails is Error plus a free-form details payload, used for
// field-level validation output.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
