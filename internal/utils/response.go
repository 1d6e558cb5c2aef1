package utils

import "github.com/gin-gonic/gin"

// Error writes a transport-level failure. Domain results (recognition
// failures included) are rendered as their own response bodies, not through
// this helper.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   msg,
	})
}
