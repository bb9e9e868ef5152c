package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONPage is the envelope for paginated lists.
func JSONPage(c *gin.Context, count int64, results interface{}) {
	c.JSON(200, gin.H{"count": count, "results": results})
}
