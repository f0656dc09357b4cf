package middleware

import (
	"techblog/web/service"

	"github.com/gin-gonic/gin"
)

// Stats counts served requests for the admin status endpoint.
func Stats() gin.HandlerFunc {
	return func(c *gin.Context) {
		service.CountRequest()
		c.Next()
	}
}
