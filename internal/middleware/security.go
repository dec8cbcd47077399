package middleware

import "github.com/gin-gonic/gin"

const contentSecurityPolicy = "default-src 'self'; img-src 'self' data:; frame-ancestors 'self'"

// SecurityHeaders sets the response headers every page carries.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("Referrer-Policy", "same-origin")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		c.Next()
	}
}
