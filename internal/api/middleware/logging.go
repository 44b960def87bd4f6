package middleware

import (
	"time"

	"github.com/dantee-nv/contact-relay/internal/logging"
	"github.com/dantee-nv/contact-relay/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger is a middleware that logs request information
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := utils.GetRealIP(c)

		logging.GetLogger().LogHTTPRequest(method, path, clientIP, statusCode, latency.String())
	}
}
