package handlers

import (
	"errors"
	"net/http"
	"strings"

	"parcel_market/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures to the JSON error envelope:
// {"error": {"code": "...", "message": "..."}}.
func respondError(c *gin.Context, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Status, gin.H{"error": gin.H{"code": svcErr.Code, "message": svcErr.Message}})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{"code": services.CodeServer, "message": "unexpected server error"},
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{"code": services.CodeValidation, "message": message},
	})
}

// CORS allows the configured browser origins. Pass "*" to allow any.
func CORS(allowedOrigins string) gin.HandlerFunc {
	origins := strings.Split(allowedOrigins, ",")
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, allowed := range origins {
			allowed = strings.TrimSpace(allowed)
			if allowed == "*" || allowed == origin {
				c.Header("Access-Control-Allow-Origin", allowed)
				break
			}
		}
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
