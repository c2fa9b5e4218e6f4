package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SubjectKey is the gin context key under which middleware stores the
// authenticated subject's id.
const SubjectKey = "auth_subject_id"

// RequireRole rejects requests without a valid bearer token for the given
// role and stores the subject id in the context.
func RequireRole(manager *Manager, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		subjectID, tokenRole, ok := bearerSubject(manager, c)
		if !ok || tokenRole != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "unauthorized", "message": "missing or invalid token"},
			})
			return
		}
		c.Set(SubjectKey, subjectID)
		c.Next()
	}
}

// OptionalUser attaches the user id when a valid user token is present and
// lets the request through either way. Guest checkout depends on this.
func OptionalUser(manager *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if subjectID, role, ok := bearerSubject(manager, c); ok && role == RoleUser {
			c.Set(SubjectKey, subjectID)
		}
		c.Next()
	}
}

// Subject returns the authenticated subject id stored by the middleware.
func Subject(c *gin.Context) (uint, bool) {
	value, exists := c.Get(SubjectKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

func bearerSubject(manager *Manager, c *gin.Context) (uint, string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, "", false
	}
	subjectID, role, err := manager.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return 0, "", false
	}
	return subjectID, role, true
}
