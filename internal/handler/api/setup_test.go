//go:build unit

package api_test

import (
	"net/http"

	"lab-scheduler/internal/domain/member"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type testActor struct {
	ID   uuid.UUID
	Role member.Role
}

// fakeAuth stands in for RequireAuth; the actor is read per request so tests can switch it.
func fakeAuth(a *testActor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("member_id", a.ID)
		c.Set("member_role", a.Role)
		c.Next()
	}
}
