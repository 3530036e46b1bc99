package handlers

import (
	"net/http"
	"time"

	"todo-planner-api/internal/session"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// currentSession resolves the authenticated user's session. The JWT
// middleware has already stored user_id in the gin context.
func currentSession(c *gin.Context) (*session.Session, string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return nil, "", false
	}
	return session.GetManager().Session(userID), userID, true
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
