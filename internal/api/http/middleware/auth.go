package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// RequireFirebaseUser validates the Bearer ID token on admin routes and
// stores the caller's uid (and email, when the token carries one) on the
// request. A nil client means the service runs without Firebase, so admin
// routes are open; that is the local development mode.
func RequireFirebaseUser(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authClient == nil {
			c.Next()
			return
		}

		token := extractBearer(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		decoded, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("firebase_uid", decoded.UID)
		if email, ok := decoded.Claims["email"].(string); ok {
			c.Set("email", email)
		}

		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") && len(header) > 7 {
		return header[7:]
	}
	return ""
}
