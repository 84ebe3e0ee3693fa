package middleware

import (
	"net/http"
	"strings"

	"pupinn-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Actor is the authenticated caller as the booking engine sees it: an
// opaque identity used only to populate created_by/creation_source.
type Actor struct {
	UserID   uint
	Role     string
	FullName string
}

const actorKey = "actor"

// RequireAuth validates the Bearer token and stores the Actor in the gin
// context for handlers downstream.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
			c.Abort()
			return
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid claims")
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(float64)
		role, _ := claims["role"].(string)
		name, _ := claims["name"].(string)
		if sub <= 0 || role == "" {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid claims")
			c.Abort()
			return
		}

		c.Set(actorKey, Actor{UserID: uint(sub), Role: role, FullName: name})
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			c.Abort()
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "FORBIDDEN", "insufficient role")
		c.Abort()
	}
}

// GetActor returns the authenticated actor stored by RequireAuth.
func GetActor(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}
