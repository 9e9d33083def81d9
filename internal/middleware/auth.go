package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

const (
	RoleParent     = "parent"
	RoleBabysitter = "babysitter"
	RoleGuardian   = "guardian"
	RoleAdmin      = "admin"
)

var errUnexpectedSigning = errors.New("unexpected signing method")

// Auth verifies an HS256 bearer token issued elsewhere and stores its
// subject and role on the context.
func Auth(secret string, log logger.Logger) ginext.HandlerFunc {
	key := []byte(secret)

	return func(c *ginext.Context) {
		raw := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errUnexpectedSigning
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			log.LogAttrs(c.Request.Context(), logger.DebugLevel, "token rejected",
				logger.String("request_id", c.GetString(ctxRequestID)),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid claims"})
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "token has no subject"})
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ctxUserID, sub)
		c.Set(ctxRole, role)

		c.Next()
	}
}

// RequireRole admits callers whose token carries one of roles. Admin is
// always admitted. Requests that did not pass through Auth are let through,
// so the check is a no-op when authentication is switched off.
func RequireRole(roles ...string) ginext.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles)+1)
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	allowed[RoleAdmin] = struct{}{}

	return func(c *ginext.Context) {
		v, exists := c.Get(ctxRole)
		if !exists {
			c.Next()
			return
		}
		role, _ := v.(string)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
