package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"tripdesk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxStaffEmailKey = "staff_email"
	ctxStaffRoleKey  = "staff_role"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleStaff {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxStaffEmailKey, claims.Email)
		c.Set(ctxStaffRoleKey, claims.Role)
		c.Next()
	}
}

func GetStaffEmail(c *gin.Context) string {
	email, exists := c.Get(ctxStaffEmailKey)
	if !exists {
		return ""
	}

	e, ok := email.(string)
	if !ok {
		return ""
	}
	return e
}

func GetStaffRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxStaffRoleKey)
	if !exists {
		return "", false
	}

	r, ok := role.(string)
	return r, ok
}
