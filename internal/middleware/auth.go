package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"recruitflow_backend/internal/auth"
	"recruitflow_backend/internal/logger"
	"recruitflow_backend/internal/models"
	"recruitflow_backend/pkg/apperrors"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextEmail  = "email"
	ContextName   = "name"
)

// AuthMiddleware extracts the bearer token, verifies it and attaches the
// caller's identity to the request. Missing or failed verification aborts
// with 401. Session tokens only; purpose-tagged tokens are rejected here.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil || claims.Purpose != "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated role is one of the
// given roles. Ownership checks stay with the resource services; this gate
// only does role-based gating.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	roleSet := make(map[models.Role]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRole)
		if !exists {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}

		role, ok := roleVal.(models.Role)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: invalid role type"))
				return
			}
			role = models.Role(roleStr)
		}

		if !roleSet[role] {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: insufficient role"))
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user id from the gin context.
func GetUserID(c *gin.Context) string {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return ""
	}
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}

// GetRole returns the authenticated role from the gin context.
func GetRole(c *gin.Context) models.Role {
	v, exists := c.Get(ContextRole)
	if !exists {
		return ""
	}
	role, ok := v.(models.Role)
	if !ok {
		if s, isString := v.(string); isString {
			return models.Role(s)
		}
		return ""
	}
	return role
}

// GetEmail returns the authenticated email from the gin context.
func GetEmail(c *gin.Context) string {
	v, exists := c.Get(ContextEmail)
	if !exists {
		return ""
	}
	email, _ := v.(string)
	return email
}
