package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitflow_backend/internal/auth"
	"recruitflow_backend/internal/handlers"
	"recruitflow_backend/internal/middleware"
	"recruitflow_backend/internal/models"
)

// RegisterRoutes mounts the whole HTTP surface under /api. The role gates
// are built once here and handed to each handler group.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, tokens *auth.TokenService) {
	authMW := middleware.AuthMiddleware(tokens)
	hrOnly := middleware.RequireRoles(models.RoleHR)
	seekerOnly := middleware.RequireRoles(models.RoleJobSeeker)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authMW)
		appHandlers.HRHandler.RegisterRoutes(api, authMW, adminOnly)
		appHandlers.JobHandler.RegisterRoutes(api, authMW, hrOnly)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authMW, hrOnly, seekerOnly)
	}
}
