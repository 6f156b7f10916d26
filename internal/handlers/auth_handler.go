package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitflow_backend/internal/config"
	"recruitflow_backend/internal/middleware"
	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/services"
	"recruitflow_backend/internal/services/dto"
	"recruitflow_backend/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService  services.AuthService
	statsService services.StatsService
	devMode      bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, statsService services.StatsService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  base,
		authService:  authService,
		statsService: statsService,
		devMode:      cfg.Server.Env == "development",
	}
}

// RegisterRoutes mounts the /auth group. authMW is the bearer-token gate
// built once in routes.Setup.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/jobseeker/register", h.RegisterJobSeeker)
		auth.POST("/jobseeker/login", h.LoginJobSeeker)
		auth.POST("/admin/login", h.LoginAdmin)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
		auth.GET("/verify-email/:token", h.VerifyEmail)

		auth.GET("/me", authMW, h.Me)
		auth.PUT("/profile", authMW, h.UpdateProfile)
		auth.PUT("/change-password", authMW, h.ChangePassword)
		auth.POST("/logout", authMW, h.Logout)
		auth.GET("/stats", authMW, h.Stats)
	}
}

func (h *AuthHandler) RegisterJobSeeker(c *gin.Context) {
	var req dto.RegisterJobSeekerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.RegisterJobSeeker(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) LoginJobSeeker(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginJobSeeker(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginAdmin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetCurrentUser(h.GetDB(c), userID, middleware.GetRole(c), middleware.GetEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.UpdateProfile(h.GetDB(c), userID, middleware.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "user": user})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	err := h.authService.ChangePassword(h.GetDB(c), userID, middleware.GetRole(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resetToken, err := h.authService.ForgotPassword(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := dto.ForgotPasswordResponse{
		Success: true,
		Message: "Password reset instructions sent to your email",
	}
	if h.devMode {
		resp.ResetToken = resetToken
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	err := h.authService.ResetPassword(h.GetDB(c), req.Token, req.NewPassword)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful"})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Param("token")

	err := h.authService.VerifyEmail(h.GetDB(c), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email verified successfully"})
}

// Logout is stateless; the session token stays valid until it expires.
// The endpoint exists so clients have a uniform place to end a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Stats dispatches on the caller's role so one endpoint serves all three
// dashboards.
func (h *AuthHandler) Stats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	switch middleware.GetRole(c) {
	case models.RoleAdmin:
		stats, err := h.statsService.AdminStats(db)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})

	case models.RoleHR:
		stats, err := h.statsService.HRStats(db, userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})

	case models.RoleJobSeeker:
		stats, err := h.statsService.JobSeekerStats(db, userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})

	default:
		h.HandleServiceError(c, apperrors.ErrInvalidUserRole)
	}
}
