package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitflow_backend/internal/services"
	"recruitflow_backend/internal/services/dto"
)

// HRHandler covers recruiter self-service (register, login) plus the admin
// management surface over recruiter accounts.
type HRHandler struct {
	*BaseHandler
	authService services.AuthService
	hrService   services.HRService
}

func NewHRHandler(base *BaseHandler, authService services.AuthService, hrService services.HRService) *HRHandler {
	return &HRHandler{BaseHandler: base, authService: authService, hrService: hrService}
}

func (h *HRHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminOnly gin.HandlerFunc) {
	hr := rg.Group("/hr")
	{
		hr.POST("/register", h.Register)
		hr.POST("/login", h.Login)

		hr.GET("", authMW, adminOnly, h.List)
		hr.GET("/:id", authMW, h.GetByID)
		hr.PUT("/:id", authMW, adminOnly, h.Update)
		hr.DELETE("/:id", authMW, adminOnly, h.Delete)
	}
}

func (h *HRHandler) Register(c *gin.Context) {
	var req dto.RegisterHRRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.RegisterHR(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *HRHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginHR(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HRHandler) List(c *gin.Context) {
	var query dto.HRListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	hrs, err := h.hrService.ListHRs(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(hrs), "hrs": hrs})
}

func (h *HRHandler) GetByID(c *gin.Context) {
	hr, err := h.hrService.GetHR(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hr": hr})
}

func (h *HRHandler) Update(c *gin.Context) {
	var req dto.UpdateHRRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	hr, err := h.hrService.UpdateHR(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "HR updated successfully", "hr": hr})
}

func (h *HRHandler) Delete(c *gin.Context) {
	if err := h.hrService.DeleteHR(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "HR deleted successfully"})
}
