package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/services"
	"recruitflow_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, appService: appService}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, hrOnly, seekerOnly gin.HandlerFunc) {
	apps := rg.Group("/applications")
	apps.Use(authMW)
	{
		apps.POST("/apply", seekerOnly, h.Apply)
		apps.GET("/my-applications", seekerOnly, h.MyApplications)
		apps.GET("/job/:jobId", hrOnly, h.ForJob)
		apps.PUT("/:applicationId/status", hrOnly, h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	seekerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.appService.Apply(h.GetDB(c), seekerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Application submitted successfully", "application": application})
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	seekerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.appService.GetMyApplications(h.GetDB(c), seekerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(applications), "applications": applications})
}

func (h *ApplicationHandler) ForJob(c *gin.Context) {
	hrID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.appService.GetApplicationsForJob(h.GetDB(c), hrID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(applications), "applications": applications})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	hrID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.appService.UpdateStatus(h.GetDB(c), hrID, c.Param("applicationId"), models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application status updated", "application": application})
}
