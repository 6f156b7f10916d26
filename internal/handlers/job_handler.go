package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitflow_backend/internal/services"
	"recruitflow_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

// RegisterRoutes mounts the /jobs group. Listing and get-by-id are public;
// everything else requires an authenticated HR.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, hrOnly gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("/listings", h.Listings)
		jobs.GET("/hr/my-jobs", authMW, hrOnly, h.MyJobs)
		jobs.GET("/:id", h.GetByID)
		jobs.POST("", authMW, hrOnly, h.Create)
		jobs.PUT("/:id", authMW, hrOnly, h.Update)
		jobs.DELETE("/:id", authMW, hrOnly, h.Delete)
	}
}

func (h *JobHandler) Listings(c *gin.Context) {
	var query dto.JobSearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.SearchJobs(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(jobs), "jobOpenings": jobs})
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobService.GetJob(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobOpening": job})
}

func (h *JobHandler) Create(c *gin.Context) {
	hrID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), hrID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Job opening created successfully", "jobOpening": job})
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	hrID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.GetMyJobs(h.GetDB(c), hrID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(jobs), "jobOpenings": jobs})
}

func (h *JobHandler) Update(c *gin.Context) {
	hrID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(h.GetDB(c), hrID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job opening updated successfully", "jobOpening": job})
}

func (h *JobHandler) Delete(c *gin.Context) {
	hrID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(h.GetDB(c), hrID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job opening deleted successfully"})
}
