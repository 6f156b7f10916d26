package dto

import (
	"time"

	"recruitflow_backend/internal/models"
)

type CreateJobRequest struct {
	Title           string     `json:"title" binding:"required"`
	ExperienceLevel string     `json:"experienceLevel" binding:"required,oneof='Entry Level' 'Mid Level' 'Senior Level'"`
	Salary          float64    `json:"salary" binding:"required,gt=0"`
	Description     string     `json:"description" binding:"required"`
	Skills          []string   `json:"skills" binding:"required,min=1"`
	Location        string     `json:"location" binding:"required"`
	Department      string     `json:"department"`
	CompanyName     string     `json:"companyName" binding:"required"`
	Deadline        *time.Time `json:"deadline"`
}

// UpdateJobRequest uses pointer-free optional semantics like the original:
// zero values leave the stored field untouched.
type UpdateJobRequest struct {
	Title           string     `json:"title"`
	ExperienceLevel string     `json:"experienceLevel" binding:"omitempty,oneof='Entry Level' 'Mid Level' 'Senior Level'"`
	Salary          float64    `json:"salary" binding:"omitempty,gt=0"`
	Description     string     `json:"description"`
	Skills          []string   `json:"skills"`
	Location        string     `json:"location"`
	Department      string     `json:"department"`
	Status          string     `json:"status" binding:"omitempty,oneof=Active Closed Draft"`
	Deadline        *time.Time `json:"deadline"`
}

// JobSearchQuery binds the public-listing filter parameters.
type JobSearchQuery struct {
	Search          string `form:"search"`
	Location        string `form:"location"`
	Skills          string `form:"skills"`
	ExperienceLevel string `form:"experienceLevel"`
	Company         string `form:"company"`
}

type JobResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Job     *models.JobOpening `json:"jobOpening,omitempty"`
}
