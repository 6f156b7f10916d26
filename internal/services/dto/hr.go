package dto

import "recruitflow_backend/internal/models"

type UpdateHRRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email" binding:"omitempty,email"`
	Company string          `json:"company"`
	Phone   string          `json:"phone"`
	Status  models.HRStatus `json:"status" binding:"omitempty,oneof=Active Pending Suspended"`
}

// HRListQuery filters the admin HR listing. The frontend submits the literal
// "All Statuses" when no status is selected.
type HRListQuery struct {
	Status string `form:"status"`
}
