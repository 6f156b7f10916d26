package dto

import "recruitflow_backend/internal/models"

type RegisterJobSeekerRequest struct {
	FullName string   `json:"fullName" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

type RegisterHRRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Company  string `json:"company" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	// Status is accepted for admin-driven creation; defaults to Active.
	Status models.HRStatus `json:"status" binding:"omitempty,oneof=Active Pending Suspended"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string      `json:"email" binding:"required,email"`
	Role  models.Role `json:"role" binding:"required,oneof=jobseeker hr"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UpdateProfileRequest carries the union of editable fields for both account
// kinds; the service applies only the ones valid for the caller's role.
type UpdateProfileRequest struct {
	FullName   string                   `json:"fullName"`
	Name       string                   `json:"name"`
	Email      string                   `json:"email" binding:"omitempty,email"`
	Phone      string                   `json:"phone"`
	Location   string                   `json:"location"`
	LinkedIn   string                   `json:"linkedin"`
	Company    string                   `json:"company"`
	Skills     []string                 `json:"skills"`
	Experience []models.ExperienceEntry `json:"experience"`
	Education  []models.EducationEntry  `json:"education"`
	ResumeURL  string                   `json:"resumeUrl"`
}

// AuthResponse is the register/login payload. User is the public profile of
// the account kind that logged in; the password hash never serializes.
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    interface{} `json:"user"`
}

type ForgotPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// ResetToken is exposed in development mode only.
	ResetToken string `json:"resetToken,omitempty"`
}
