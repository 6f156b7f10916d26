package models

import (
	"time"

	"gorm.io/datatypes"
)

type ExperienceEntry struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Current     bool       `json:"current"`
	Description []string   `json:"description,omitempty"`
}

type EducationEntry struct {
	Degree    string     `json:"degree"`
	School    string     `json:"school"`
	Field     string     `json:"field"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type JobSeeker struct {
	BaseModel
	FullName     string                               `gorm:"not null" json:"fullName"`
	Email        string                               `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string                               `gorm:"not null" json:"-"`
	Phone        string                               `json:"phone"`
	Location     string                               `json:"location"`
	LinkedIn     string                               `json:"linkedin,omitempty"`
	Skills       datatypes.JSONSlice[string]          `gorm:"type:jsonb" json:"skills"`
	Experience   datatypes.JSONSlice[ExperienceEntry] `gorm:"type:jsonb" json:"experience"`
	Education    datatypes.JSONSlice[EducationEntry]  `gorm:"type:jsonb" json:"education"`
	ResumeURL    string                               `json:"resumeUrl,omitempty"`
	Status       JobSeekerStatus                      `gorm:"type:varchar(20);default:'Active'" json:"status"`
	LastLogin    *time.Time                           `json:"lastLogin,omitempty"`
}
