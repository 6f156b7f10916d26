package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobOpening is owned by exactly one HR; ownership is checked before any
// mutation. Deleting an HR cascades here via the FK constraint.
type JobOpening struct {
	BaseModel
	Title           string                      `gorm:"not null" json:"title"`
	ExperienceLevel ExperienceLevel             `gorm:"type:varchar(20);not null" json:"experienceLevel"`
	Salary          float64                     `gorm:"not null" json:"salary"`
	Description     string                      `gorm:"not null" json:"description"`
	Skills          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills"`
	Location        string                      `gorm:"not null" json:"location"`
	Department      string                      `json:"department,omitempty"`
	HRID            string                      `gorm:"type:uuid;not null;index" json:"hrId"`
	CompanyName     string                      `gorm:"not null" json:"companyName"`
	Status          JobStatus                   `gorm:"type:varchar(20);default:'Active'" json:"status"`
	Deadline        *time.Time                  `json:"deadline,omitempty"`

	HR *HR `gorm:"foreignKey:HRID" json:"hr,omitempty"`
}
