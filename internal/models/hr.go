package models

import "time"

// HR is a recruiter account. Email is stored lowercased; the unique index is
// the correctness mechanism for duplicate registration, not the service-level
// pre-check.
type HR struct {
	BaseModel
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Company      string     `gorm:"not null" json:"company"`
	Phone        string     `json:"phone"`
	Status       HRStatus   `gorm:"type:varchar(20);default:'Active'" json:"status"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`

	JobOpenings []JobOpening `gorm:"foreignKey:HRID;constraint:OnDelete:CASCADE" json:"-"`
}
