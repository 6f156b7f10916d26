package models

import "time"

// JobApplication denormalizes the applicant's name/email and the HR contact
// email at apply time, mirroring what the application list views need.
// Applications are never deleted; only Status changes after creation.
type JobApplication struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;index" json:"jobId"`
	JobSeekerID string            `gorm:"type:uuid;not null;index" json:"jobSeekerId"`
	FullName    string            `gorm:"not null" json:"fullName"`
	Email       string            `gorm:"not null" json:"email"`
	CoverLetter string            `gorm:"not null" json:"coverLetter"`
	ResumeURL   string            `gorm:"not null" json:"resumeUrl"`
	Status      ApplicationStatus `gorm:"type:varchar(30);default:'Pending'" json:"status"`
	AppliedAt   time.Time         `gorm:"default:now()" json:"appliedAt"`
	HREmail     string            `gorm:"not null" json:"hrEmail"`

	// Loose references: deleting an opening leaves its applications behind,
	// so no FK constraint is emitted for either association.
	Job       *JobOpening `gorm:"foreignKey:JobID;constraint:-" json:"job,omitempty"`
	JobSeeker *JobSeeker  `gorm:"foreignKey:JobSeekerID;constraint:-" json:"jobSeeker,omitempty"`
}
