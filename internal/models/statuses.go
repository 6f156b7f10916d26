package models

type Role string
type HRStatus string
type JobSeekerStatus string
type JobStatus string
type ApplicationStatus string
type ExperienceLevel string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleHR        Role = "hr"
	RoleAdmin     Role = "admin"

	HRStatusActive    HRStatus = "Active"
	HRStatusPending   HRStatus = "Pending"
	HRStatusSuspended HRStatus = "Suspended"

	JobSeekerStatusActive    JobSeekerStatus = "Active"
	JobSeekerStatusVerified  JobSeekerStatus = "Verified"
	JobSeekerStatusOnHold    JobSeekerStatus = "On Hold"
	JobSeekerStatusSuspended JobSeekerStatus = "Suspended"

	JobStatusActive JobStatus = "Active"
	JobStatusClosed JobStatus = "Closed"
	JobStatusDraft  JobStatus = "Draft"

	ApplicationStatusPending            ApplicationStatus = "Pending"
	ApplicationStatusUnderReview        ApplicationStatus = "Under Review"
	ApplicationStatusInterviewScheduled ApplicationStatus = "Interview Scheduled"
	ApplicationStatusAccepted           ApplicationStatus = "Accepted"
	ApplicationStatusRejected           ApplicationStatus = "Rejected"

	ExperienceLevelEntry  ExperienceLevel = "Entry Level"
	ExperienceLevelMid    ExperienceLevel = "Mid Level"
	ExperienceLevelSenior ExperienceLevel = "Senior Level"
)
