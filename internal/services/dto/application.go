package dto

type ApplyRequest struct {
	JobID       string `json:"jobId" binding:"required"`
	CoverLetter string `json:"coverLetter" binding:"required"`
	ResumeURL   string `json:"resumeUrl" binding:"required"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending 'Under Review' 'Interview Scheduled' Accepted Rejected"`
}
