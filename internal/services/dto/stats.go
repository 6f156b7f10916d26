package dto

// Stats payloads differ per role; only the relevant struct is returned.

type AdminStats struct {
	HRCount             int64 `json:"hrCount"`
	JobSeekerCount      int64 `json:"jobSeekerCount"`
	TotalUsers          int64 `json:"totalUsers"`
	ActiveJobs          int64 `json:"activeJobs"`
	TotalApplications   int64 `json:"totalApplications"`
	PendingApplications int64 `json:"pendingApplications"`
}

type HRStats struct {
	ActiveJobs         int64 `json:"activeJobs"`
	TotalJobs          int64 `json:"totalJobs"`
	TotalApplications  int64 `json:"totalApplications"`
	RecentApplications int64 `json:"recentApplications"`
	PendingReview      int64 `json:"pendingReview"`
	InterviewScheduled int64 `json:"interviewScheduled"`
}

type JobSeekerStats struct {
	TotalApplications    int64 `json:"totalApplications"`
	RecentApplications   int64 `json:"recentApplications"`
	PendingApplications  int64 `json:"pendingApplications"`
	InterviewScheduled   int64 `json:"interviewScheduled"`
	AcceptedApplications int64 `json:"acceptedApplications"`
}
