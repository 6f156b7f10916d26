package services

import (
	"time"

	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/repositories"
	"recruitflow_backend/internal/services/dto"
	"recruitflow_backend/pkg/apperrors"
)

// Recent-activity windows for the dashboards.
const (
	hrRecentWindow     = 7 * 24 * time.Hour
	seekerRecentWindow = 30 * 24 * time.Hour
)

type StatsService interface {
	AdminStats(db *gorm.DB) (*dto.AdminStats, error)
	HRStats(db *gorm.DB, hrID string) (*dto.HRStats, error)
	JobSeekerStats(db *gorm.DB, seekerID string) (*dto.JobSeekerStats, error)
}

type StatsServiceImpl struct {
	hrRepo     repositories.HRRepository
	seekerRepo repositories.JobSeekerRepository
	jobRepo    repositories.JobOpeningRepository
	appRepo    repositories.JobApplicationRepository
}

func NewStatsService(
	hrRepo repositories.HRRepository,
	seekerRepo repositories.JobSeekerRepository,
	jobRepo repositories.JobOpeningRepository,
	appRepo repositories.JobApplicationRepository,
) StatsService {
	return &StatsServiceImpl{
		hrRepo:     hrRepo,
		seekerRepo: seekerRepo,
		jobRepo:    jobRepo,
		appRepo:    appRepo,
	}
}

func (s *StatsServiceImpl) AdminStats(db *gorm.DB) (*dto.AdminStats, error) {
	hrCount, err := s.hrRepo.Count(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	seekerCount, err := s.seekerRepo.Count(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	activeJobs, err := s.jobRepo.CountByStatus(db, models.JobStatusActive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalApps, err := s.appRepo.CountAll(db, repositories.ApplicationFilter{})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingApps, err := s.appRepo.CountAll(db, repositories.ApplicationFilter{Status: models.ApplicationStatusPending})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminStats{
		HRCount:             hrCount,
		JobSeekerCount:      seekerCount,
		TotalUsers:          hrCount + seekerCount,
		ActiveJobs:          activeJobs,
		TotalApplications:   totalApps,
		PendingApplications: pendingApps,
	}, nil
}

// HRStats aggregates over the caller's own openings only.
func (s *StatsServiceImpl) HRStats(db *gorm.DB, hrID string) (*dto.HRStats, error) {
	activeJobs, err := s.jobRepo.CountByHR(db, hrID, models.JobStatusActive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalJobs, err := s.jobRepo.CountByHR(db, hrID, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobIDs, err := s.jobRepo.FindIDsByHR(db, hrID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalApps, err := s.appRepo.CountForJobs(db, jobIDs, repositories.ApplicationFilter{})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	since := time.Now().Add(-hrRecentWindow)
	recentApps, err := s.appRepo.CountForJobs(db, jobIDs, repositories.ApplicationFilter{Since: &since})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingReview, err := s.appRepo.CountForJobs(db, jobIDs, repositories.ApplicationFilter{Status: models.ApplicationStatusUnderReview})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	interviews, err := s.appRepo.CountForJobs(db, jobIDs, repositories.ApplicationFilter{Status: models.ApplicationStatusInterviewScheduled})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.HRStats{
		ActiveJobs:         activeJobs,
		TotalJobs:          totalJobs,
		TotalApplications:  totalApps,
		RecentApplications: recentApps,
		PendingReview:      pendingReview,
		InterviewScheduled: interviews,
	}, nil
}

func (s *StatsServiceImpl) JobSeekerStats(db *gorm.DB, seekerID string) (*dto.JobSeekerStats, error) {
	totalApps, err := s.appRepo.CountForSeeker(db, seekerID, repositories.ApplicationFilter{})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	since := time.Now().Add(-seekerRecentWindow)
	recentApps, err := s.appRepo.CountForSeeker(db, seekerID, repositories.ApplicationFilter{Since: &since})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingApps, err := s.appRepo.CountForSeeker(db, seekerID, repositories.ApplicationFilter{Status: models.ApplicationStatusPending})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	interviews, err := s.appRepo.CountForSeeker(db, seekerID, repositories.ApplicationFilter{Status: models.ApplicationStatusInterviewScheduled})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	accepted, err := s.appRepo.CountForSeeker(db, seekerID, repositories.ApplicationFilter{Status: models.ApplicationStatusAccepted})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobSeekerStats{
		TotalApplications:    totalApps,
		RecentApplications:   recentApps,
		PendingApplications:  pendingApps,
		InterviewScheduled:   interviews,
		AcceptedApplications: accepted,
	}, nil
}
