package services

import (
	"time"

	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/repositories"
	"recruitflow_backend/internal/services/dto"
	"recruitflow_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(db *gorm.DB, seekerID string, req *dto.ApplyRequest) (*models.JobApplication, error)
	GetMyApplications(db *gorm.DB, seekerID string) ([]models.JobApplication, error)
	GetApplicationsForJob(db *gorm.DB, hrID, jobID string) ([]models.JobApplication, error)
	UpdateStatus(db *gorm.DB, hrID, applicationID string, status models.ApplicationStatus) (*models.JobApplication, error)
}

type ApplicationServiceImpl struct {
	appRepo    repositories.JobApplicationRepository
	jobRepo    repositories.JobOpeningRepository
	seekerRepo repositories.JobSeekerRepository
}

func NewApplicationService(
	appRepo repositories.JobApplicationRepository,
	jobRepo repositories.JobOpeningRepository,
	seekerRepo repositories.JobSeekerRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:    appRepo,
		jobRepo:    jobRepo,
		seekerRepo: seekerRepo,
	}
}

// Apply files an application. Seeker name/email and the owning HR's email are
// copied onto the row so listings need no extra joins and survive account
// changes.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, seekerID string, req *dto.ApplyRequest) (*models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(db, req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("Job opening not found")
		}
		return nil, apperrors.InternalError(err)
	}

	seeker, err := s.seekerRepo.FindByID(db, seekerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.NewNotFoundError("Job seeker not found")
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.appRepo.ExistsForJobAndSeeker(db, job.ID, seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.NewBadRequestError("You have already applied to this job")
	}

	var hrEmail string
	if job.HR != nil {
		hrEmail = job.HR.Email
	}

	application := &models.JobApplication{
		JobID:       job.ID,
		JobSeekerID: seekerID,
		FullName:    seeker.FullName,
		Email:       seeker.Email,
		HREmail:     hrEmail,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		Status:      models.ApplicationStatusPending,
		AppliedAt:   time.Now(),
	}

	if err := s.appRepo.Create(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationServiceImpl) GetMyApplications(db *gorm.DB, seekerID string) ([]models.JobApplication, error) {
	applications, err := s.appRepo.FindByJobSeeker(db, seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// GetApplicationsForJob lists applications for one opening the caller owns.
func (s *ApplicationServiceImpl) GetApplicationsForJob(db *gorm.DB, hrID, jobID string) ([]models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("Job opening not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if job.HRID != hrID {
		return nil, apperrors.ErrNotOwner
	}

	applications, err := s.appRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// UpdateStatus moves an application along the pipeline. The caller must own
// the opening the application targets.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, hrID, applicationID string, status models.ApplicationStatus) (*models.JobApplication, error) {
	application, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(db, application.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("Job opening not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.HRID != hrID {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.appRepo.UpdateStatus(db, applicationID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	application.Status = status
	return application, nil
}
