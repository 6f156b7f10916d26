package services

import (
	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/repositories"
	"recruitflow_backend/internal/services/dto"
	"recruitflow_backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(db *gorm.DB, hrID string, req *dto.CreateJobRequest) (*models.JobOpening, error)
	SearchJobs(db *gorm.DB, query *dto.JobSearchQuery) ([]models.JobOpening, error)
	GetJob(db *gorm.DB, id string) (*models.JobOpening, error)
	GetMyJobs(db *gorm.DB, hrID string) ([]models.JobOpening, error)
	UpdateJob(db *gorm.DB, hrID, jobID string, req *dto.UpdateJobRequest) (*models.JobOpening, error)
	DeleteJob(db *gorm.DB, hrID, jobID string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobOpeningRepository
	hrRepo  repositories.HRRepository
}

func NewJobService(jobRepo repositories.JobOpeningRepository, hrRepo repositories.HRRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, hrRepo: hrRepo}
}

// CreateJob stores a new opening owned by the calling HR. New openings are
// always Active.
func (s *JobServiceImpl) CreateJob(db *gorm.DB, hrID string, req *dto.CreateJobRequest) (*models.JobOpening, error) {
	if _, err := s.hrRepo.FindByID(db, hrID); err != nil {
		if apperrors.Is(err, repositories.ErrHRNotFound) {
			return nil, apperrors.NewNotFoundError("HR not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job := &models.JobOpening{
		HRID:            hrID,
		Title:           req.Title,
		ExperienceLevel: models.ExperienceLevel(req.ExperienceLevel),
		Salary:          req.Salary,
		Description:     req.Description,
		Skills:          req.Skills,
		Location:        req.Location,
		Department:      req.Department,
		CompanyName:     req.CompanyName,
		Status:          models.JobStatusActive,
		Deadline:        req.Deadline,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// SearchJobs lists Active openings matching the public filters.
func (s *JobServiceImpl) SearchJobs(db *gorm.DB, query *dto.JobSearchQuery) ([]models.JobOpening, error) {
	criteria := repositories.JobSearchCriteria{
		Search:          query.Search,
		Location:        query.Location,
		Skills:          query.Skills,
		ExperienceLevel: query.ExperienceLevel,
		Company:         query.Company,
	}

	jobs, err := s.jobRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, id string) (*models.JobOpening, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("Job opening not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) GetMyJobs(db *gorm.DB, hrID string) ([]models.JobOpening, error) {
	jobs, err := s.jobRepo.FindByHR(db, hrID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// UpdateJob applies non-zero fields to an opening the caller owns. Zero
// values leave the stored value untouched, so a field cannot be blanked.
func (s *JobServiceImpl) UpdateJob(db *gorm.DB, hrID, jobID string, req *dto.UpdateJobRequest) (*models.JobOpening, error) {
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

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.ExperienceLevel != "" {
		job.ExperienceLevel = models.ExperienceLevel(req.ExperienceLevel)
	}
	if req.Salary != 0 {
		job.Salary = req.Salary
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Department != "" {
		job.Department = req.Department
	}
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// DeleteJob removes an opening the caller owns. Applications pointing at it
// remain.
func (s *JobServiceImpl) DeleteJob(db *gorm.DB, hrID, jobID string) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.NewNotFoundError("Job opening not found")
		}
		return apperrors.InternalError(err)
	}

	if job.HRID != hrID {
		return apperrors.ErrNotOwner
	}

	if err := s.jobRepo.Delete(db, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
