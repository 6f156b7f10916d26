package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
)

// ApplicationFilter narrows count queries. Zero values mean "no constraint".
type ApplicationFilter struct {
	Status models.ApplicationStatus
	Since  *time.Time
}

type JobApplicationRepository interface {
	Create(db *gorm.DB, application *models.JobApplication) error
	FindByID(db *gorm.DB, id string) (*models.JobApplication, error)
	FindByJobSeeker(db *gorm.DB, seekerID string) ([]models.JobApplication, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error)
	ExistsForJobAndSeeker(db *gorm.DB, jobID, seekerID string) (bool, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	CountForJobs(db *gorm.DB, jobIDs []string, filter ApplicationFilter) (int64, error)
	CountForSeeker(db *gorm.DB, seekerID string, filter ApplicationFilter) (int64, error)
	CountAll(db *gorm.DB, filter ApplicationFilter) (int64, error)
}

type JobApplicationRepositoryImpl struct{}

func NewJobApplicationRepository() JobApplicationRepository {
	return &JobApplicationRepositoryImpl{}
}

func (r *JobApplicationRepositoryImpl) Create(db *gorm.DB, application *models.JobApplication) error {
	return db.Create(application).Error
}

func (r *JobApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := db.Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *JobApplicationRepositoryImpl) FindByJobSeeker(db *gorm.DB, seekerID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Preload("Job").
		Where("job_seeker_id = ?", seekerID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *JobApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *JobApplicationRepositoryImpl) ExistsForJobAndSeeker(db *gorm.DB, jobID, seekerID string) (bool, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Where("job_id = ? AND job_seeker_id = ?", jobID, seekerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *JobApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.JobApplication{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *JobApplicationRepositoryImpl) CountForJobs(db *gorm.DB, jobIDs []string, filter ApplicationFilter) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	query := db.Model(&models.JobApplication{}).Where("job_id IN ?", jobIDs)
	return countWithFilter(query, filter)
}

func (r *JobApplicationRepositoryImpl) CountForSeeker(db *gorm.DB, seekerID string, filter ApplicationFilter) (int64, error) {
	query := db.Model(&models.JobApplication{}).Where("job_seeker_id = ?", seekerID)
	return countWithFilter(query, filter)
}

func (r *JobApplicationRepositoryImpl) CountAll(db *gorm.DB, filter ApplicationFilter) (int64, error) {
	return countWithFilter(db.Model(&models.JobApplication{}), filter)
}

func countWithFilter(query *gorm.DB, filter ApplicationFilter) (int64, error) {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Since != nil {
		query = query.Where("applied_at >= ?", *filter.Since)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}
