package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
)

var (
	ErrJobSeekerNotFound   = errors.New("job seeker not found")
	ErrJobSeekerEmailTaken = errors.New("job seeker email already registered")
)

type JobSeekerRepository interface {
	FindByID(db *gorm.DB, id string) (*models.JobSeeker, error)
	FindByEmail(db *gorm.DB, email string) (*models.JobSeeker, error)
	Create(db *gorm.DB, seeker *models.JobSeeker) error
	Update(db *gorm.DB, seeker *models.JobSeeker) error
	UpdateLastLogin(db *gorm.DB, id string) error
	UpdateStatus(db *gorm.DB, id string, status models.JobSeekerStatus) error
	Count(db *gorm.DB) (int64, error)
}

type JobSeekerRepositoryImpl struct{}

func NewJobSeekerRepository() JobSeekerRepository {
	return &JobSeekerRepositoryImpl{}
}

func (r *JobSeekerRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobSeeker, error) {
	var seeker models.JobSeeker
	err := db.First(&seeker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobSeekerNotFound
		}
		return nil, err
	}
	return &seeker, nil
}

func (r *JobSeekerRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.JobSeeker, error) {
	var seeker models.JobSeeker
	err := db.First(&seeker, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobSeekerNotFound
		}
		return nil, err
	}
	return &seeker, nil
}

// Create surfaces a lost registration race as ErrJobSeekerEmailTaken via the
// unique index on email.
func (r *JobSeekerRepositoryImpl) Create(db *gorm.DB, seeker *models.JobSeeker) error {
	if err := db.Create(seeker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrJobSeekerEmailTaken
		}
		return err
	}
	return nil
}

func (r *JobSeekerRepositoryImpl) Update(db *gorm.DB, seeker *models.JobSeeker) error {
	return db.Save(seeker).Error
}

func (r *JobSeekerRepositoryImpl) UpdateLastLogin(db *gorm.DB, id string) error {
	now := time.Now()
	return db.Model(&models.JobSeeker{}).Where("id = ?", id).Update("last_login", &now).Error
}

func (r *JobSeekerRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.JobSeekerStatus) error {
	result := db.Model(&models.JobSeeker{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobSeekerNotFound
	}
	return nil
}

func (r *JobSeekerRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.JobSeeker{}).Count(&count).Error
	return count, err
}
