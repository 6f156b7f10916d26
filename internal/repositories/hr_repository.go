package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
)

var (
	ErrHRNotFound   = errors.New("hr not found")
	ErrHREmailTaken = errors.New("hr email already registered")
)

type HRRepository interface {
	FindByID(db *gorm.DB, id string) (*models.HR, error)
	FindByEmail(db *gorm.DB, email string) (*models.HR, error)
	Create(db *gorm.DB, hr *models.HR) error
	Update(db *gorm.DB, hr *models.HR) error
	UpdateLastLogin(db *gorm.DB, id string) error
	Delete(db *gorm.DB, id string) error
	FindAll(db *gorm.DB, status models.HRStatus) ([]models.HR, error)
	Count(db *gorm.DB) (int64, error)
}

type HRRepositoryImpl struct{}

func NewHRRepository() HRRepository {
	return &HRRepositoryImpl{}
}

func (r *HRRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.HR, error) {
	var hr models.HR
	err := db.First(&hr, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHRNotFound
		}
		return nil, err
	}
	return &hr, nil
}

func (r *HRRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.HR, error) {
	var hr models.HR
	err := db.First(&hr, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHRNotFound
		}
		return nil, err
	}
	return &hr, nil
}

// Create relies on the unique index to reject a concurrent registration with
// the same email; the service-level lookup is only a fast path.
func (r *HRRepositoryImpl) Create(db *gorm.DB, hr *models.HR) error {
	if err := db.Create(hr).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrHREmailTaken
		}
		return err
	}
	return nil
}

func (r *HRRepositoryImpl) Update(db *gorm.DB, hr *models.HR) error {
	return db.Save(hr).Error
}

func (r *HRRepositoryImpl) UpdateLastLogin(db *gorm.DB, id string) error {
	now := time.Now()
	return db.Model(&models.HR{}).Where("id = ?", id).Update("last_login", &now).Error
}

func (r *HRRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.HR{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHRNotFound
	}
	return nil
}

func (r *HRRepositoryImpl) FindAll(db *gorm.DB, status models.HRStatus) ([]models.HR, error) {
	var hrs []models.HR
	query := db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&hrs).Error; err != nil {
		return nil, err
	}
	return hrs, nil
}

func (r *HRRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.HR{}).Count(&count).Error
	return count, err
}
