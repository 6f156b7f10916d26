package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
)

var ErrJobNotFound = errors.New("job opening not found")

// UI placeholder sentinels. The frontend submits the dropdown label itself
// when nothing is selected; those values mean "no filter".
const (
	placeholderLocation        = "Location"
	placeholderSkills          = "Skills"
	placeholderExperienceLevel = "Experience Level"
)

// JobSearchCriteria are the optional public-listing filters. All present
// filters AND together; Search alone expands to an OR-group over title,
// company name and description.
type JobSearchCriteria struct {
	Search          string
	Location        string
	Skills          string
	ExperienceLevel string
	Company         string
}

// Normalize blanks placeholder sentinel values so they behave exactly like
// an omitted filter. Pure function, applied before any query building.
func (c JobSearchCriteria) Normalize() JobSearchCriteria {
	if c.Location == placeholderLocation {
		c.Location = ""
	}
	if c.Skills == placeholderSkills {
		c.Skills = ""
	}
	if c.ExperienceLevel == placeholderExperienceLevel {
		c.ExperienceLevel = ""
	}
	return c
}

type JobOpeningRepository interface {
	Create(db *gorm.DB, job *models.JobOpening) error
	FindByID(db *gorm.DB, id string) (*models.JobOpening, error)
	FindByHR(db *gorm.DB, hrID string) ([]models.JobOpening, error)
	Search(db *gorm.DB, criteria JobSearchCriteria) ([]models.JobOpening, error)
	Update(db *gorm.DB, job *models.JobOpening) error
	Delete(db *gorm.DB, id string) error
	DeleteByHR(db *gorm.DB, hrID string) error
	FindIDsByHR(db *gorm.DB, hrID string) ([]string, error)
	CountByHR(db *gorm.DB, hrID string, status models.JobStatus) (int64, error)
	CountByStatus(db *gorm.DB, status models.JobStatus) (int64, error)
}

type JobOpeningRepositoryImpl struct{}

func NewJobOpeningRepository() JobOpeningRepository {
	return &JobOpeningRepositoryImpl{}
}

func (r *JobOpeningRepositoryImpl) Create(db *gorm.DB, job *models.JobOpening) error {
	return db.Create(job).Error
}

func (r *JobOpeningRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobOpening, error) {
	var job models.JobOpening
	err := db.Preload("HR").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobOpeningRepositoryImpl) FindByHR(db *gorm.DB, hrID string) ([]models.JobOpening, error) {
	var jobs []models.JobOpening
	err := db.Where("hr_id = ?", hrID).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Search translates the filter set into one query, always constrained to
// Active openings and ordered newest first.
func (r *JobOpeningRepositoryImpl) Search(db *gorm.DB, criteria JobSearchCriteria) ([]models.JobOpening, error) {
	criteria = criteria.Normalize()

	query := db.Model(&models.JobOpening{}).Where("status = ?", models.JobStatusActive)

	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where(
			"title ILIKE ? OR company_name ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}

	if criteria.Skills != "" {
		// Substring match against any element of the jsonb skills list.
		query = query.Where(
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text(skills) AS skill WHERE skill ILIKE ?)",
			"%"+criteria.Skills+"%",
		)
	}

	if criteria.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", criteria.ExperienceLevel)
	}

	if criteria.Company != "" {
		query = query.Where("company_name ILIKE ?", "%"+criteria.Company+"%")
	}

	var jobs []models.JobOpening
	err := query.Preload("HR").Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobOpeningRepositoryImpl) Update(db *gorm.DB, job *models.JobOpening) error {
	return db.Save(job).Error
}

func (r *JobOpeningRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.JobOpening{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// DeleteByHR removes all openings owned by an HR. Applications referencing
// them are left in place.
func (r *JobOpeningRepositoryImpl) DeleteByHR(db *gorm.DB, hrID string) error {
	return db.Delete(&models.JobOpening{}, "hr_id = ?", hrID).Error
}

func (r *JobOpeningRepositoryImpl) FindIDsByHR(db *gorm.DB, hrID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.JobOpening{}).Where("hr_id = ?", hrID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *JobOpeningRepositoryImpl) CountByHR(db *gorm.DB, hrID string, status models.JobStatus) (int64, error) {
	var count int64
	query := db.Model(&models.JobOpening{}).Where("hr_id = ?", hrID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *JobOpeningRepositoryImpl) CountByStatus(db *gorm.DB, status models.JobStatus) (int64, error) {
	var count int64
	query := db.Model(&models.JobOpening{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}
