package services

import (
	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/repositories"
	"recruitflow_backend/internal/services/dto"
	"recruitflow_backend/pkg/apperrors"
)

// The admin listing dropdown submits this literal when no status is picked.
const statusFilterAll = "All Statuses"

// HRService is the admin surface over recruiter accounts.
type HRService interface {
	ListHRs(db *gorm.DB, query *dto.HRListQuery) ([]models.HR, error)
	GetHR(db *gorm.DB, id string) (*models.HR, error)
	UpdateHR(db *gorm.DB, id string, req *dto.UpdateHRRequest) (*models.HR, error)
	DeleteHR(db *gorm.DB, id string) error
}

type HRServiceImpl struct {
	hrRepo  repositories.HRRepository
	jobRepo repositories.JobOpeningRepository
}

func NewHRService(hrRepo repositories.HRRepository, jobRepo repositories.JobOpeningRepository) HRService {
	return &HRServiceImpl{hrRepo: hrRepo, jobRepo: jobRepo}
}

func (s *HRServiceImpl) ListHRs(db *gorm.DB, query *dto.HRListQuery) ([]models.HR, error) {
	status := query.Status
	if status == statusFilterAll {
		status = ""
	}

	hrs, err := s.hrRepo.FindAll(db, models.HRStatus(status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return hrs, nil
}

func (s *HRServiceImpl) GetHR(db *gorm.DB, id string) (*models.HR, error) {
	hr, err := s.hrRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHRNotFound) {
			return nil, apperrors.NewNotFoundError("HR not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return hr, nil
}

// UpdateHR lets an admin edit account fields including Status, which is how
// Pending accounts get approved.
func (s *HRServiceImpl) UpdateHR(db *gorm.DB, id string, req *dto.UpdateHRRequest) (*models.HR, error) {
	hr, err := s.hrRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHRNotFound) {
			return nil, apperrors.NewNotFoundError("HR not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != "" {
		hr.Name = req.Name
	}
	if req.Email != "" {
		hr.Email = normalizeEmail(req.Email)
	}
	if req.Company != "" {
		hr.Company = req.Company
	}
	if req.Phone != "" {
		hr.Phone = req.Phone
	}
	if req.Status != "" {
		hr.Status = req.Status
	}

	if err := s.hrRepo.Update(db, hr); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return hr, nil
}

// DeleteHR removes a recruiter account and all openings it owns.
// Applications filed against those openings stay behind.
func (s *HRServiceImpl) DeleteHR(db *gorm.DB, id string) error {
	if _, err := s.hrRepo.FindByID(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrHRNotFound) {
			return apperrors.NewNotFoundError("HR not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.jobRepo.DeleteByHR(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.hrRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
