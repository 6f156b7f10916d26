package services

import (
	"time"

	"gorm.io/gorm"

	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/repositories"
)

// In-memory repository doubles. The db argument is ignored; state lives in
// the maps so each test builds exactly the world it needs.

type fakeHRRepo struct {
	byID    map[string]*models.HR
	byEmail map[string]*models.HR
}

func newFakeHRRepo() *fakeHRRepo {
	return &fakeHRRepo{
		byID:    map[string]*models.HR{},
		byEmail: map[string]*models.HR{},
	}
}

func (r *fakeHRRepo) add(hr *models.HR) {
	r.byID[hr.ID] = hr
	r.byEmail[hr.Email] = hr
}

func (r *fakeHRRepo) FindByID(_ *gorm.DB, id string) (*models.HR, error) {
	hr, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrHRNotFound
	}
	return hr, nil
}

func (r *fakeHRRepo) FindByEmail(_ *gorm.DB, email string) (*models.HR, error) {
	hr, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrHRNotFound
	}
	return hr, nil
}

func (r *fakeHRRepo) Create(_ *gorm.DB, hr *models.HR) error {
	if _, taken := r.byEmail[hr.Email]; taken {
		return repositories.ErrHREmailTaken
	}
	if hr.ID == "" {
		hr.ID = "hr-" + hr.Email
	}
	r.add(hr)
	return nil
}

func (r *fakeHRRepo) Update(_ *gorm.DB, hr *models.HR) error {
	r.add(hr)
	return nil
}

func (r *fakeHRRepo) UpdateLastLogin(_ *gorm.DB, id string) error {
	hr, ok := r.byID[id]
	if !ok {
		return repositories.ErrHRNotFound
	}
	now := time.Now()
	hr.LastLogin = &now
	return nil
}

func (r *fakeHRRepo) Delete(_ *gorm.DB, id string) error {
	hr, ok := r.byID[id]
	if !ok {
		return repositories.ErrHRNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, hr.Email)
	return nil
}

func (r *fakeHRRepo) FindAll(_ *gorm.DB, status models.HRStatus) ([]models.HR, error) {
	var out []models.HR
	for _, hr := range r.byID {
		if status == "" || hr.Status == status {
			out = append(out, *hr)
		}
	}
	return out, nil
}

func (r *fakeHRRepo) Count(_ *gorm.DB) (int64, error) {
	return int64(len(r.byID)), nil
}

type fakeSeekerRepo struct {
	byID    map[string]*models.JobSeeker
	byEmail map[string]*models.JobSeeker
}

func newFakeSeekerRepo() *fakeSeekerRepo {
	return &fakeSeekerRepo{
		byID:    map[string]*models.JobSeeker{},
		byEmail: map[string]*models.JobSeeker{},
	}
}

func (r *fakeSeekerRepo) add(seeker *models.JobSeeker) {
	r.byID[seeker.ID] = seeker
	r.byEmail[seeker.Email] = seeker
}

func (r *fakeSeekerRepo) FindByID(_ *gorm.DB, id string) (*models.JobSeeker, error) {
	seeker, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrJobSeekerNotFound
	}
	return seeker, nil
}

func (r *fakeSeekerRepo) FindByEmail(_ *gorm.DB, email string) (*models.JobSeeker, error) {
	seeker, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrJobSeekerNotFound
	}
	return seeker, nil
}

func (r *fakeSeekerRepo) Create(_ *gorm.DB, seeker *models.JobSeeker) error {
	if _, taken := r.byEmail[seeker.Email]; taken {
		return repositories.ErrJobSeekerEmailTaken
	}
	if seeker.ID == "" {
		seeker.ID = "seeker-" + seeker.Email
	}
	r.add(seeker)
	return nil
}

func (r *fakeSeekerRepo) Update(_ *gorm.DB, seeker *models.JobSeeker) error {
	r.add(seeker)
	return nil
}

func (r *fakeSeekerRepo) UpdateLastLogin(_ *gorm.DB, id string) error {
	seeker, ok := r.byID[id]
	if !ok {
		return repositories.ErrJobSeekerNotFound
	}
	now := time.Now()
	seeker.LastLogin = &now
	return nil
}

func (r *fakeSeekerRepo) UpdateStatus(_ *gorm.DB, id string, status models.JobSeekerStatus) error {
	seeker, ok := r.byID[id]
	if !ok {
		return repositories.ErrJobSeekerNotFound
	}
	seeker.Status = status
	return nil
}

func (r *fakeSeekerRepo) Count(_ *gorm.DB) (int64, error) {
	return int64(len(r.byID)), nil
}

type fakeJobRepo struct {
	byID map[string]*models.JobOpening
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: map[string]*models.JobOpening{}}
}

func (r *fakeJobRepo) Create(_ *gorm.DB, job *models.JobOpening) error {
	if job.ID == "" {
		job.ID = "job-" + job.Title
	}
	r.byID[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(_ *gorm.DB, id string) (*models.JobOpening, error) {
	job, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) FindByHR(_ *gorm.DB, hrID string) ([]models.JobOpening, error) {
	var out []models.JobOpening
	for _, job := range r.byID {
		if job.HRID == hrID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Search(_ *gorm.DB, criteria repositories.JobSearchCriteria) ([]models.JobOpening, error) {
	var out []models.JobOpening
	for _, job := range r.byID {
		if job.Status == models.JobStatusActive {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(_ *gorm.DB, job *models.JobOpening) error {
	r.byID[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeJobRepo) DeleteByHR(_ *gorm.DB, hrID string) error {
	for id, job := range r.byID {
		if job.HRID == hrID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *fakeJobRepo) FindIDsByHR(_ *gorm.DB, hrID string) ([]string, error) {
	var ids []string
	for id, job := range r.byID {
		if job.HRID == hrID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeJobRepo) CountByHR(_ *gorm.DB, hrID string, status models.JobStatus) (int64, error) {
	var count int64
	for _, job := range r.byID {
		if job.HRID == hrID && (status == "" || job.Status == status) {
			count++
		}
	}
	return count, nil
}

func (r *fakeJobRepo) CountByStatus(_ *gorm.DB, status models.JobStatus) (int64, error) {
	var count int64
	for _, job := range r.byID {
		if status == "" || job.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeApplicationRepo struct {
	byID map[string]*models.JobApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: map[string]*models.JobApplication{}}
}

func (r *fakeApplicationRepo) Create(_ *gorm.DB, application *models.JobApplication) error {
	if application.ID == "" {
		application.ID = "app-" + application.JobID + "-" + application.JobSeekerID
	}
	r.byID[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ *gorm.DB, id string) (*models.JobApplication, error) {
	application, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return application, nil
}

func (r *fakeApplicationRepo) FindByJobSeeker(_ *gorm.DB, seekerID string) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, application := range r.byID {
		if application.JobSeekerID == seekerID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByJob(_ *gorm.DB, jobID string) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, application := range r.byID {
		if application.JobID == jobID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ExistsForJobAndSeeker(_ *gorm.DB, jobID, seekerID string) (bool, error) {
	for _, application := range r.byID {
		if application.JobID == jobID && application.JobSeekerID == seekerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ *gorm.DB, id string, status models.ApplicationStatus) error {
	application, ok := r.byID[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Status = status
	return nil
}

func (r *fakeApplicationRepo) matches(application *models.JobApplication, filter repositories.ApplicationFilter) bool {
	if filter.Status != "" && application.Status != filter.Status {
		return false
	}
	if filter.Since != nil && application.AppliedAt.Before(*filter.Since) {
		return false
	}
	return true
}

func (r *fakeApplicationRepo) CountForJobs(_ *gorm.DB, jobIDs []string, filter repositories.ApplicationFilter) (int64, error) {
	ids := map[string]bool{}
	for _, id := range jobIDs {
		ids[id] = true
	}
	var count int64
	for _, application := range r.byID {
		if ids[application.JobID] && r.matches(application, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) CountForSeeker(_ *gorm.DB, seekerID string, filter repositories.ApplicationFilter) (int64, error) {
	var count int64
	for _, application := range r.byID {
		if application.JobSeekerID == seekerID && r.matches(application, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) CountAll(_ *gorm.DB, filter repositories.ApplicationFilter) (int64, error) {
	var count int64
	for _, application := range r.byID {
		if r.matches(application, filter) {
			count++
		}
	}
	return count, nil
}
