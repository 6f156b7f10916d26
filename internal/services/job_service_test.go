package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/services/dto"
	"recruitflow_backend/pkg/apperrors"
)

func seedJob(t *testing.T, repo *fakeJobRepo, hrID, title string) *models.JobOpening {
	t.Helper()
	job := &models.JobOpening{
		HRID:            hrID,
		Title:           title,
		ExperienceLevel: models.ExperienceLevelMid,
		Salary:          70000,
		Description:     "desc",
		Skills:          []string{"Go"},
		Location:        "Berlin",
		CompanyName:     "Acme",
		Status:          models.JobStatusActive,
	}
	require.NoError(t, repo.Create(nil, job))
	return job
}

func TestCreateJobRequiresExistingHR(t *testing.T) {
	hrRepo := newFakeHRRepo()
	svc := NewJobService(newFakeJobRepo(), hrRepo)

	_, err := svc.CreateJob(nil, "ghost-hr", &dto.CreateJobRequest{
		Title:           "Backend Engineer",
		ExperienceLevel: "Mid Level",
		Salary:          70000,
		Description:     "desc",
		Skills:          []string{"Go"},
		Location:        "Berlin",
		CompanyName:     "Acme",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateJobOwnershipEnforced(t *testing.T) {
	hrRepo := newFakeHRRepo()
	jobRepo := newFakeJobRepo()
	svc := NewJobService(jobRepo, hrRepo)

	owner := seedHR(t, hrRepo, "owner@test.com", "password123", models.HRStatusActive)
	job := seedJob(t, jobRepo, owner.ID, "Backend Engineer")

	_, err := svc.UpdateJob(nil, "someone-else", job.ID, &dto.UpdateJobRequest{Title: "Hijack"})
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	updated, err := svc.UpdateJob(nil, owner.ID, job.ID, &dto.UpdateJobRequest{Title: "Senior Backend Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	// Untouched fields keep their values.
	assert.Equal(t, "Berlin", updated.Location)
}

func TestDeleteJobOwnershipEnforced(t *testing.T) {
	hrRepo := newFakeHRRepo()
	jobRepo := newFakeJobRepo()
	svc := NewJobService(jobRepo, hrRepo)

	owner := seedHR(t, hrRepo, "owner@test.com", "password123", models.HRStatusActive)
	job := seedJob(t, jobRepo, owner.ID, "Backend Engineer")

	assert.ErrorIs(t, svc.DeleteJob(nil, "someone-else", job.ID), apperrors.ErrNotOwner)
	require.NoError(t, svc.DeleteJob(nil, owner.ID, job.ID))

	_, err := svc.GetJob(nil, job.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
