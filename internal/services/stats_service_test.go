package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitflow_backend/internal/models"
)

func TestHRStatsCountsOnlyOwnJobs(t *testing.T) {
	hrRepo := newFakeHRRepo()
	seekerRepo := newFakeSeekerRepo()
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	svc := NewStatsService(hrRepo, seekerRepo, jobRepo, appRepo)

	mine := seedHR(t, hrRepo, "mine@test.com", "password123", models.HRStatusActive)
	other := seedHR(t, hrRepo, "other@test.com", "password123", models.HRStatusActive)

	myJob := seedJob(t, jobRepo, mine.ID, "Mine")
	closed := seedJob(t, jobRepo, mine.ID, "Mine Closed")
	closed.Status = models.JobStatusClosed
	otherJob := seedJob(t, jobRepo, other.ID, "Theirs")

	old := time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, appRepo.Create(nil, &models.JobApplication{
		JobID: myJob.ID, JobSeekerID: "s1", Status: models.ApplicationStatusUnderReview, AppliedAt: old,
	}))
	require.NoError(t, appRepo.Create(nil, &models.JobApplication{
		JobID: myJob.ID, JobSeekerID: "s2", Status: models.ApplicationStatusInterviewScheduled, AppliedAt: time.Now(),
	}))
	require.NoError(t, appRepo.Create(nil, &models.JobApplication{
		JobID: otherJob.ID, JobSeekerID: "s3", Status: models.ApplicationStatusPending, AppliedAt: time.Now(),
	}))

	stats, err := svc.HRStats(nil, mine.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.ActiveJobs)
	assert.EqualValues(t, 2, stats.TotalJobs)
	assert.EqualValues(t, 2, stats.TotalApplications)
	assert.EqualValues(t, 1, stats.RecentApplications)
	assert.EqualValues(t, 1, stats.PendingReview)
	assert.EqualValues(t, 1, stats.InterviewScheduled)
}

func TestJobSeekerStats(t *testing.T) {
	svcJobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	svc := NewStatsService(newFakeHRRepo(), newFakeSeekerRepo(), svcJobRepo, appRepo)

	require.NoError(t, appRepo.Create(nil, &models.JobApplication{
		JobID: "j1", JobSeekerID: "me", Status: models.ApplicationStatusPending, AppliedAt: time.Now(),
	}))
	require.NoError(t, appRepo.Create(nil, &models.JobApplication{
		JobID: "j2", JobSeekerID: "me", Status: models.ApplicationStatusAccepted, AppliedAt: time.Now().Add(-60 * 24 * time.Hour),
	}))
	require.NoError(t, appRepo.Create(nil, &models.JobApplication{
		JobID: "j3", JobSeekerID: "someone-else", Status: models.ApplicationStatusPending, AppliedAt: time.Now(),
	}))

	stats, err := svc.JobSeekerStats(nil, "me")
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalApplications)
	assert.EqualValues(t, 1, stats.RecentApplications)
	assert.EqualValues(t, 1, stats.PendingApplications)
	assert.EqualValues(t, 1, stats.AcceptedApplications)
	assert.EqualValues(t, 0, stats.InterviewScheduled)
}

func TestAdminStatsTotals(t *testing.T) {
	hrRepo := newFakeHRRepo()
	seekerRepo := newFakeSeekerRepo()
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	svc := NewStatsService(hrRepo, seekerRepo, jobRepo, appRepo)

	hr := seedHR(t, hrRepo, "a@test.com", "password123", models.HRStatusActive)
	seedSeeker(t, seekerRepo, "b@test.com", "password123", models.JobSeekerStatusActive)
	seedSeeker(t, seekerRepo, "c@test.com", "password123", models.JobSeekerStatusActive)
	seedJob(t, jobRepo, hr.ID, "Open")

	stats, err := svc.AdminStats(nil)
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.HRCount)
	assert.EqualValues(t, 2, stats.JobSeekerCount)
	assert.EqualValues(t, 3, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.ActiveJobs)
}
