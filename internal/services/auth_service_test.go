package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitflow_backend/internal/auth"
	"recruitflow_backend/internal/config"
	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/services/dto"
	"recruitflow_backend/pkg/apperrors"
)

func newTestAuthService(hrRepo *fakeHRRepo, seekerRepo *fakeSeekerRepo) AuthService {
	cfg := &config.Config{}
	cfg.Admin.Email = "admin@recruitflow.com"
	cfg.Admin.Password = "admin123"
	cfg.Frontend.BaseURL = "http://localhost:3000"

	tokens := auth.NewTokenService("service-test-secret", 7*24*time.Hour)
	return NewAuthService(hrRepo, seekerRepo, tokens, nil, cfg)
}

func seedSeeker(t *testing.T, repo *fakeSeekerRepo, email, password string, status models.JobSeekerStatus) *models.JobSeeker {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	seeker := &models.JobSeeker{
		FullName:     "Seeded Seeker",
		Email:        email,
		PasswordHash: hash,
		Status:       status,
	}
	require.NoError(t, repo.Create(nil, seeker))
	return seeker
}

func seedHR(t *testing.T, repo *fakeHRRepo, email, password string, status models.HRStatus) *models.HR {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	hr := &models.HR{
		Name:         "Seeded HR",
		Email:        email,
		PasswordHash: hash,
		Company:      "Acme",
		Status:       status,
	}
	require.NoError(t, repo.Create(nil, hr))
	return hr
}

func TestRegisterJobSeekerDuplicateEmail(t *testing.T) {
	seekerRepo := newFakeSeekerRepo()
	svc := newTestAuthService(newFakeHRRepo(), seekerRepo)

	req := &dto.RegisterJobSeekerRequest{
		FullName: "First",
		Email:    "dup@test.com",
		Password: "password123",
	}
	_, err := svc.RegisterJobSeeker(nil, req)
	require.NoError(t, err)

	_, err = svc.RegisterJobSeeker(nil, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "User already exists with this email", appErr.Message)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	seekerRepo := newFakeSeekerRepo()
	svc := newTestAuthService(newFakeHRRepo(), seekerRepo)

	resp, err := svc.RegisterJobSeeker(nil, &dto.RegisterJobSeekerRequest{
		FullName: "Mixed Case",
		Email:    "  Mixed@Test.COM ",
		Password: "password123",
	})
	require.NoError(t, err)

	seeker := resp.User.(*models.JobSeeker)
	assert.Equal(t, "mixed@test.com", seeker.Email)
}

func TestLoginJobSeekerIdenticalFailureMessage(t *testing.T) {
	seekerRepo := newFakeSeekerRepo()
	svc := newTestAuthService(newFakeHRRepo(), seekerRepo)
	seedSeeker(t, seekerRepo, "known@test.com", "password123", models.JobSeekerStatusActive)

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.LoginJobSeeker(nil, &dto.LoginRequest{Email: "ghost@test.com", Password: "password123"})
	_, errWrongPass := svc.LoginJobSeeker(nil, &dto.LoginRequest{Email: "known@test.com", Password: "wrong"})

	appErr1, ok := apperrors.AsAppError(errUnknown)
	require.True(t, ok)
	appErr2, ok := apperrors.AsAppError(errWrongPass)
	require.True(t, ok)

	assert.Equal(t, appErr1.Message, appErr2.Message)
	assert.Equal(t, appErr1.HTTPCode, appErr2.HTTPCode)
}

func TestLoginJobSeekerStatusGates(t *testing.T) {
	seekerRepo := newFakeSeekerRepo()
	svc := newTestAuthService(newFakeHRRepo(), seekerRepo)

	seedSeeker(t, seekerRepo, "suspended@test.com", "password123", models.JobSeekerStatusSuspended)
	seedSeeker(t, seekerRepo, "onhold@test.com", "password123", models.JobSeekerStatusOnHold)
	seedSeeker(t, seekerRepo, "verified@test.com", "password123", models.JobSeekerStatusVerified)

	_, err := svc.LoginJobSeeker(nil, &dto.LoginRequest{Email: "suspended@test.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountSuspended)

	_, err = svc.LoginJobSeeker(nil, &dto.LoginRequest{Email: "onhold@test.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountOnHold)

	resp, err := svc.LoginJobSeeker(nil, &dto.LoginRequest{Email: "verified@test.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginJobSeekerWrongPasswordBeatsStatus(t *testing.T) {
	seekerRepo := newFakeSeekerRepo()
	svc := newTestAuthService(newFakeHRRepo(), seekerRepo)
	seedSeeker(t, seekerRepo, "blocked@test.com", "password123", models.JobSeekerStatusSuspended)

	// Wrong password on a suspended account reports invalid credentials,
	// never the account status.
	_, err := svc.LoginJobSeeker(nil, &dto.LoginRequest{Email: "blocked@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginHRStatusGates(t *testing.T) {
	hrRepo := newFakeHRRepo()
	svc := newTestAuthService(hrRepo, newFakeSeekerRepo())

	seedHR(t, hrRepo, "pending@test.com", "password123", models.HRStatusPending)
	seedHR(t, hrRepo, "suspended@test.com", "password123", models.HRStatusSuspended)

	_, err := svc.LoginHR(nil, &dto.LoginRequest{Email: "pending@test.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrHRAccountPending)

	_, err = svc.LoginHR(nil, &dto.LoginRequest{Email: "suspended@test.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrHRAccountSuspended)
}

func TestLoginAdmin(t *testing.T) {
	svc := newTestAuthService(newFakeHRRepo(), newFakeSeekerRepo())

	resp, err := svc.LoginAdmin(&dto.LoginRequest{Email: "admin@recruitflow.com", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.LoginAdmin(&dto.LoginRequest{Email: "admin@recruitflow.com", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAdminCredentials)

	_, err = svc.LoginAdmin(&dto.LoginRequest{Email: "other@recruitflow.com", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAdminCredentials)
}

func TestChangePassword(t *testing.T) {
	seekerRepo := newFakeSeekerRepo()
	svc := newTestAuthService(newFakeHRRepo(), seekerRepo)
	seeker := seedSeeker(t, seekerRepo, "change@test.com", "oldpassword", models.JobSeekerStatusActive)

	err := svc.ChangePassword(nil, seeker.ID, models.RoleJobSeeker, "wrong", "newpassword")
	assert.ErrorIs(t, err, apperrors.ErrIncorrectPassword)

	err = svc.ChangePassword(nil, seeker.ID, models.RoleJobSeeker, "oldpassword", "short")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	require.NoError(t, svc.ChangePassword(nil, seeker.ID, models.RoleJobSeeker, "oldpassword", "newpassword"))
	assert.True(t, auth.CheckPasswordHash("newpassword", seeker.PasswordHash))
}

func TestForgotAndResetPassword(t *testing.T) {
	seekerRepo := newFakeSeekerRepo()
	svc := newTestAuthService(newFakeHRRepo(), seekerRepo)
	seeker := seedSeeker(t, seekerRepo, "forgot@test.com", "oldpassword", models.JobSeekerStatusActive)

	resetToken, err := svc.ForgotPassword(nil, &dto.ForgotPasswordRequest{
		Email: "forgot@test.com",
		Role:  models.RoleJobSeeker,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resetToken)

	// A session token is not accepted as a reset token.
	err = svc.ResetPassword(nil, "garbage-token", "newpassword")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredToken)

	require.NoError(t, svc.ResetPassword(nil, resetToken, "newpassword"))
	assert.True(t, auth.CheckPasswordHash("newpassword", seeker.PasswordHash))

	_, err = svc.ForgotPassword(nil, &dto.ForgotPasswordRequest{
		Email: "unknown@test.com",
		Role:  models.RoleJobSeeker,
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestVerifyEmail(t *testing.T) {
	seekerRepo := newFakeSeekerRepo()
	hrRepo := newFakeHRRepo()
	svc := newTestAuthService(hrRepo, seekerRepo)
	seeker := seedSeeker(t, seekerRepo, "verify@test.com", "password123", models.JobSeekerStatusActive)

	tokens := auth.NewTokenService("service-test-secret", 7*24*time.Hour)
	verifyToken, err := tokens.GenerateVerification(seeker.ID, models.RoleJobSeeker, seeker.Email)
	require.NoError(t, err)

	require.NoError(t, svc.VerifyEmail(nil, verifyToken))
	assert.Equal(t, models.JobSeekerStatusVerified, seeker.Status)

	// HR tokens have no verified transition.
	hr := seedHR(t, hrRepo, "hrverify@test.com", "password123", models.HRStatusActive)
	hrToken, err := tokens.GenerateVerification(hr.ID, models.RoleHR, hr.Email)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.VerifyEmail(nil, hrToken), apperrors.ErrInvalidUserRole)

	assert.ErrorIs(t, svc.VerifyEmail(nil, "garbage"), apperrors.ErrInvalidVerificationToken)
}
