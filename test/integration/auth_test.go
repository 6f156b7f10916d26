package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerJobSeeker(t *testing.T, email string) string {
	t.Helper()
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/auth/jobseeker/register", "", map[string]interface{}{
		"fullName": "Test Seeker",
		"email":    email,
		"password": "password123",
		"location": "Berlin",
		"skills":   []string{"Go", "SQL"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var parsed struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.NotEmpty(t, parsed.Token)
	return parsed.Token
}

func registerHR(t *testing.T, email string) string {
	t.Helper()
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/hr/register", "", map[string]interface{}{
		"name":     "Test Recruiter",
		"email":    email,
		"company":  "Acme",
		"phone":    "+4912345678",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var parsed struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.NotEmpty(t, parsed.Token)
	return parsed.Token
}

func TestJobSeekerRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	registerJobSeeker(t, "seeker@test.com")

	// Duplicate registration is rejected with the pinned message.
	res, body := ts.SendRequest(t, "POST", "/api/auth/jobseeker/register", "", map[string]interface{}{
		"fullName": "Test Seeker",
		"email":    "seeker@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "User already exists with this email")

	// Correct credentials log in.
	res, body = ts.SendRequest(t, "POST", "/api/auth/jobseeker/login", "", map[string]interface{}{
		"email":    "seeker@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Login successful")

	// Wrong password and unknown email produce the identical message.
	res, wrongPass := ts.SendRequest(t, "POST", "/api/auth/jobseeker/login", "", map[string]interface{}{
		"email":    "seeker@test.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, wrongPass, "Invalid credentials")

	res, unknown := ts.SendRequest(t, "POST", "/api/auth/jobseeker/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, unknown, "Invalid credentials")
}

func TestMeAndChangePassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token := registerJobSeeker(t, "me@test.com")

	res, body := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "me@test.com")

	// No token, no profile.
	res, _ = ts.SendRequest(t, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Wrong current password is rejected.
	res, body = ts.SendRequest(t, "PUT", "/api/auth/change-password", token, map[string]interface{}{
		"currentPassword": "nope",
		"newPassword":     "newpassword123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Current password is incorrect")

	res, _ = ts.SendRequest(t, "PUT", "/api/auth/change-password", token, map[string]interface{}{
		"currentPassword": "password123",
		"newPassword":     "newpassword123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Old password no longer works, new one does.
	res, _ = ts.SendRequest(t, "POST", "/api/auth/jobseeker/login", "", map[string]interface{}{
		"email":    "me@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, "POST", "/api/auth/jobseeker/login", "", map[string]interface{}{
		"email":    "me@test.com",
		"password": "newpassword123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPasswordResetFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	registerJobSeeker(t, "reset@test.com")

	res, body := ts.SendRequest(t, "POST", "/api/auth/forgot-password", "", map[string]interface{}{
		"email": "reset@test.com",
		"role":  "jobseeker",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Unknown address is a 404.
	res, _ = ts.SendRequest(t, "POST", "/api/auth/forgot-password", "", map[string]interface{}{
		"email": "ghost@test.com",
		"role":  "jobseeker",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// A garbage token never resets anything.
	res, body = ts.SendRequest(t, "POST", "/api/auth/reset-password", "", map[string]interface{}{
		"token":       "not-a-token",
		"newPassword": "whatever123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid or expired reset token")
}

func TestAdminLogin(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/auth/admin/login", "", map[string]interface{}{
		"email":    "admin@recruitflow.com",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Admin login successful")

	res, _ = ts.SendRequest(t, "POST", "/api/auth/admin/login", "", map[string]interface{}{
		"email":    "admin@recruitflow.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
