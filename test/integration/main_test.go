package integration_test

import (
	"os"
	"sync"
	"testing"

	"recruitflow_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer lazily builds one shared server for the whole suite. Tests
// skip entirely when DATABASE_URL is not set, so the suite is a no-op
// without a Postgres instance.
func GetTestServer(t *testing.T) *helpers.TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		}
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}
