package email

import (
	"recruitflow_backend/internal/logger"
)

// LogProvider writes the would-be email to the log instead of sending it.
// Used whenever SMTP is not configured; the reset flow still works because
// the URL is observable in the log.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) SendPasswordReset(to, resetURL string) error {
	logger.Info("password reset email (not sent, SMTP disabled)", "to", to, "reset_url", resetURL)
	return nil
}

func (p *LogProvider) SendVerification(to, verifyURL string) error {
	logger.Info("verification email (not sent, SMTP disabled)", "to", to, "verify_url", verifyURL)
	return nil
}
