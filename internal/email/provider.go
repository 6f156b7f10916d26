package email

// Provider delivers account emails. The core only builds tokens and URLs;
// delivery is an external collaborator behind this interface.
type Provider interface {
	// SendPasswordReset delivers the reset link to the account holder.
	SendPasswordReset(to, resetURL string) error

	// SendVerification delivers the email-verification link.
	SendVerification(to, verifyURL string) error
}
