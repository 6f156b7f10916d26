package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the recruitment domain. Messages that
// the frontend matches on (login failures, account status) live here so the
// wording stays in one place.

// --- Factories (wrap repository errors) ---

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrDuplicateEmail is raised both by the fast-path lookup and by the
// database unique constraint losing a registration race.
func ErrDuplicateEmail(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "account", "User already exists with this email", http.StatusBadRequest)
}

// --- Predefined errors ---

// ErrInvalidCredentials is deliberately identical for unknown email and
// wrong password so responses carry no account-enumeration signal.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest,
)

var ErrInvalidAdminCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid admin credentials",
	http.StatusBadRequest,
)

var ErrAccountSuspended = New(
	CodeAccountBlocked,
	"account",
	"Account is suspended. Please contact support.",
	http.StatusForbidden,
)

var ErrHRAccountSuspended = New(
	CodeAccountBlocked,
	"account",
	"Account is suspended. Please contact administrator.",
	http.StatusForbidden,
)

var ErrHRAccountPending = New(
	CodeAccountBlocked,
	"account",
	"Account is pending approval. Please contact administrator.",
	http.StatusForbidden,
)

var ErrAccountOnHold = New(
	CodeAccountBlocked,
	"account",
	"Account is on hold. Please contact support.",
	http.StatusForbidden,
)

var ErrIncorrectPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Current password is incorrect",
	http.StatusBadRequest,
)

var ErrInvalidOrExpiredToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired reset token",
	http.StatusBadRequest,
)

var ErrInvalidVerificationToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired verification token",
	http.StatusBadRequest,
)

// ErrInvalidUserRole rejects operations for roles they are not defined for.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"account",
	"Invalid user role",
	http.StatusBadRequest,
)

// ErrNotOwner rejects an HR acting on a resource owned by another HR.
var ErrNotOwner = New(
	CodeForbidden,
	"auth",
	"Not authorized",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 6 characters",
	http.StatusBadRequest,
)
