package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"recruitflow_backend/internal/auth"
	"recruitflow_backend/internal/config"
	"recruitflow_backend/internal/email"
	"recruitflow_backend/internal/logger"
	"recruitflow_backend/internal/models"
	"recruitflow_backend/internal/repositories"
	"recruitflow_backend/internal/services/dto"
	"recruitflow_backend/pkg/apperrors"
)

// Admin is a synthetic identity: no account row exists, login compares
// against configured literals and the id below goes into the token.
const (
	adminID   = "admin-id"
	adminName = "Admin User"
)

type AuthService interface {
	RegisterJobSeeker(db *gorm.DB, req *dto.RegisterJobSeekerRequest) (*dto.AuthResponse, error)
	RegisterHR(db *gorm.DB, req *dto.RegisterHRRequest) (*dto.AuthResponse, error)
	LoginJobSeeker(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	LoginHR(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	LoginAdmin(req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(db *gorm.DB, userID string, role models.Role, tokenEmail string) (interface{}, error)
	UpdateProfile(db *gorm.DB, userID string, role models.Role, req *dto.UpdateProfileRequest) (interface{}, error)
	ChangePassword(db *gorm.DB, userID string, role models.Role, currentPassword, newPassword string) error
	ForgotPassword(db *gorm.DB, req *dto.ForgotPasswordRequest) (string, error)
	ResetPassword(db *gorm.DB, token, newPassword string) error
	VerifyEmail(db *gorm.DB, token string) error
}

type AuthServiceImpl struct {
	hrRepo        repositories.HRRepository
	seekerRepo    repositories.JobSeekerRepository
	tokens        *auth.TokenService
	emailProvider email.Provider
	adminEmail    string
	adminPassword string
	frontendURL   string
}

func NewAuthService(
	hrRepo repositories.HRRepository,
	seekerRepo repositories.JobSeekerRepository,
	tokens *auth.TokenService,
	emailProvider email.Provider,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		hrRepo:        hrRepo,
		seekerRepo:    seekerRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
		adminEmail:    cfg.Admin.Email,
		adminPassword: cfg.Admin.Password,
		frontendURL:   cfg.Frontend.BaseURL,
	}
}

// normalizeEmail lowercases before any comparison or storage so uniqueness
// is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterJobSeeker creates a job seeker account and logs it straight in.
func (s *AuthServiceImpl) RegisterJobSeeker(db *gorm.DB, req *dto.RegisterJobSeekerRequest) (*dto.AuthResponse, error) {
	emailAddr := normalizeEmail(req.Email)

	// Fast path only; the unique index decides registration races.
	if _, err := s.seekerRepo.FindByEmail(db, emailAddr); err == nil {
		return nil, apperrors.ErrDuplicateEmail(repositories.ErrJobSeekerEmailTaken)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	seeker := &models.JobSeeker{
		FullName:     req.FullName,
		Email:        emailAddr,
		PasswordHash: hash,
		Phone:        req.Phone,
		Location:     req.Location,
		Skills:       skills,
		Status:       models.JobSeekerStatusActive,
	}

	if err := s.seekerRepo.Create(db, seeker); err != nil {
		if apperrors.Is(err, repositories.ErrJobSeekerEmailTaken) {
			return nil, apperrors.ErrDuplicateEmail(err)
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(auth.Claims{
		UserID: seeker.ID,
		Role:   models.RoleJobSeeker,
		Email:  seeker.Email,
		Name:   seeker.FullName,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendVerificationEmail(seeker.ID, seeker.Email)

	return &dto.AuthResponse{
		Success: true,
		Message: "Registration successful",
		Token:   token,
		User:    seeker,
	}, nil
}

// sendVerificationEmail mails a verify link after registration. Failure is
// logged only; the account works unverified.
func (s *AuthServiceImpl) sendVerificationEmail(userID, emailAddr string) {
	if s.emailProvider == nil {
		return
	}

	verifyToken, err := s.tokens.GenerateVerification(userID, models.RoleJobSeeker, emailAddr)
	if err != nil {
		logger.Error("failed to generate verification token", "job_seeker_id", userID, "error", err)
		return
	}
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, verifyToken)

	go func() {
		if err := s.emailProvider.SendVerification(emailAddr, verifyURL); err != nil {
			logger.Error("failed to send verification email", "to", emailAddr, "error", err)
		}
	}()
}

// RegisterHR creates a recruiter account and logs it straight in.
func (s *AuthServiceImpl) RegisterHR(db *gorm.DB, req *dto.RegisterHRRequest) (*dto.AuthResponse, error) {
	emailAddr := normalizeEmail(req.Email)

	if _, err := s.hrRepo.FindByEmail(db, emailAddr); err == nil {
		return nil, apperrors.ErrDuplicateEmail(repositories.ErrHREmailTaken)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	status := req.Status
	if status == "" {
		status = models.HRStatusActive
	}

	hr := &models.HR{
		Name:         req.Name,
		Email:        emailAddr,
		PasswordHash: hash,
		Company:      req.Company,
		Phone:        req.Phone,
		Status:       status,
	}

	if err := s.hrRepo.Create(db, hr); err != nil {
		if apperrors.Is(err, repositories.ErrHREmailTaken) {
			return nil, apperrors.ErrDuplicateEmail(err)
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(auth.Claims{
		UserID:  hr.ID,
		Role:    models.RoleHR,
		Email:   hr.Email,
		Name:    hr.Name,
		Company: hr.Company,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Success: true,
		Message: "HR registered successfully",
		Token:   token,
		User:    hr,
	}, nil
}

// LoginJobSeeker authenticates a job seeker. The password is verified before
// the status check so a blocked-account response never reveals whether the
// password was right.
func (s *AuthServiceImpl) LoginJobSeeker(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	seeker, err := s.seekerRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, seeker.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch seeker.Status {
	case models.JobSeekerStatusSuspended:
		return nil, apperrors.ErrAccountSuspended
	case models.JobSeekerStatusOnHold:
		return nil, apperrors.ErrAccountOnHold
	}

	if err := s.seekerRepo.UpdateLastLogin(db, seeker.ID); err != nil {
		logger.Warn("failed to update last login", "job_seeker_id", seeker.ID, "error", err)
	}

	token, err := s.tokens.Generate(auth.Claims{
		UserID: seeker.ID,
		Role:   models.RoleJobSeeker,
		Email:  seeker.Email,
		Name:   seeker.FullName,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    seeker,
	}, nil
}

// LoginHR authenticates a recruiter, password first for the same reason as
// LoginJobSeeker.
func (s *AuthServiceImpl) LoginHR(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	hr, err := s.hrRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrHRNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, hr.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch hr.Status {
	case models.HRStatusSuspended:
		return nil, apperrors.ErrHRAccountSuspended
	case models.HRStatusPending:
		return nil, apperrors.ErrHRAccountPending
	}

	if err := s.hrRepo.UpdateLastLogin(db, hr.ID); err != nil {
		logger.Warn("failed to update last login", "hr_id", hr.ID, "error", err)
	}

	token, err := s.tokens.Generate(auth.Claims{
		UserID:  hr.ID,
		Role:    models.RoleHR,
		Email:   hr.Email,
		Name:    hr.Name,
		Company: hr.Company,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    hr,
	}, nil
}

// LoginAdmin checks the configured literal credentials. Comparison is
// constant-time over fixed-length digests so a mismatch reveals nothing
// through timing.
func (s *AuthServiceImpl) LoginAdmin(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	emailMatch := constantTimeEquals(req.Email, s.adminEmail)
	passwordMatch := constantTimeEquals(req.Password, s.adminPassword)
	if !emailMatch || !passwordMatch {
		return nil, apperrors.ErrInvalidAdminCredentials
	}

	token, err := s.tokens.Generate(auth.Claims{
		UserID: adminID,
		Role:   models.RoleAdmin,
		Email:  s.adminEmail,
		Name:   adminName,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Success: true,
		Message: "Admin login successful",
		Token:   token,
		User: map[string]interface{}{
			"id":    adminID,
			"name":  adminName,
			"email": s.adminEmail,
			"role":  models.RoleAdmin,
		},
	}, nil
}

func constantTimeEquals(a, b string) bool {
	// Hashing first removes the length side-channel.
	da := sha256.Sum256([]byte(a))
	db := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(da[:], db[:]) == 1
}

// GetCurrentUser resolves the authenticated identity to its public profile.
func (s *AuthServiceImpl) GetCurrentUser(db *gorm.DB, userID string, role models.Role, tokenEmail string) (interface{}, error) {
	switch role {
	case models.RoleJobSeeker:
		seeker, err := s.seekerRepo.FindByID(db, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobSeekerNotFound) {
				return nil, apperrors.NewNotFoundError("Job seeker not found")
			}
			return nil, apperrors.InternalError(err)
		}
		return seeker, nil

	case models.RoleHR:
		hr, err := s.hrRepo.FindByID(db, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrHRNotFound) {
				return nil, apperrors.NewNotFoundError("HR not found")
			}
			return nil, apperrors.InternalError(err)
		}
		return hr, nil

	case models.RoleAdmin:
		return map[string]interface{}{
			"id":    adminID,
			"role":  models.RoleAdmin,
			"email": tokenEmail,
			"name":  adminName,
		}, nil

	default:
		return nil, apperrors.ErrInvalidUserRole
	}
}

// UpdateProfile applies the editable fields for the caller's account kind.
func (s *AuthServiceImpl) UpdateProfile(db *gorm.DB, userID string, role models.Role, req *dto.UpdateProfileRequest) (interface{}, error) {
	switch role {
	case models.RoleJobSeeker:
		return s.updateJobSeekerProfile(db, userID, req)
	case models.RoleHR:
		return s.updateHRProfile(db, userID, req)
	default:
		return nil, apperrors.ErrInvalidUserRole
	}
}

func (s *AuthServiceImpl) updateJobSeekerProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (interface{}, error) {
	seeker, err := s.seekerRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != "" {
		seeker.FullName = req.FullName
	}
	if req.Email != "" {
		seeker.Email = normalizeEmail(req.Email)
	}
	if req.Phone != "" {
		seeker.Phone = req.Phone
	}
	if req.Location != "" {
		seeker.Location = req.Location
	}
	if req.LinkedIn != "" {
		seeker.LinkedIn = req.LinkedIn
	}
	if req.Skills != nil {
		seeker.Skills = req.Skills
	}
	if req.Experience != nil {
		seeker.Experience = req.Experience
	}
	if req.Education != nil {
		seeker.Education = req.Education
	}
	if req.ResumeURL != "" {
		seeker.ResumeURL = req.ResumeURL
	}

	if err := s.seekerRepo.Update(db, seeker); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return seeker, nil
}

func (s *AuthServiceImpl) updateHRProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (interface{}, error) {
	hr, err := s.hrRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHRNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
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

	if err := s.hrRepo.Update(db, hr); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return hr, nil
}

// ChangePassword verifies the current password and stores a new hash.
// The session token stays valid; there is no re-issuance.
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID string, role models.Role, currentPassword, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	switch role {
	case models.RoleJobSeeker:
		seeker, err := s.seekerRepo.FindByID(db, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobSeekerNotFound) {
				return apperrors.NewNotFoundError("User not found")
			}
			return apperrors.InternalError(err)
		}
		if !auth.CheckPasswordHash(currentPassword, seeker.PasswordHash) {
			return apperrors.ErrIncorrectPassword
		}
		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return apperrors.InternalError(err)
		}
		seeker.PasswordHash = hash
		if err := s.seekerRepo.Update(db, seeker); err != nil {
			return apperrors.InternalError(err)
		}
		return nil

	case models.RoleHR:
		hr, err := s.hrRepo.FindByID(db, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrHRNotFound) {
				return apperrors.NewNotFoundError("User not found")
			}
			return apperrors.InternalError(err)
		}
		if !auth.CheckPasswordHash(currentPassword, hr.PasswordHash) {
			return apperrors.ErrIncorrectPassword
		}
		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return apperrors.InternalError(err)
		}
		hr.PasswordHash = hash
		if err := s.hrRepo.Update(db, hr); err != nil {
			return apperrors.InternalError(err)
		}
		return nil

	default:
		return apperrors.ErrInvalidUserRole
	}
}

// ForgotPassword issues a purpose-tagged reset token and hands the reset URL
// to the email provider. Returns the token so development mode can expose it.
func (s *AuthServiceImpl) ForgotPassword(db *gorm.DB, req *dto.ForgotPasswordRequest) (string, error) {
	emailAddr := normalizeEmail(req.Email)

	var userID string
	switch req.Role {
	case models.RoleJobSeeker:
		seeker, err := s.seekerRepo.FindByEmail(db, emailAddr)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobSeekerNotFound) {
				return "", apperrors.NewNotFoundError("User not found with this email")
			}
			return "", apperrors.InternalError(err)
		}
		userID = seeker.ID

	case models.RoleHR:
		hr, err := s.hrRepo.FindByEmail(db, emailAddr)
		if err != nil {
			if apperrors.Is(err, repositories.ErrHRNotFound) {
				return "", apperrors.NewNotFoundError("User not found with this email")
			}
			return "", apperrors.InternalError(err)
		}
		userID = hr.ID

	default:
		return "", apperrors.ErrInvalidUserRole
	}

	resetToken, err := s.tokens.GenerateReset(userID, req.Role)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, resetToken)
	s.sendPasswordResetEmail(emailAddr, resetURL)

	return resetToken, nil
}

// ResetPassword consumes a reset token and stores a new hash.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	claims, err := s.tokens.ParsePurpose(token, auth.PurposePasswordReset)
	if err != nil {
		return apperrors.ErrInvalidOrExpiredToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	switch claims.Role {
	case models.RoleJobSeeker:
		seeker, err := s.seekerRepo.FindByID(db, claims.UserID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobSeekerNotFound) {
				return apperrors.NewNotFoundError("User not found")
			}
			return apperrors.InternalError(err)
		}
		seeker.PasswordHash = hash
		if err := s.seekerRepo.Update(db, seeker); err != nil {
			return apperrors.InternalError(err)
		}
		return nil

	case models.RoleHR:
		hr, err := s.hrRepo.FindByID(db, claims.UserID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrHRNotFound) {
				return apperrors.NewNotFoundError("User not found")
			}
			return apperrors.InternalError(err)
		}
		hr.PasswordHash = hash
		if err := s.hrRepo.Update(db, hr); err != nil {
			return apperrors.InternalError(err)
		}
		return nil

	default:
		return apperrors.ErrInvalidUserRole
	}
}

// VerifyEmail flips a job seeker to Verified. HR accounts have no such
// transition; an HR verification token is rejected.
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	claims, err := s.tokens.ParsePurpose(token, auth.PurposeEmailVerification)
	if err != nil {
		return apperrors.ErrInvalidVerificationToken
	}

	if claims.Role != models.RoleJobSeeker {
		return apperrors.ErrInvalidUserRole
	}

	if err := s.seekerRepo.UpdateStatus(db, claims.UserID, models.JobSeekerStatusVerified); err != nil {
		if apperrors.Is(err, repositories.ErrJobSeekerNotFound) {
			return apperrors.NewNotFoundError("User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) sendPasswordResetEmail(to, resetURL string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendPasswordReset(to, resetURL); err != nil {
			logger.Error("failed to send password reset email", "to", to, "error", err)
		}
	}()
}
