package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recruitflow_backend/internal/models"
)

// Purpose values tag single-use tokens. A session token carries no purpose;
// the auth gate rejects any token whose purpose is set.
const (
	PurposePasswordReset     = "password_reset"
	PurposeEmailVerification = "email_verification"
)

const resetTokenTTL = time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrWrongPurpose = errors.New("token purpose mismatch")
)

// Claims is the single claim set for session and purpose-tagged tokens.
type Claims struct {
	UserID  string      `json:"id"`
	Role    models.Role `json:"role"`
	Email   string      `json:"email,omitempty"`
	Name    string      `json:"name,omitempty"`
	Company string      `json:"company,omitempty"`
	Purpose string      `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 tokens with one shared secret.
type TokenService struct {
	secret     []byte
	sessionTTL time.Duration
}

func NewTokenService(secret string, sessionTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
	}
}

// Generate issues a session token. Any purpose on the passed claims is
// discarded; session tokens are never purpose-tagged.
func (s *TokenService) Generate(claims Claims) (string, error) {
	claims.Purpose = ""
	return s.generate(claims, s.sessionTTL)
}

// GenerateReset issues a one-hour password reset token.
func (s *TokenService) GenerateReset(userID string, role models.Role) (string, error) {
	return s.generate(Claims{
		UserID:  userID,
		Role:    role,
		Purpose: PurposePasswordReset,
	}, resetTokenTTL)
}

// GenerateVerification issues an email verification token bound to the
// address being verified.
func (s *TokenService) GenerateVerification(userID string, role models.Role, email string) (string, error) {
	return s.generate(Claims{
		UserID:  userID,
		Role:    role,
		Email:   email,
		Purpose: PurposeEmailVerification,
	}, resetTokenTTL)
}

func (s *TokenService) generate(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature and expiry and returns the claims. Expiry is the
// only failure distinguished for callers.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ParsePurpose verifies a purpose-tagged token. A valid token with a
// different purpose (including a plain session token) is rejected.
func (s *TokenService) ParsePurpose(tokenString, purpose string) (*Claims, error) {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != purpose {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}
