package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// TokenKind distinguishes the two credentials the service issues. The kind is
// embedded in the token itself and checked on validation, so a refresh token
// can never be replayed where an access token is expected.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

var (
	ErrTokenMissing = apperr.Unauthorized("no token provided")
	ErrTokenInvalid = apperr.Unauthorized("token is not valid")
	ErrTokenExpired = apperr.Unauthorized("token expired")
)

// Claims carries the subject identity and the declared token kind.
type Claims struct {
	Kind TokenKind `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies access/refresh tokens with a symmetric
// HS256 key. Tokens are self-contained; there is no server-side revocation,
// expiry is the only bound on their lifetime.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService fails when the signing secret is empty so a misconfigured
// deployment dies at startup instead of issuing unverifiable tokens.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("auth: JWT secret is not configured")
	}
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}, nil
}

// AccessTTL reports the configured access token lifetime.
func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }

// RefreshTTL reports the configured refresh token lifetime.
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

// IssueAccess signs a short-lived access token for the given subject.
func (s *TokenService) IssueAccess(subjectID string) (string, error) {
	return s.issue(subjectID, KindAccess, s.accessTTL)
}

// IssueRefresh signs a long-lived refresh token for the given subject.
func (s *TokenService) IssueRefresh(subjectID string) (string, error) {
	return s.issue(subjectID, KindRefresh, s.refreshTTL)
}

func (s *TokenService) issue(subjectID string, kind TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses tokenStr and returns the subject id. It fails with
// ErrTokenExpired past expiry, and with ErrTokenInvalid on a bad signature,
// a foreign signing algorithm, or a kind mismatch.
func (s *TokenService) Validate(tokenStr string, kind TokenKind) (string, error) {
	if tokenStr == "" {
		return "", ErrTokenMissing
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrTokenInvalid
	}
	if claims.Kind != kind {
		return "", ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
