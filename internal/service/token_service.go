package service

import (
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims is the JWT claim set for capability tokens.
type accessClaims struct {
	TraceID string             `json:"trace_id"`
	BetID   string             `json:"bet_id"`
	Level   domain.AccessLevel `json:"level"`
	jwt.RegisteredClaims
}

// JWTTokenService issues HS256 capability tokens. The token level is
// advisory for callers; the grant row remains the source of truth.
type JWTTokenService struct {
	secret            []byte
	issuer            string
	provisionalExpiry time.Duration
	fullExpiry        time.Duration
}

// NewJWTTokenService creates a new JWTTokenService.
func NewJWTTokenService(secret, issuer string, provisionalExpiry, fullExpiry time.Duration) *JWTTokenService {
	return &JWTTokenService{
		secret:            []byte(secret),
		issuer:            issuer,
		provisionalExpiry: provisionalExpiry,
		fullExpiry:        fullExpiry,
	}
}

// Generate signs a capability token for the subject at the given level.
// PROVISIONAL tokens expire with the provisional window; FULL tokens get
// the long-lived expiry.
func (s *JWTTokenService) Generate(subjectID, traceID, betID string, level domain.AccessLevel) (string, time.Time, error) {
	now := time.Now().UTC()
	expiry := s.fullExpiry
	if level == domain.AccessLevelProvisional {
		expiry = s.provisionalExpiry
	}
	expiresAt := now.Add(expiry)

	claims := accessClaims{
		TraceID: traceID,
		BetID:   betID,
		Level:   level,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses and verifies a capability token.
func (s *JWTTokenService) Validate(tokenString string) (*ports.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, apperror.ErrInvalidToken()
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidToken()
	}

	return &ports.AccessClaims{
		SubjectID: claims.Subject,
		TraceID:   claims.TraceID,
		BetID:     claims.BetID,
		Level:     claims.Level,
	}, nil
}
