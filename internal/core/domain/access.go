package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessLevel is the tier of outcome visibility tied to a trace.
type AccessLevel string

const (
	AccessLevelProvisional AccessLevel = "PROVISIONAL"
	AccessLevelFull        AccessLevel = "FULL"
	AccessLevelRevoked     AccessLevel = "REVOKED"
)

// GrantStatus marks whether a grant is still in force.
type GrantStatus string

const (
	GrantStatusActive  GrantStatus = "ACTIVE"
	GrantStatusRevoked GrantStatus = "REVOKED"
)

// AccessGrant is a time-bounded permission to view bet outcomes while a
// settlement is pending. At most one ACTIVE grant exists per trace.
// PROVISIONAL grants always carry an expiry; FULL grants never expire.
type AccessGrant struct {
	ID         uuid.UUID   `json:"id"`
	SubjectID  string      `json:"subject_id"`
	TraceID    string      `json:"trace_id"`
	BetID      string      `json:"bet_id"`
	Level      AccessLevel `json:"level"`
	GrantedAt  time.Time   `json:"granted_at"`
	UpgradedAt *time.Time  `json:"upgraded_at,omitempty"`
	ExpiresAt  *time.Time  `json:"expires_at,omitempty"`
	RevokedAt  *time.Time  `json:"revoked_at,omitempty"`
	Status     GrantStatus `json:"status"`
}

// IsExpired reports whether a PROVISIONAL grant's window has elapsed.
func (g *AccessGrant) IsExpired(now time.Time) bool {
	return g.Level == AccessLevelProvisional &&
		g.ExpiresAt != nil && now.After(*g.ExpiresAt)
}

// IsActive reports whether the grant is in force at the given instant.
func (g *AccessGrant) IsActive(now time.Time) bool {
	return g.Status == GrantStatusActive && !g.IsExpired(now)
}
