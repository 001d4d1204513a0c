package model

import (
	"time"

	"github.com/google/uuid"
)

// Verification is a pending email-confirmation record, joined with the
// owning user's display name and account email. Records are created when
// a user registers or requests re-verification and deleted once the
// email is confirmed; attempts are capped at 3 by the sender, never
// mutated here.
type Verification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	Attempts  int       `json:"attempts"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`

	UserFullName string `json:"user_full_name"`
	UserEmail    string `json:"user_email"`
}

// User is the account row as this service sees it.
type User struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	EmailConfirmed bool       `json:"email_confirmed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}
