package models

import (
	"time"

	"github.com/google/uuid"
)

// Sign-in providers recorded on users.
const (
	ProviderCredentials = "Credentials"
	ProviderGoogle      = "Google"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email
	Name         *string   `json:"name,omitempty" db:"name"`   // Display name from the identity provider
	PasswordHash *string   `json:"-" db:"password_hash"`       // Bcrypt hash; nil for provider-only accounts
	Provider     string    `json:"provider" db:"provider"`     // Credentials or Google
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// ExternalIdentity is the identity asserted by an external sign-in provider.
type ExternalIdentity struct {
	Email         string
	Name          string
	EmailVerified bool
}
