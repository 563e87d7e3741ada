package models

import "time"

// User represents an account entity used for authentication and course
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the server-assigned surrogate key of the user.
	ID int64 `json:"id"`

	// FirstName is the user's given name. Required on creation.
	FirstName string `json:"firstName"`

	// LastName is the user's family name. Required on creation.
	LastName string `json:"lastName"`

	// EmailAddress is the unique login identifier of the user.
	// Used as the name part of HTTP Basic credentials.
	EmailAddress string `json:"emailAddress"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized into any response payload.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing; not part of the API payload.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NewUser is the inbound payload for user registration. Unlike [User] it
// carries the plaintext password, which exists only for the duration of the
// request and is hashed before it reaches the store.
type NewUser struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}
