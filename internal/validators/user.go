// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides pure, storage-independent validation for the
// API's entities.
//
// Each entity has a single validation function that inspects every field and
// returns the complete, ordered list of human-readable violation messages,
// not just the first failure. An empty slice means the input is valid.
//
// Keeping validation here (instead of on model setters or inside repository
// calls) makes the rules unit-testable in isolation and keeps the transport
// and storage layers free of field-level policy.
package validators

import (
	"net/mail"

	"github.com/MKhiriev/go-course-api/models"
)

// Violation messages for the User entity.
const (
	MsgFirstNameRequired = "A first name is required."
	MsgLastNameRequired  = "A last name is required."
	MsgEmailRequired     = "Must provide a email address."
	MsgEmailInvalid      = "A valid email address is required."
	MsgEmailTaken        = "The email address provided is already in use."
	MsgPasswordRequired  = "A password is required."
)

// ValidateNewUser checks all registration fields and returns every violation
// in declaration order: first name, last name, email address, password.
func ValidateNewUser(user models.NewUser) []string {
	var violations []string

	if user.FirstName == "" {
		violations = append(violations, MsgFirstNameRequired)
	}

	if user.LastName == "" {
		violations = append(violations, MsgLastNameRequired)
	}

	switch {
	case user.EmailAddress == "":
		violations = append(violations, MsgEmailRequired)
	case !isValidEmail(user.EmailAddress):
		violations = append(violations, MsgEmailInvalid)
	}

	if user.Password == "" {
		violations = append(violations, MsgPasswordRequired)
	}

	return violations
}

// isValidEmail reports whether addr is a syntactically valid RFC 5322
// address. Addresses with a display name part (e.g. "Jo <jo@x.com>") are
// rejected: the field must contain a bare address.
func isValidEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}
