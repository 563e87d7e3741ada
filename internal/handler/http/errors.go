// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Messages written to error response bodies. The authentication messages
// intentionally distinguish an unknown email from a wrong password; a
// hardened deployment would unify them to avoid user enumeration.
const (
	// msgAuthHeaderNotFound is returned when the incoming request does not
	// carry parseable HTTP Basic credentials.
	msgAuthHeaderNotFound = "Auth header was not found."

	// msgNoUserFound is returned when no account matches the supplied email.
	msgNoUserFound = "No user was found."

	// msgPasswordMismatch is returned when the supplied password does not
	// match the stored digest.
	msgPasswordMismatch = "Password did not match."

	// msgNotCourseOwner is returned when an authenticated user attempts to
	// mutate a course owned by someone else.
	msgNotCourseOwner = "Must be the owner of this course."

	// msgCourseNotFound is returned when the requested course does not exist.
	msgCourseNotFound = "Course not found."

	// msgInvalidJSON is returned when the request body cannot be decoded.
	msgInvalidJSON = "Invalid JSON was passed"
)
