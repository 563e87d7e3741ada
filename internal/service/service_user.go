// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/crypto"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
)

// userService is the concrete implementation of UserService.
// It handles account registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies one-way password digests. Plaintext
	// passwords never travel past this service.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository
// and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The payload is checked against every registration rule at once, the
// plaintext password is replaced with its bcrypt digest, and persistence is
// delegated to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - *ValidationError listing every violated rule, including an
//     already-taken email address reported by the store.
//   - A wrapped storage error if the repository call fails for any other
//     reason.
func (s *userService) Register(ctx context.Context, newUser models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if messages := validators.ValidateNewUser(newUser); len(messages) > 0 {
		log.Error().Strs("violations", messages).Msg("invalid user data provided")
		return models.User{}, NewValidationError(messages)
	}

	digest, err := s.hasher.Hash(newUser.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		FirstName:    newUser.FirstName,
		LastName:     newUser.LastName,
		EmailAddress: newUser.EmailAddress,
		PasswordHash: digest,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, NewValidationError([]string{validators.MsgEmailTaken})
		}

		log.Err(err).Str("email", newUser.EmailAddress).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Authenticate verifies a set of credentials against the stored account.
//
// It looks up the account by email and compares the supplied password with
// the stored bcrypt digest. Every call re-verifies the password; there is no
// session state.
//
// Returns the authenticated user record or:
//   - store.ErrUserNotFound if no account matches the email.
//   - ErrWrongPassword if the password does not match the stored digest.
func (s *userService) Authenticate(ctx context.Context, email string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, err
	}

	if !s.hasher.Verify(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.ID).
			Str("email", foundUser.EmailAddress).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}
