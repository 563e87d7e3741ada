// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
)

// courseService is the concrete implementation of CourseService.
// Reads are open to everyone; every mutation verifies that the acting user
// owns the target course before touching the store.
type courseService struct {
	courseRepository store.CourseRepository

	logger *logger.Logger
}

// NewCourseService constructs a CourseService wired to the given
// CourseRepository.
func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		logger:           logger,
	}
}

func (c *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return c.courseRepository.ListCourses(ctx)
}

func (c *courseService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	return c.courseRepository.FindCourseByID(ctx, id)
}

// CreateCourse persists a new course owned by ownerID. The owner comes from
// the authenticated identity; any owner value in the payload is ignored.
//
// Returns the persisted course (with a server-assigned ID) or:
//   - *ValidationError listing every violated rule.
//   - A wrapped storage error if the repository call fails.
func (c *courseService) CreateCourse(ctx context.Context, newCourse models.NewCourse, ownerID int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	if messages := validators.ValidateNewCourse(newCourse); len(messages) > 0 {
		log.Error().Strs("violations", messages).Msg("invalid course data provided")
		return models.Course{}, NewValidationError(messages)
	}

	createdCourse, err := c.courseRepository.CreateCourse(ctx, models.Course{
		Title:           newCourse.Title,
		Description:     newCourse.Description,
		EstimatedTime:   newCourse.EstimatedTime,
		MaterialsNeeded: newCourse.MaterialsNeeded,
		UserID:          ownerID,
	})
	if err != nil {
		log.Err(err).Int64("ownerID", ownerID).Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	return createdCourse, nil
}

// UpdateCourse applies the given update to the course with the given ID on
// behalf of actorID.
//
// Validation runs before any lookup, so a malformed payload is reported even
// when the course does not exist. The ownership check and the update are two
// sequential store calls; a course deleted in between surfaces as
// store.ErrCourseNotFound from the second call.
//
// Returns nil on success or:
//   - *ValidationError listing every violated rule.
//   - store.ErrCourseNotFound if no course matches the ID.
//   - ErrNotCourseOwner if the course belongs to another user.
func (c *courseService) UpdateCourse(ctx context.Context, id int64, update models.CourseUpdate, actorID int64) error {
	log := logger.FromContext(ctx)

	if messages := validators.ValidateCourseUpdate(update); len(messages) > 0 {
		log.Error().Strs("violations", messages).Msg("invalid course data provided")
		return NewValidationError(messages)
	}

	if err := c.checkOwnership(ctx, id, actorID); err != nil {
		return err
	}

	if err := c.courseRepository.UpdateCourse(ctx, id, update); err != nil {
		log.Err(err).Int64("courseID", id).Msg("course update ended with error")
		return err
	}

	return nil
}

// DeleteCourse removes the course with the given ID on behalf of actorID.
//
// Returns nil on success or:
//   - store.ErrCourseNotFound if no course matches the ID.
//   - ErrNotCourseOwner if the course belongs to another user.
func (c *courseService) DeleteCourse(ctx context.Context, id int64, actorID int64) error {
	log := logger.FromContext(ctx)

	if err := c.checkOwnership(ctx, id, actorID); err != nil {
		return err
	}

	if err := c.courseRepository.DeleteCourse(ctx, id); err != nil {
		log.Err(err).Int64("courseID", id).Msg("course deletion ended with error")
		return err
	}

	return nil
}

// checkOwnership loads the course and verifies that actorID owns it.
// Existence is checked before ownership, so an absent course is reported as
// not found rather than forbidden.
func (c *courseService) checkOwnership(ctx context.Context, id int64, actorID int64) error {
	log := logger.FromContext(ctx)

	course, err := c.courseRepository.FindCourseByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("courseID", id).Msg("course search by id failed")
		return err
	}

	if course.UserID != actorID {
		log.Error().
			Int64("courseID", id).
			Int64("ownerID", course.UserID).
			Int64("actorID", actorID).
			Msg("mutation attempted by non-owner")
		return ErrNotCourseOwner
	}

	return nil
}
