package store

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. The PasswordHash field must already contain a
	// derived digest, never plaintext.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the user whose email address matches email,
	// including the stored password hash for credential verification.
	// Returns ErrUserNotFound when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CourseRepository is the persistence contract for courses.
//
// Read operations populate each course's Owner with the owning user's public
// projection (id, names, email address). The owner's password hash is never
// selected.
type CourseRepository interface {
	// CreateCourse persists a new course and returns it with server-assigned
	// fields populated. UserID must reference an existing user.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// FindCourseByID retrieves one course with its owner projection.
	// Returns ErrCourseNotFound when no such course exists.
	FindCourseByID(ctx context.Context, id int64) (models.Course, error)

	// ListCourses retrieves all courses with their owner projections,
	// ordered by course ID.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// UpdateCourse applies update to the course identified by id.
	// Optional fields with nil pointers are left untouched.
	// Returns ErrCourseNotFound when no row was affected.
	UpdateCourse(ctx context.Context, id int64, update models.CourseUpdate) error

	// DeleteCourse removes the course identified by id.
	// Returns ErrCourseNotFound when no row was affected.
	DeleteCourse(ctx context.Context, id int64) error
}
