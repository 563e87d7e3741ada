package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/models"
)

// courseRepository is the SQL-backed implementation of [CourseRepository].
// Every read joins the owning user's public columns; the owner's password
// hash never leaves the database through this repository.
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by the provided
// database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCourse persists a new course record and returns it with the
// server-assigned ID and CreatedAt populated via a RETURNING clause.
// Empty optional fields are stored as NULL.
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCourse,
		course.Title,
		course.Description,
		toNullString(course.EstimatedTime),
		toNullString(course.MaterialsNeeded),
		course.UserID,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: row is nil")
		return models.Course{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&course.ID, &course.CreatedAt); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: scanning error")
		return models.Course{}, err
	}

	return course, nil
}

// FindCourseByID retrieves one course together with its owner projection.
//
// Error handling:
//   - no matching row ([sql.ErrNoRows]) → [ErrCourseNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *courseRepository) FindCourseByID(ctx context.Context, id int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findCourseByID, id)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}

		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("error: row is nil")
		return models.Course{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	course, err := scanCourseWithOwner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}

		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("error: scanning error")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return course, nil
}

// ListCourses retrieves all courses with their owner projections, ordered by
// course ID.
func (r *courseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCourses)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourseWithOwner(rows)
		if err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// UpdateCourse applies the given update to one course row. The statement is
// built dynamically so that absent optional fields are not touched.
//
// Error handling:
//   - zero rows affected → [ErrCourseNotFound].
//   - statement build failure → wrapped [ErrBuildingSQLQuery].
//   - execution failure → wrapped [ErrExecutingStatement].
func (r *courseRepository) UpdateCourse(ctx context.Context, id int64, update models.CourseUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCourseUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// DeleteCourse removes one course row.
//
// Error handling:
//   - zero rows affected → [ErrCourseNotFound].
//   - execution failure → wrapped [ErrExecutingStatement].
func (r *courseRepository) DeleteCourse(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCourse, id)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourseWithOwner(row rowScanner) (models.Course, error) {
	var course models.Course
	var owner models.User

	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
		&owner.ID,
		&owner.FirstName,
		&owner.LastName,
		&owner.EmailAddress,
	)
	if err != nil {
		return models.Course{}, err
	}

	course.Owner = &owner
	return course, nil
}
