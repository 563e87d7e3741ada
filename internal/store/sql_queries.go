package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-course-api/models"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email_address, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, created_at;`

	findUserByEmail = `SELECT id, first_name, last_name, email_address, password_hash, created_at
    FROM users
    WHERE email_address = $1;`

	createCourse = `INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at;`

	// Owner columns are projected explicitly; the password hash column is
	// deliberately never part of any course query.
	findCourseByID = `SELECT c.id, c.title, c.description,
        COALESCE(c.estimated_time, ''), COALESCE(c.materials_needed, ''), c.user_id,
        u.id, u.first_name, u.last_name, u.email_address
    FROM courses c
    JOIN users u ON u.id = c.user_id
    WHERE c.id = $1;`

	listCourses = `SELECT c.id, c.title, c.description,
        COALESCE(c.estimated_time, ''), COALESCE(c.materials_needed, ''), c.user_id,
        u.id, u.first_name, u.last_name, u.email_address
    FROM courses c
    JOIN users u ON u.id = c.user_id
    ORDER BY c.id;`

	deleteCourse = `DELETE FROM courses WHERE id = $1;`
)

// buildCourseUpdateQuery builds the UPDATE statement for a course. Title and
// description are always set; the optional columns are only touched when the
// corresponding pointer is non-nil, so an absent JSON key leaves the stored
// value alone.
func buildCourseUpdateQuery(id int64, update models.CourseUpdate) (string, []any, error) {
	builder := sq.Update("courses").
		PlaceholderFormat(sq.Dollar).
		Set("title", update.Title).
		Set("description", update.Description)

	if update.EstimatedTime != nil {
		builder = builder.Set("estimated_time", toNullString(*update.EstimatedTime))
	}

	if update.MaterialsNeeded != nil {
		builder = builder.Set("materials_needed", toNullString(*update.MaterialsNeeded))
	}

	return builder.Where(sq.Eq{"id": id}).ToSql()
}

// toNullString maps an empty string to SQL NULL so optional text columns
// stay NULL instead of accumulating empty strings.
func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
