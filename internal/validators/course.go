package validators

import "github.com/MKhiriev/go-course-api/models"

// Violation messages for the Course entity.
// MsgDescriptionRequired has no trailing period; the wording is kept exactly
// as clients already match on it.
const (
	MsgTitleRequired       = "A title is required."
	MsgDescriptionRequired = "A description is required"
)

// ValidateNewCourse checks all creation fields and returns every violation
// in declaration order: title, then description.
func ValidateNewCourse(course models.NewCourse) []string {
	return validateCourseFields(course.Title, course.Description)
}

// ValidateCourseUpdate checks the mandatory update fields. Title and
// Description must be present on every update; the optional fields carry no
// validation rules.
func ValidateCourseUpdate(update models.CourseUpdate) []string {
	return validateCourseFields(update.Title, update.Description)
}

func validateCourseFields(title, description string) []string {
	var violations []string

	if title == "" {
		violations = append(violations, MsgTitleRequired)
	}

	if description == "" {
		violations = append(violations, MsgDescriptionRequired)
	}

	return violations
}
