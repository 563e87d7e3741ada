package validators

import (
	"testing"

	"github.com/MKhiriev/go-course-api/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateNewCourse(t *testing.T) {
	assert.Empty(t, ValidateNewCourse(models.NewCourse{Title: "T", Description: "D"}))

	assert.Equal(t,
		[]string{MsgDescriptionRequired},
		ValidateNewCourse(models.NewCourse{Title: "T"}))

	assert.Equal(t,
		[]string{MsgTitleRequired},
		ValidateNewCourse(models.NewCourse{Description: "D"}))

	assert.Equal(t,
		[]string{MsgTitleRequired, MsgDescriptionRequired},
		ValidateNewCourse(models.NewCourse{}))
}

func TestValidateCourseUpdate(t *testing.T) {
	assert.Empty(t, ValidateCourseUpdate(models.CourseUpdate{Title: "T", Description: "D"}))

	// optional fields carry no rules, missing pointers are fine
	assert.Empty(t, ValidateCourseUpdate(models.CourseUpdate{
		Title:       "T",
		Description: "D",
	}))

	assert.Equal(t,
		[]string{MsgDescriptionRequired},
		ValidateCourseUpdate(models.CourseUpdate{Title: "T"}))
}
