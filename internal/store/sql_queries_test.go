package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-course-api/models"
)

func TestBuildCourseUpdateQuery_RequiredFieldsOnly(t *testing.T) {
	query, args, err := buildCourseUpdateQuery(5, models.CourseUpdate{
		Title:       "New Title",
		Description: "New description",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(query, "UPDATE courses SET") {
		t.Errorf("unexpected statement: %s", query)
	}
	if strings.Contains(query, "estimated_time") || strings.Contains(query, "materials_needed") {
		t.Errorf("absent optional fields must not be touched: %s", query)
	}
	if !strings.Contains(query, "WHERE id = $3") {
		t.Errorf("expected dollar placeholders and id predicate: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d: %v", len(args), args)
	}
	if args[0] != "New Title" || args[1] != "New description" {
		t.Errorf("unexpected args: %v", args)
	}
	if args[2] != int64(5) {
		t.Errorf("expected id arg 5, got %v", args[2])
	}
}

func TestBuildCourseUpdateQuery_AllFields(t *testing.T) {
	estimated := "3 hours"
	materials := "A pencil"

	query, args, err := buildCourseUpdateQuery(7, models.CourseUpdate{
		Title:           "T",
		Description:     "D",
		EstimatedTime:   &estimated,
		MaterialsNeeded: &materials,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "estimated_time = $3") {
		t.Errorf("expected estimated_time assignment: %s", query)
	}
	if !strings.Contains(query, "materials_needed = $4") {
		t.Errorf("expected materials_needed assignment: %s", query)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d: %v", len(args), args)
	}
}

func TestBuildCourseUpdateQuery_EmptyOptionalsBecomeNull(t *testing.T) {
	empty := ""

	_, args, err := buildCourseUpdateQuery(7, models.CourseUpdate{
		Title:         "T",
		Description:   "D",
		EstimatedTime: &empty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ns := toNullString(empty)
	if args[2] != ns {
		t.Errorf("expected NULL for explicitly cleared field, got %v", args[2])
	}
	if ns.Valid {
		t.Error("empty string must map to SQL NULL")
	}
}
