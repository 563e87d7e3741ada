package models

import "time"

// Course represents a course record owned by exactly one [User].
// The owning user is fixed at creation time and verified, not trusted,
// on every mutating operation.
type Course struct {
	// ID is the server-assigned surrogate key of the course.
	ID int64 `json:"id"`

	// Title is a short human-readable name. Required.
	Title string `json:"title"`

	// Description is the long-form course text. Required.
	Description string `json:"description"`

	// EstimatedTime is free-form text such as "12 hours". Optional.
	EstimatedTime string `json:"estimatedTime,omitempty"`

	// MaterialsNeeded is free-form text listing prerequisites. Optional.
	MaterialsNeeded string `json:"materialsNeeded,omitempty"`

	// UserID references the owning user's ID. Set once at creation.
	UserID int64 `json:"userId"`

	// Owner is the owning user's public projection (id, names, email,
	// never the password hash). Populated by list/get queries.
	Owner *User `json:"User,omitempty"`

	// CreatedAt is the timestamp when the course was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// NewCourse is the inbound payload for course creation. The owner is taken
// from the authenticated identity, never from the request body.
type NewCourse struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

// CourseUpdate is the inbound payload for course updates. Title and
// Description are mandatory on every update; the optional fields use
// pointers so that an absent key can be distinguished from an explicit
// empty string (absent keys leave the stored value untouched).
type CourseUpdate struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}
