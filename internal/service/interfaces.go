package service

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

type UserService interface {
	Register(ctx context.Context, newUser models.NewUser) (models.User, error)
	Authenticate(ctx context.Context, email string, password string) (models.User, error)
}

type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (models.Course, error)

	CreateCourse(ctx context.Context, newCourse models.NewCourse, ownerID int64) (models.Course, error)
	UpdateCourse(ctx context.Context, id int64, update models.CourseUpdate, actorID int64) error
	DeleteCourse(ctx context.Context, id int64, actorID int64) error
}
