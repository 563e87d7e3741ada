package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/models"
)

// ---- Stub: UserService ----

// stubUserService implements service.UserService with overridable behaviour.
// Nil funcs fall back to permissive defaults so that tests only configure
// what they assert on.
type stubUserService struct {
	registerFn     func(ctx context.Context, newUser models.NewUser) (models.User, error)
	authenticateFn func(ctx context.Context, email, password string) (models.User, error)
}

func (s *stubUserService) Register(ctx context.Context, newUser models.NewUser) (models.User, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, newUser)
	}
	return models.User{
		ID:           1,
		FirstName:    newUser.FirstName,
		LastName:     newUser.LastName,
		EmailAddress: newUser.EmailAddress,
	}, nil
}

func (s *stubUserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	if s.authenticateFn != nil {
		return s.authenticateFn(ctx, email, password)
	}
	return models.User{ID: 1, FirstName: "Jo", LastName: "Ann", EmailAddress: email}, nil
}

// ---- Stub: CourseService ----

type stubCourseService struct {
	listFn   func(ctx context.Context) ([]models.Course, error)
	getFn    func(ctx context.Context, id int64) (models.Course, error)
	createFn func(ctx context.Context, newCourse models.NewCourse, ownerID int64) (models.Course, error)
	updateFn func(ctx context.Context, id int64, update models.CourseUpdate, actorID int64) error
	deleteFn func(ctx context.Context, id int64, actorID int64) error
}

func (s *stubCourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []models.Course{}, nil
}

func (s *stubCourseService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return models.Course{ID: id}, nil
}

func (s *stubCourseService) CreateCourse(ctx context.Context, newCourse models.NewCourse, ownerID int64) (models.Course, error) {
	if s.createFn != nil {
		return s.createFn(ctx, newCourse, ownerID)
	}
	return models.Course{ID: 1, Title: newCourse.Title, Description: newCourse.Description, UserID: ownerID}, nil
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, id int64, update models.CourseUpdate, actorID int64) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, update, actorID)
	}
	return nil
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, id int64, actorID int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id, actorID)
	}
	return nil
}

// ---- Helper ----

func newTestHandler(t *testing.T, users *stubUserService, courses *stubCourseService) *Handler {
	t.Helper()
	if users == nil {
		users = &stubUserService{}
	}
	if courses == nil {
		courses = &stubCourseService{}
	}
	return NewHandler(&service.Services{
		UserService:   users,
		CourseService: courses,
	}, logger.Nop())
}
