package service

import (
	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/crypto"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
)

type Services struct {
	UserService   UserService
	CourseService CourseService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)

	return &Services{
		UserService:   NewUserService(storages.UserRepository, hasher, logger),
		CourseService: NewCourseService(storages.CourseRepository, logger),
	}
}
