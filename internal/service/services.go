package service

import (
	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/internal/store"
)

type Services struct {
	AuthService    AuthService
	ReadingService ReadingService
	OCRService     OCRService
}

func NewServices(storages *store.Storages, recognizer Recognizer, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		ReadingService: NewReadingService(storages.ReadingRepository, logger),
		OCRService:     NewOCRService(recognizer, logger),
	}
}
