package customization

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	manager *Manager
	service *Service
	handler *Handler
}

// NewFeature creates a new customization feature around an existing manager.
func NewFeature(manager *Manager, logger *zap.Logger) *Feature {
	svc := NewService(manager)
	h := NewHandler(svc, logger)
	return &Feature{manager: manager, service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "customization"
}

// IsEnabled checks if the feature is enabled. Routes stay mounted even when
// the dataset is switched off so the status endpoint can report that.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service to other features.
func (f *Feature) Service() *Service {
	return f.service
}
