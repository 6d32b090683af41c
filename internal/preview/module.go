// Package preview provides the phone preview bounded context module.
// It exposes the sanitize/format/validate pipeline to stateless HTTP
// clients that want server-driven as-you-type behavior.
package preview

import (
	"phonefield_backend/internal/events"
	apphttp "phonefield_backend/internal/http"
	"phonefield_backend/internal/preview/handler"
	"phonefield_backend/internal/preview/service"
	"phonefield_backend/platform/config"
	"phonefield_backend/platform/logger"
	"phonefield_backend/platform/phone"
	"phonefield_backend/platform/validator"
)

// Module is the preview bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the preview module with all its dependencies.
func NewModule(engine *phone.Engine, cfg config.PhoneConfig, bus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	svc := service.New(engine, cfg, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "preview"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts phone preview routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/phone")
	group.POST("/preview", m.handler.Preview)
	group.POST("/validate", m.handler.Validate)
	group.GET("/regions/:code", m.handler.Region)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
