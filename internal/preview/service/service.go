package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"phonefield_backend/internal/events"
	"phonefield_backend/internal/field"
	"phonefield_backend/internal/preview/transport"
	"phonefield_backend/platform/apperr"
	"phonefield_backend/platform/config"
	"phonefield_backend/platform/logger"
	"phonefield_backend/platform/phone"
)

// The production engine must satisfy the field's engine contract.
var _ field.Engine = (*phone.Engine)(nil)

// Service runs the sanitize/format/validate pipeline for stateless HTTP
// clients. Unlike the in-process field, there is no model to carry between
// requests: each request is one full cycle.
type Service struct {
	engine *phone.Engine
	driver *field.Driver
	bus    events.Bus
	log    *logger.Logger
	maxLen int
}

// New creates the preview service.
func New(engine *phone.Engine, cfg config.PhoneConfig, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		engine: engine,
		driver: field.NewDriver(engine),
		bus:    bus,
		log:    log,
		maxLen: cfg.GetMaxInputLength(),
	}
}

// Preview sanitizes one edit of the widget text and runs a pipeline cycle.
func (s *Service) Preview(ctx context.Context, req transport.PreviewRequest) (transport.NumberStateResponse, error) {
	if len(req.Text) > s.maxLen {
		return transport.NumberStateResponse{}, apperr.Validation(fmt.Sprintf("input longer than %d bytes", s.maxLen))
	}

	raw := field.Sanitize(req.Text, req.Deletion)
	return s.resolve(ctx, raw), nil
}

// Validate runs a pipeline cycle for an already-raw value.
func (s *Service) Validate(ctx context.Context, req transport.ValidateRequest) (transport.NumberStateResponse, error) {
	if len(req.Raw) > s.maxLen {
		return transport.NumberStateResponse{}, apperr.Validation(fmt.Sprintf("input longer than %d bytes", s.maxLen))
	}

	return s.resolve(ctx, req.Raw), nil
}

// Region returns metadata for a 2-letter region code.
func (s *Service) Region(ctx context.Context, code string) (transport.RegionResponse, error) {
	info, err := s.engine.RegionInfo(code)
	if err != nil {
		return transport.RegionResponse{}, apperr.BadRequest(err.Error())
	}

	return transport.RegionResponse{
		Code:          info.Code,
		Flag:          field.RegionFlag(info.Code),
		Name:          info.Name,
		CallingCode:   info.CallingCode,
		ExampleMobile: info.ExampleMobile,
	}, nil
}

// resolve runs one driver cycle and projects the result for transport.
// Engine failures are data here, not errors: the response carries them the
// same way the in-process model does.
func (s *Service) resolve(ctx context.Context, raw string) transport.NumberStateResponse {
	res := s.driver.Refresh(raw)

	resp := transport.NumberStateResponse{
		Raw:     raw,
		Display: raw,
		Region:  res.Region,
		Valid:   res.Valid,
		Error:   res.Err,
	}
	if res.HasDisplay {
		resp.Display = res.Display
	}
	if res.Region != "" {
		resp.RegionFlag = field.RegionFlag(res.Region)
		if info, err := s.engine.RegionInfo(res.Region); err == nil {
			resp.RegionName = info.Name
		}
	}

	cycleID := uuid.New()
	if res.Err != "" {
		s.log.WithContext(ctx).PipelineFailure("pipeline", res.Err)
		s.bus.Publish(ctx, events.PipelineFailed{
			BaseEvent: events.NewBaseEvent(),
			CycleID:   cycleID,
			Message:   res.Err,
		})
	} else if raw != "" {
		s.bus.Publish(ctx, events.NumberResolved{
			BaseEvent: events.NewBaseEvent(),
			CycleID:   cycleID,
			Region:    res.Region,
			Valid:     res.Valid,
		})
	}

	return resp
}
