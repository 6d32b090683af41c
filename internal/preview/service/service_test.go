package service

import (
	"context"
	"strings"
	"testing"

	"phonefield_backend/internal/events"
	"phonefield_backend/internal/preview/transport"
	"phonefield_backend/platform/apperr"
	"phonefield_backend/platform/logger"
	"phonefield_backend/platform/phone"
)

// captureBus records published events synchronously.
type captureBus struct {
	published []events.Event
}

func (b *captureBus) Publish(ctx context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *captureBus) PublishSync(ctx context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *captureBus) Subscribe(eventName string, handler events.Handler) {}

type cfgStub struct {
	region string
	maxLen int
}

func (c cfgStub) GetDefaultRegion() string { return c.region }

func (c cfgStub) GetMaxInputLength() int { return c.maxLen }

func newService(t *testing.T) (*Service, *captureBus) {
	t.Helper()
	engine, err := phone.NewEngine("UA")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	bus := &captureBus{}
	return New(engine, cfgStub{region: "UA", maxLen: 64}, bus, logger.New("development")), bus
}

func TestService_PreviewSanitizesAndResolves(t *testing.T) {
	svc, bus := newService(t)

	resp, err := svc.Preview(context.Background(), transport.PreviewRequest{
		Text: "+380 (63) 111-22-33",
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if resp.Raw != "+380631112233" {
		t.Fatalf("expected sanitized raw, got %q", resp.Raw)
	}
	if !resp.Valid || resp.Region != "UA" {
		t.Fatalf("expected valid UA number, got valid=%v region=%q error=%q", resp.Valid, resp.Region, resp.Error)
	}
	if resp.RegionFlag != "\U0001F1FA\U0001F1E6" || resp.RegionName != "Ukraine" {
		t.Fatalf("expected region projection, got flag=%q name=%q", resp.RegionFlag, resp.RegionName)
	}
	if !strings.HasPrefix(resp.Display, "+380") {
		t.Fatalf("expected formatted display, got %q", resp.Display)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected one event, got %d", len(bus.published))
	}
	resolved, ok := bus.published[0].(events.NumberResolved)
	if !ok {
		t.Fatalf("expected NumberResolved, got %T", bus.published[0])
	}
	if !resolved.Valid || resolved.Region != "UA" {
		t.Fatalf("unexpected event payload: %+v", resolved)
	}
}

func TestService_PreviewDeletionThroughSeparator(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.Preview(context.Background(), transport.PreviewRequest{
		Text:     "+380 63 ",
		Deletion: true,
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if resp.Raw != "+380 63" {
		t.Fatalf("expected delete-through raw, got %q", resp.Raw)
	}
	if resp.Valid {
		t.Fatal("partial number must not be valid")
	}
}

func TestService_PreviewRejectsOversizedInput(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Preview(context.Background(), transport.PreviewRequest{
		Text: strings.Repeat("1", 65),
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_ValidateRawDirectly(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.Validate(context.Background(), transport.ValidateRequest{Raw: "+380631112233"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !resp.Valid || resp.Region != "UA" {
		t.Fatalf("expected valid UA number in one cycle, got %+v", resp)
	}
}

func TestService_UnparseableRawIsDataNotError(t *testing.T) {
	svc, bus := newService(t)

	resp, err := svc.Validate(context.Background(), transport.ValidateRequest{Raw: "99999999999999999999999999"})
	if err != nil {
		t.Fatalf("engine failures must not become transport errors, got %v", err)
	}

	if resp.Valid || resp.Region != "" {
		t.Fatalf("expected unknown state, got %+v", resp)
	}
	if resp.Error == "" {
		t.Fatal("expected the engine failure message in the response")
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected one event, got %d", len(bus.published))
	}
	if _, ok := bus.published[0].(events.PipelineFailed); !ok {
		t.Fatalf("expected PipelineFailed, got %T", bus.published[0])
	}
}

func TestService_EmptyTextPublishesNothing(t *testing.T) {
	svc, bus := newService(t)

	resp, err := svc.Preview(context.Background(), transport.PreviewRequest{Text: ""})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if resp.Raw != "" || resp.Valid || resp.Region != "" || resp.Error != "" {
		t.Fatalf("expected empty state, got %+v", resp)
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no events for an empty cycle, got %d", len(bus.published))
	}
}

func TestService_Region(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.Region(context.Background(), "ua")
	if err != nil {
		t.Fatalf("Region: %v", err)
	}
	if resp.Code != "UA" || resp.CallingCode != 380 || resp.Name != "Ukraine" {
		t.Fatalf("unexpected region metadata: %+v", resp)
	}
	if resp.Flag != "\U0001F1FA\U0001F1E6" {
		t.Fatalf("expected flag emoji, got %q", resp.Flag)
	}
}

func TestService_RegionRejectsUnknownCode(t *testing.T) {
	svc, _ := newService(t)

	if _, err := svc.Region(context.Background(), "ZZ"); !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request error, got %v", err)
	}
}
