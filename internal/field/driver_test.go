package field

import (
	"errors"
	"testing"
)

// fakeEngine scripts the three stage outcomes and counts calls.
type fakeEngine struct {
	formatted string
	formatErr error
	region    string
	regionErr error
	valid     bool
	known     bool
	validErr  error

	formatCalls int
	regionCalls int
	validCalls  int
}

func (e *fakeEngine) FormatIncremental(raw string) (string, error) {
	e.formatCalls++
	return e.formatted, e.formatErr
}

func (e *fakeEngine) RegionCode(formatted string) (string, error) {
	e.regionCalls++
	return e.region, e.regionErr
}

func (e *fakeEngine) IsValidNumber(formatted string) (bool, bool, error) {
	e.validCalls++
	return e.valid, e.known, e.validErr
}

func TestDriver_FormatStageFailure(t *testing.T) {
	eng := &fakeEngine{formatErr: errors.New("bad locale")}

	res := NewDriver(eng).Refresh("+38063")

	if res.HasDisplay {
		t.Fatal("expected no display when format stage fails")
	}
	if res.Region != "" || res.Valid {
		t.Fatalf("expected unknown state, got region %q valid %v", res.Region, res.Valid)
	}
	if res.Err != "bad locale" {
		t.Fatalf("expected failure message surfaced verbatim, got %q", res.Err)
	}
	if eng.regionCalls != 0 || eng.validCalls != 0 {
		t.Fatal("downstream stages must not run after a format failure")
	}
}

func TestDriver_FormatStageEmpty(t *testing.T) {
	eng := &fakeEngine{}

	res := NewDriver(eng).Refresh("")

	if res.HasDisplay || res.Region != "" || res.Valid || res.Err != "" {
		t.Fatalf("expected zero result for empty format stage, got %+v", res)
	}
	if eng.regionCalls != 0 {
		t.Fatal("region stage must not run on an empty formatted value")
	}
}

func TestDriver_RegionStageFailure(t *testing.T) {
	eng := &fakeEngine{formatted: "+380 63", regionErr: errors.New("no region data")}

	res := NewDriver(eng).Refresh("+38063")

	if !res.HasDisplay || res.Display != "+380 63" {
		t.Fatalf("display from a successful format stage must be kept, got %+v", res)
	}
	if res.Region != "" || res.Valid {
		t.Fatalf("expected unknown state, got region %q valid %v", res.Region, res.Valid)
	}
	if res.Err != "no region data" {
		t.Fatalf("expected failure recorded, got %q", res.Err)
	}
	if eng.validCalls != 0 {
		t.Fatal("validation stage must not run after a region failure")
	}
}

func TestDriver_RegionStageEmptySkipsValidation(t *testing.T) {
	eng := &fakeEngine{formatted: "+3", valid: true, known: true}

	res := NewDriver(eng).Refresh("+3")

	if res.Region != "" || res.Valid {
		t.Fatalf("expected unknown state, got region %q valid %v", res.Region, res.Valid)
	}
	if res.Err != "" {
		t.Fatalf("an empty region is not a failure, got %q", res.Err)
	}
	if eng.validCalls != 0 {
		t.Fatal("validation stage must not run when the region is undetermined")
	}
}

func TestDriver_ValidationStageFailureResetsRegion(t *testing.T) {
	eng := &fakeEngine{formatted: "+380 63 111 22 33", region: "UA", validErr: errors.New("metadata error")}

	res := NewDriver(eng).Refresh("+380631112233")

	if res.Region != "" || res.Valid {
		t.Fatalf("expected full reset on validation failure, got region %q valid %v", res.Region, res.Valid)
	}
	if res.Err != "metadata error" {
		t.Fatalf("expected failure recorded, got %q", res.Err)
	}
	if !res.HasDisplay {
		t.Fatal("display from a successful format stage must be kept")
	}
}

func TestDriver_ValidationStageEmptyPreservesRegion(t *testing.T) {
	eng := &fakeEngine{formatted: "+380 63 111 22 33", region: "UA", known: false}

	res := NewDriver(eng).Refresh("+380631112233")

	if res.Region != "UA" {
		t.Fatalf("region from a successful region stage must survive an empty validity answer, got %q", res.Region)
	}
	if res.Valid {
		t.Fatal("an empty validity answer must not report valid")
	}
	if res.Err != "" {
		t.Fatalf("an empty validity answer is not a failure, got %q", res.Err)
	}
}

func TestDriver_FullPipeline(t *testing.T) {
	eng := &fakeEngine{formatted: "+380 63 111 22 33", region: "UA", valid: true, known: true}

	res := NewDriver(eng).Refresh("+380631112233")

	if !res.HasDisplay || res.Display != "+380 63 111 22 33" {
		t.Fatalf("unexpected display: %+v", res)
	}
	if res.Region != "UA" || !res.Valid || res.Err != "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if eng.formatCalls != 1 || eng.regionCalls != 1 || eng.validCalls != 1 {
		t.Fatalf("each stage must run exactly once, got %d/%d/%d", eng.formatCalls, eng.regionCalls, eng.validCalls)
	}
}
