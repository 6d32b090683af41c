package field

import "testing"

func TestRegionFlag(t *testing.T) {
	cases := []struct {
		name   string
		region string
		want   string
	}{
		{"empty region", "", ""},
		{"ukraine", "UA", "\U0001F1FA\U0001F1E6"},
		{"netherlands", "NL", "\U0001F1F3\U0001F1F1"},
		{"lower case accepted", "ua", "\U0001F1FA\U0001F1E6"},
		{"one letter", "U", ""},
		{"three letters", "UKR", ""},
		{"digit in code", "U1", ""},
		{"non-ascii letters", "ÜÄ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RegionFlag(tc.region); got != tc.want {
				t.Fatalf("RegionFlag(%q) = %q, want %q", tc.region, got, tc.want)
			}
		})
	}
}

func TestModel_ApplyCommitsCycleAtomically(t *testing.T) {
	m := &Model{raw: "+38063", display: "+380 6", region: "UA", valid: true}

	m.apply(Result{Err: "engine exploded"})

	if m.Region() != "" {
		t.Fatalf("expected region reset, got %q", m.Region())
	}
	if m.Valid() {
		t.Fatal("expected validity reset")
	}
	if m.Display() != "+380 6" {
		t.Fatalf("expected display untouched on failed cycle, got %q", m.Display())
	}
	if m.Err() != "engine exploded" {
		t.Fatalf("expected failure recorded, got %q", m.Err())
	}
}

func TestModel_ApplySuccessDoesNotClearError(t *testing.T) {
	// The error belongs to the edit cycle: it is cleared when a new raw
	// value is committed, not by a later successful refresh.
	m := &Model{errMsg: "previous failure"}

	m.apply(Result{Display: "+380 63", HasDisplay: true, Region: "UA", Valid: false})

	if m.Err() != "previous failure" {
		t.Fatalf("expected error preserved across apply, got %q", m.Err())
	}
	if m.Display() != "+380 63" || m.Region() != "UA" {
		t.Fatalf("unexpected state: display %q region %q", m.Display(), m.Region())
	}
}
