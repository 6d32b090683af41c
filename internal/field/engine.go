// Package field implements the incremental phone-number input component:
// a sanitizer that reduces free-form keystrokes to a canonical raw value,
// a three-stage formatting/validation driver, and the observable model the
// host renders from. The package is host-agnostic: the surrounding UI wires
// itself in through the Engine, Scheduler, and TextInput interfaces.
package field

// Engine is the phone-number capability the driver consumes. All three
// operations may fail with a human-readable error, which the driver surfaces
// verbatim on the model; an empty result with a nil error means the engine
// had no answer for that stage.
type Engine interface {
	// FormatIncremental progressively formats a raw value as if its digits
	// were typed one at a time.
	FormatIncremental(raw string) (string, error)
	// RegionCode extracts the ISO 3166-1 alpha-2 region of a formatted number.
	RegionCode(formatted string) (string, error)
	// IsValidNumber reports whether a formatted number is valid for its
	// region. known is false when the engine has no answer, which is distinct
	// from a definite "not valid".
	IsValidNumber(formatted string) (valid, known bool, err error)
}

// Scheduler defers work to the next turn of the host's event loop. The
// field uses it to decouple the formatting/validation cycle from the edit
// handler that committed the raw value.
type Scheduler interface {
	Schedule(task func())
}

// TextInput is the minimal surface the field needs from a host text widget:
// reading the displayed text after an edit and replacing it with the
// formatted value.
type TextInput interface {
	Text() string
	SetText(text string)
}
