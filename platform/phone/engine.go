// Package phone provides the phone-number engine backing the input pipeline.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// Engine drives incremental formatting, region extraction, and validity
// checking on top of the embedded libphonenumber metadata. A single Engine
// is safe for concurrent use; each call builds its own formatter state.
type Engine struct {
	defaultRegion string
}

// NewEngine creates an engine. defaultRegion is the ISO 3166-1 alpha-2 region
// assumed for numbers entered without an international prefix.
func NewEngine(defaultRegion string) (*Engine, error) {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if phonenumbers.GetCountryCodeForRegion(region) == 0 {
		return nil, fmt.Errorf("unknown default region %q", defaultRegion)
	}
	return &Engine{defaultRegion: region}, nil
}

// DefaultRegion returns the region assumed for national-format input.
func (e *Engine) DefaultRegion() string {
	return e.defaultRegion
}

// FormatIncremental simulates as-you-type formatting by replaying the raw
// value digit by digit, so partial numbers get partial formatting. Formatter
// punctuation left over from a delete-through edit is skipped. An empty
// result with a nil error means there was nothing to format.
func (e *Engine) FormatIncremental(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	formatter := phonenumbers.NewAsYouTypeFormatter(e.defaultRegion)
	var formatted string
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '+':
			formatted = formatter.InputDigit(r)
		case unicode.IsSpace(r), r == '-', r == '(', r == ')', r == '.':
			// separator inserted by a previous formatting pass
		default:
			return "", fmt.Errorf("invalid character %q in phone number", r)
		}
	}
	return formatted, nil
}

// RegionCode extracts the ISO region for a formatted number. An empty result
// with a nil error means the region could not be determined yet.
func (e *Engine) RegionCode(formatted string) (string, error) {
	if formatted == "" {
		return "", nil
	}

	number, err := phonenumbers.Parse(formatted, e.defaultRegion)
	if err != nil {
		return "", err
	}
	return phonenumbers.GetRegionCodeForNumber(number), nil
}

// IsValidNumber checks whether a formatted number is valid for its region.
// known is false when the engine has no answer at all, which is distinct
// from a definite "not valid".
func (e *Engine) IsValidNumber(formatted string) (valid, known bool, err error) {
	if formatted == "" {
		return false, false, nil
	}

	number, err := phonenumbers.Parse(formatted, e.defaultRegion)
	if err != nil {
		return false, false, err
	}
	return phonenumbers.IsValidNumber(number), true, nil
}
