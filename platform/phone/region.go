package phone

import (
	"fmt"
	"unicode"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// RegionInfo describes a dialing region known to the engine.
type RegionInfo struct {
	// Code is the ISO 3166-1 alpha-2 region code, upper case.
	Code string
	// Name is the English display name of the region.
	Name string
	// CallingCode is the ITU country calling code (e.g. 380 for UA).
	CallingCode int
	// ExampleMobile is an example mobile number in international format,
	// empty when the metadata has none for this region.
	ExampleMobile string
}

// RegionInfo looks up metadata for a 2-letter region code.
func (e *Engine) RegionInfo(code string) (RegionInfo, error) {
	upper := make([]rune, 0, 2)
	for _, r := range code {
		upper = append(upper, unicode.ToUpper(r))
	}
	if len(upper) != 2 || !unicode.IsLetter(upper[0]) || !unicode.IsLetter(upper[1]) {
		return RegionInfo{}, fmt.Errorf("region code must be 2 letters, got %q", code)
	}
	normalized := string(upper)

	callingCode := phonenumbers.GetCountryCodeForRegion(normalized)
	if callingCode == 0 {
		return RegionInfo{}, fmt.Errorf("unknown region %q", code)
	}

	info := RegionInfo{
		Code:        normalized,
		Name:        regionName(normalized),
		CallingCode: callingCode,
	}

	if example := phonenumbers.GetExampleNumberForType(normalized, phonenumbers.MOBILE); example != nil {
		info.ExampleMobile = phonenumbers.Format(example, phonenumbers.INTERNATIONAL)
	}

	return info, nil
}

// regionName resolves the English display name via the CLDR data in x/text.
func regionName(code string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return ""
	}
	return display.English.Regions().Name(region)
}
