package field

// regionalIndicatorOffset maps an upper-case ASCII letter to the
// corresponding Unicode regional indicator symbol.
const regionalIndicatorOffset = 0x1F1E6 - 'A'

// Model is the complete externally observable state of the field. It is
// confined to one logical owner at a time: the host mutates it only through
// the field's entry points, and the driver commits each cycle's outcome as
// a unit.
type Model struct {
	raw     string
	display string
	region  string
	valid   bool
	errMsg  string
}

// Raw returns the sanitized user input: digits plus an optional leading +.
func (m *Model) Raw() string { return m.raw }

// Display returns the last successfully formatted value, or the value the
// host last committed when no formatting has succeeded yet.
func (m *Model) Display() string { return m.display }

// Region returns the 2-letter ISO region code, empty when undetermined.
func (m *Model) Region() string { return m.region }

// Valid reports whether the current formatted number is a valid phone
// number for its region.
func (m *Model) Valid() bool { return m.valid }

// Err returns the most recent engine failure message, empty when none.
func (m *Model) Err() string { return m.errMsg }

// RegionFlag returns the flag emoji for the current region, empty when the
// region is undetermined.
func (m *Model) RegionFlag() string { return RegionFlag(m.region) }

func (m *Model) setRaw(raw string) { m.raw = raw }

func (m *Model) clearError() { m.errMsg = "" }

// apply commits one driver cycle atomically. Region and validity always
// reflect the cycle just run; the display only moves when formatting
// succeeded, and the error only moves when a stage failed (a fresh edit
// clears it before the next cycle).
func (m *Model) apply(res Result) {
	m.region = res.Region
	m.valid = res.Valid
	if res.HasDisplay {
		m.display = res.Display
	}
	if res.Err != "" {
		m.errMsg = res.Err
	}
}

// RegionFlag maps a 2-letter region code to its pair of Unicode regional
// indicator symbols. Anything but exactly two ASCII letters yields "".
func RegionFlag(region string) string {
	runes := []rune(region)
	if len(runes) != 2 {
		return ""
	}

	flag := make([]rune, 0, 2)
	for _, r := range runes {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r < 'A' || r > 'Z' {
			return ""
		}
		flag = append(flag, r+regionalIndicatorOffset)
	}
	return string(flag)
}
