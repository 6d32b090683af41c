package field

// Result is the outcome of one formatting/validation cycle. Zero values are
// the safe "unknown" state: no region, not valid, display untouched.
type Result struct {
	// Display is the progressively formatted value; meaningful only when
	// HasDisplay is true.
	Display string
	// HasDisplay reports whether the format stage produced a value.
	HasDisplay bool
	// Region is the ISO region derived from the formatted value, empty
	// when undetermined.
	Region string
	// Valid reports whether the formatted value is a valid number.
	Valid bool
	// Err carries the engine failure message when a stage failed.
	Err string
}

// Driver runs the three-stage format -> region -> validate pipeline against
// the engine. Each stage short-circuits: an engine failure or an empty
// intermediate result resets the downstream fields to unknown rather than
// presenting a half-consistent state.
type Driver struct {
	engine Engine
}

// NewDriver creates a driver on top of the given engine.
func NewDriver(engine Engine) *Driver {
	return &Driver{engine: engine}
}

// Refresh runs one full cycle for the given raw value. It is a pure function
// of raw and the engine: callers coalesce bursts of raw changes and invoke
// it once with the latest value.
func (d *Driver) Refresh(raw string) Result {
	formatted, err := d.engine.FormatIncremental(raw)
	if err != nil {
		return Result{Err: err.Error()}
	}
	if formatted == "" {
		return Result{}
	}

	res := Result{Display: formatted, HasDisplay: true}

	region, err := d.engine.RegionCode(formatted)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	if region == "" {
		return res
	}

	valid, known, err := d.engine.IsValidNumber(formatted)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	// A missing validity answer keeps the region already extracted; only
	// the validity itself stays unknown.
	res.Region = region
	if known {
		res.Valid = valid
	}
	return res
}
