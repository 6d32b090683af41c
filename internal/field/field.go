package field

// Field wires the sanitizer, driver, and model together and owns the
// deferred-refresh contract: every raw-value change schedules exactly one
// formatting/validation cycle on the host's loop, and bursts of changes
// coalesce into a single cycle against the latest raw value.
//
// A Field and its Model are confined to the goroutine that owns the
// scheduler's loop; all entry points must be called from that owner.
type Field struct {
	model  *Model
	driver *Driver
	sched  Scheduler
	input  TextInput

	deletion      bool
	refreshQueued bool
}

// Option customizes a Field at construction.
type Option func(*Field)

// WithTextInput attaches the host's text widget. The field reads the
// displayed text from it after each edit and writes formatted values back.
func WithTextInput(input TextInput) Option {
	return func(f *Field) {
		f.input = input
	}
}

// WithConfigureInput lets the host customize its text widget once at
// construction without the field exposing the widget's full API.
func WithConfigureInput(configure func(TextInput)) Option {
	return func(f *Field) {
		if f.input != nil && configure != nil {
			configure(f.input)
		}
	}
}

// New creates a field on top of the given engine and scheduler.
// Options are applied in order, so WithTextInput must precede
// WithConfigureInput.
func New(engine Engine, sched Scheduler, opts ...Option) *Field {
	f := &Field{
		model:  &Model{},
		driver: NewDriver(engine),
		sched:  sched,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Model returns the observable state the host renders from.
func (f *Field) Model() *Model {
	return f.model
}

// WillChange is the pre-edit hook. The host calls it before each character
// change with the replacement text; an empty replacement marks the edit as
// a deletion for the sanitizer.
func (f *Field) WillChange(replacement string) {
	f.deletion = replacement == ""
}

// DidChange is the post-edit hook. The host calls it after the widget's text
// settled; the field sanitizes the text, commits the new raw value, and
// schedules a refresh for the loop's next turn.
func (f *Field) DidChange() {
	if f.input == nil {
		return
	}
	raw := Sanitize(f.input.Text(), f.deletion)
	f.deletion = false
	f.commitRaw(raw)
}

// SetRaw seeds or externally replaces the raw value, bypassing the
// sanitizer. Like an edit, it starts a fresh cycle: the previous error is
// cleared and a refresh is scheduled.
func (f *Field) SetRaw(raw string) {
	f.commitRaw(raw)
}

func (f *Field) commitRaw(raw string) {
	f.model.clearError()
	f.model.setRaw(raw)
	f.scheduleRefresh()
}

func (f *Field) scheduleRefresh() {
	if f.refreshQueued {
		return
	}
	f.refreshQueued = true
	f.sched.Schedule(func() {
		f.refreshQueued = false
		f.refresh()
	})
}

// refresh runs one driver cycle against the raw value current at execution
// time, commits the result to the model as a unit, and pushes the formatted
// value back into the host widget.
func (f *Field) refresh() {
	res := f.driver.Refresh(f.model.Raw())
	f.model.apply(res)
	if res.HasDisplay && f.input != nil {
		f.input.SetText(res.Display)
	}
}
