package transport

// PreviewRequest carries one edit of the host text widget: the displayed
// text after the change and whether the change deleted characters.
type PreviewRequest struct {
	Text     string `json:"text" validate:"max=256"`
	Deletion bool   `json:"deletion"`
}

// ValidateRequest carries an already-sanitized raw value, bypassing the
// sanitizer (the "seed raw directly" entry point).
type ValidateRequest struct {
	Raw string `json:"raw" validate:"required,max=256"`
}

// NumberStateResponse is the observable state after one pipeline cycle.
type NumberStateResponse struct {
	Raw        string `json:"raw"`
	Display    string `json:"display"`
	Region     string `json:"region,omitempty"`
	RegionFlag string `json:"regionFlag,omitempty"`
	RegionName string `json:"regionName,omitempty"`
	Valid      bool   `json:"valid"`
	Error      string `json:"error,omitempty"`
}

// RegionResponse describes a dialing region.
type RegionResponse struct {
	Code          string `json:"code"`
	Flag          string `json:"flag,omitempty"`
	Name          string `json:"name,omitempty"`
	CallingCode   int    `json:"callingCode"`
	ExampleMobile string `json:"exampleMobile,omitempty"`
}
