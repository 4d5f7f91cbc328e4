package types

type GenerateRequest struct {
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
	Prompt   string `json:"prompt"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Steps    int    `json:"steps,omitempty"`
	// Options carries provider-specific overrides; entries here win over the
	// top-level fields above.
	Options map[string]any `json:"options,omitempty"`
}

type GeneratedImage struct {
	B64  string `json:"b64"`
	Mime string `json:"mime"`
}

type Meta struct {
	Uid       string `json:"uid"`
	Timestamp string `json:"timestamp"`
}

type GenerateResponse struct {
	Provider string           `json:"provider"`
	Model    string           `json:"model,omitempty"`
	Images   []GeneratedImage `json:"images"`
	Meta     Meta             `json:"meta"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    int   `json:"status"`
	TimeStamp int64 `json:"timestamp"`
}
