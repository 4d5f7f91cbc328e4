package provider

import (
	"context"
	"errors"
	"fmt"
)

// Image is the normalized output every adapter produces: the upstream bytes
// base64-encoded, untouched otherwise, plus their mime type.
type Image struct {
	B64  string `json:"b64"`
	Mime string `json:"mime"`
}

// Generator is implemented once per upstream service. A call makes one or two
// outbound requests and blocks until they resolve; there are no retries and no
// adapter-level timeout beyond what the transport enforces.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) ([]Image, error)
}

// ErrUnknownProvider is returned by dispatch when the caller names a provider
// outside the closed set.
var ErrUnknownProvider = errors.New("unknown provider")

// UpstreamError reports a non-success status from a provider. The body is the
// upstream response text, bounded by the transport.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error %d: %s", e.Provider, e.StatusCode, e.Body)
}

// ConfigError means the selected adapter is missing server-side configuration,
// typically its API key. No network call was attempted.
type ConfigError struct {
	Provider string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

// ShapeError means the provider answered successfully but in a shape the
// adapter cannot parse.
type ShapeError struct {
	Provider string
	Detail   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: unsupported response shape: %s", e.Provider, e.Detail)
}
