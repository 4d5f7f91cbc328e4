package registry

import (
	"context"
	"fmt"

	"imgproxy/config"
	"imgproxy/internal/clients/huggingface"
	"imgproxy/internal/clients/pollinations"
	"imgproxy/internal/clients/provider"
	"imgproxy/internal/clients/stability"
)

// ProviderID names one of the upstream services. The set is closed; adding a
// provider means adding a constant, a Registry field, and a lookup case.
type ProviderID string

const (
	Stability    ProviderID = "stability"
	HuggingFace  ProviderID = "huggingface"
	Pollinations ProviderID = "pollinations"
)

// Registry holds one adapter per known provider. Fields are exported so tests
// can drop in fakes.
type Registry struct {
	Stability    provider.Generator
	HuggingFace  provider.Generator
	Pollinations provider.Generator
}

func New(cfg config.ProvidersConfig) *Registry {
	return &Registry{
		Stability:    stability.NewClient(cfg.Stability),
		HuggingFace:  huggingface.NewClient(cfg.HuggingFace),
		Pollinations: pollinations.NewClient(cfg.Pollinations),
	}
}

// Dispatch selects the adapter for id and runs it. Adapter errors pass
// through untouched; an id outside the known set wraps ErrUnknownProvider.
func (r *Registry) Dispatch(ctx context.Context, id ProviderID, prompt string, opts provider.Options) ([]provider.Image, error) {
	gen, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, prompt, opts)
}

func (r *Registry) lookup(id ProviderID) (provider.Generator, error) {
	switch id {
	case Stability:
		return r.Stability, nil
	case HuggingFace:
		return r.HuggingFace, nil
	case Pollinations:
		return r.Pollinations, nil
	default:
		return nil, fmt.Errorf("%w: %q", provider.ErrUnknownProvider, id)
	}
}
