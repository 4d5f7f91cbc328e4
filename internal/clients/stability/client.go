package stability

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"imgproxy/config"
	"imgproxy/internal/clients/provider"
	"imgproxy/internal/clients/transport"
	"imgproxy/utils"
)

const (
	providerName  = "Stability"
	defaultEngine = "stable-diffusion-xl-1024-v1-0"
)

type Client struct {
	apiKey     string
	baseUrl    string
	engine     string
	httpClient *http.Client
}

func NewClient(cfg config.StabilityConfig) *Client {
	return &Client{
		apiKey:     cfg.ApiKey,
		baseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		engine:     cfg.Engine,
		httpClient: &http.Client{},
	}
}

// Generate runs one text-to-image call. The upstream answers either with a
// JSON artifact list (base64 already applied) or with raw image bytes; both
// shapes normalize to image/png entries.
func (c *Client) Generate(ctx context.Context, prompt string, opts provider.Options) ([]provider.Image, error) {

	if c.apiKey == "" {
		return nil, &provider.ConfigError{Provider: providerName, Reason: "api key not configured"}
	}

	engine := c.engine
	if engine == "" {
		engine = defaultEngine
	}
	if opts.Model != "" {
		engine = opts.Model
	}

	body := generateRequest{
		TextPrompts: []textPrompt{{Text: prompt}},
		CfgScale:    opts.CfgScale,
		Width:       opts.Width,
		Height:      opts.Height,
		Samples:     opts.Samples,
		Steps:       opts.Steps,
	}
	if body.CfgScale == 0 {
		body.CfgScale = 7
	}
	if body.Width == 0 {
		body.Width = 512
	}
	if body.Height == 0 {
		body.Height = 512
	}
	if body.Samples == 0 {
		body.Samples = 1
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", c.baseUrl, engine)
	resp, err := transport.PostJSON(*c.httpClient, ctx, url, body, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &provider.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       transport.Snippet(raw),
		}
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var parsed generateResponse
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, &provider.ShapeError{Provider: providerName, Detail: err.Error()}
		}

		images := make([]provider.Image, 0, len(parsed.Artifacts))
		for _, a := range parsed.Artifacts {
			images = append(images, provider.Image{B64: a.Base64, Mime: "image/png"})
		}
		return images, nil
	}

	// Raw binary payload; only the binary-to-text encoding changes.
	return []provider.Image{{B64: utils.EncodeImage(raw), Mime: "image/png"}}, nil
}
