package huggingface

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
	providerName = "HuggingFace"
	defaultModel = "stabilityai/stable-diffusion-2-1"
)

type Client struct {
	apiKey     string
	baseUrl    string
	model      string
	httpClient *http.Client
}

func NewClient(cfg config.HuggingFaceConfig) *Client {
	return &Client{
		apiKey:     cfg.ApiKey,
		baseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{},
	}
}

// Generate calls the inference endpoint for one model, addressed by name in
// the URL path. wait_for_model keeps cold models from answering 503 while
// they spin up (they still can; that surfaces as an upstream error).
func (c *Client) Generate(ctx context.Context, prompt string, opts provider.Options) ([]provider.Image, error) {

	if c.apiKey == "" {
		return nil, &provider.ConfigError{Provider: providerName, Reason: "api key not configured"}
	}

	model := c.model
	if model == "" {
		model = defaultModel
	}
	if opts.Model != "" {
		model = opts.Model
	}

	body := inferenceRequest{
		Inputs:  prompt,
		Options: inferenceOptions{WaitForModel: true},
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	url := fmt.Sprintf("%s/models/%s", c.baseUrl, model)
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

	contentType := resp.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var parsed inferenceResponse
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, &provider.ShapeError{Provider: providerName, Detail: err.Error()}
		}
		if parsed.Image == "" {
			return nil, &provider.ShapeError{Provider: providerName, Detail: "no image field in JSON response"}
		}
		return []provider.Image{{B64: parsed.Image, Mime: "image/png"}}, nil
	}

	mime := contentType
	if mime == "" {
		mime = "image/png"
	}
	return []provider.Image{{B64: utils.EncodeImage(raw), Mime: mime}}, nil
}
