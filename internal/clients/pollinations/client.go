package pollinations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"imgproxy/config"
	"imgproxy/internal/clients/provider"
	"imgproxy/internal/clients/transport"
	"imgproxy/utils"
)

const providerName = "Pollinations"

// Client is the best-effort adapter: no credential required, request knobs
// beyond the prompt are not supported upstream and silently dropped.
type Client struct {
	apiKey     string
	baseUrl    string
	httpClient *http.Client
}

func NewClient(cfg config.PollinationsConfig) *Client {
	return &Client{
		apiKey:     cfg.ApiKey,
		baseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		httpClient: &http.Client{},
	}
}

func (c *Client) Generate(ctx context.Context, prompt string, _ provider.Options) ([]provider.Image, error) {

	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	resp, err := transport.PostJSON(*c.httpClient, ctx, c.baseUrl+"/generate", generateRequest{Prompt: prompt}, headers)
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

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &provider.ShapeError{Provider: providerName, Detail: err.Error()}
	}

	if parsed.Image != "" {
		mime, b64, ok := utils.SplitDataURI(parsed.Image)
		if !ok {
			return nil, &provider.ShapeError{Provider: providerName, Detail: "image field is not a base64 data URI"}
		}
		return []provider.Image{{B64: b64, Mime: mime}}, nil
	}

	if parsed.Url != "" {
		return c.fetchImage(ctx, parsed.Url)
	}

	// Nothing generated; the caller gets an empty list rather than an error.
	return []provider.Image{}, nil
}

func (c *Client) fetchImage(ctx context.Context, url string) ([]provider.Image, error) {

	resp, err := transport.Fetch(*c.httpClient, ctx, url, nil)
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

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/png"
	}
	return []provider.Image{{B64: utils.EncodeImage(raw), Mime: mime}}, nil
}
