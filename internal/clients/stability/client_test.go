package stability

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"imgproxy/config"
	"imgproxy/internal/clients/provider"
)

func newTestClient(baseUrl string) *Client {
	return NewClient(config.StabilityConfig{ApiKey: "sk-test", BaseUrl: baseUrl})
}

func TestClient_Generate(t *testing.T) {
	t.Run("artifacts_json", func(t *testing.T) {
		var gotReq generateRequest
		var gotAuth, gotPath string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(generateResponse{
				Artifacts: []artifact{{Base64: "AAAA"}, {Base64: "BBBB"}},
			})
		}))
		defer srv.Close()

		images, err := newTestClient(srv.URL).Generate(context.Background(), "a cat", provider.Options{})
		require.NoError(t, err)

		require.Equal(t, "Bearer sk-test", gotAuth)
		require.Equal(t, "/v1/generation/"+defaultEngine+"/text-to-image", gotPath)

		// adapter defaults
		require.Equal(t, "a cat", gotReq.TextPrompts[0].Text)
		require.Equal(t, 7.0, gotReq.CfgScale)
		require.Equal(t, 512, gotReq.Width)
		require.Equal(t, 512, gotReq.Height)
		require.Equal(t, 1, gotReq.Samples)

		require.Equal(t, []provider.Image{
			{B64: "AAAA", Mime: "image/png"},
			{B64: "BBBB", Mime: "image/png"},
		}, images)
	})

	t.Run("caller_options_override_defaults", func(t *testing.T) {
		var gotReq generateRequest
		var gotPath string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(generateResponse{})
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Generate(context.Background(), "a cat", provider.Options{
			Model:    "stable-diffusion-v1-6",
			Width:    1024,
			Height:   768,
			Steps:    40,
			CfgScale: 9,
			Samples:  2,
		})
		require.NoError(t, err)

		require.Equal(t, "/v1/generation/stable-diffusion-v1-6/text-to-image", gotPath)
		require.Equal(t, 1024, gotReq.Width)
		require.Equal(t, 768, gotReq.Height)
		require.Equal(t, 40, gotReq.Steps)
		require.Equal(t, 9.0, gotReq.CfgScale)
		require.Equal(t, 2, gotReq.Samples)
	})

	t.Run("raw_binary", func(t *testing.T) {
		raw := []byte{0x89, 0x50, 0x4e, 0x47, 0x01, 0x02}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(raw)
		}))
		defer srv.Close()

		images, err := newTestClient(srv.URL).Generate(context.Background(), "a cat", provider.Options{})
		require.NoError(t, err)
		require.Len(t, images, 1)
		require.Equal(t, "image/png", images[0].Mime)

		decoded, err := base64.StdEncoding.DecodeString(images[0].B64)
		require.NoError(t, err)
		require.Equal(t, raw, decoded)
	})

	t.Run("upstream_failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte("insufficient credits"))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Generate(context.Background(), "a cat", provider.Options{})

		var upstream *provider.UpstreamError
		require.ErrorAs(t, err, &upstream)
		require.Equal(t, http.StatusPaymentRequired, upstream.StatusCode)
		require.Contains(t, err.Error(), "Stability error 402")
		require.Contains(t, err.Error(), "insufficient credits")
	})

	t.Run("missing_api_key", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer srv.Close()

		c := NewClient(config.StabilityConfig{BaseUrl: srv.URL})
		_, err := c.Generate(context.Background(), "a cat", provider.Options{})

		var cfgErr *provider.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		require.Zero(t, calls, "no network call may happen without a credential")
	})
}
