package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-kb-sync/1.0"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL (trailing slashes are
// trimmed) with the given per-request timeout. A zero timeout leaves the
// resty default in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. No retries are configured.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.dify.ai", 30*time.Second)
//	resp, err := client.R().SetAuthToken(key).Get("/v1/datasets")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
