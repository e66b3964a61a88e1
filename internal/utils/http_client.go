package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own resty.Client, connection
// pool and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewJSONClient creates an HTTPClient bound to baseURL that sends and accepts
// JSON, times out after timeout and retries transport failures retries times.
func NewJSONClient(baseURL string, timeout time.Duration, retries int) (*HTTPClient, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	client := NewHTTPClient()
	client.
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(retries).
		SetRetryWaitTime(100 * time.Millisecond).
		AddRetryCondition(func(_ *resty.Response, err error) bool {
			return err != nil
		})

	return client, nil
}

// NormalizeBaseURL adds a missing http:// scheme and strips trailing slashes.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
