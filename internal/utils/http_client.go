package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client used to talk to the document server.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client with the given per-request timeout.
// Retries are left to the caller's backoff policy, so resty's own retry count
// stays at zero.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
