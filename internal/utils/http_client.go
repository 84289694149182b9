// Package utils provides small helpers shared by the transport layers:
// the outbound HTTP client and response writers.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client talking JSON to baseURL.
//
// timeout is the client-wide upper bound of a single request; callers that
// need a tighter deadline per call pass a context with its own deadline.
// Retries are disabled: a failed call is reported to the caller immediately.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
