// SPDX-License-Identifier: Apache-2.0

// Package utils provides small helpers shared across the application:
// HTTP client construction and request id generation.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds *resty.Client to expose all of
// its methods directly while leaving room for application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a fresh HTTPClient with its own configuration,
// connection pool, and state. Every outbound request carries a unique
// X-Request-Id header so runs can be correlated with server logs.
func NewHTTPClient() *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New()
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", ids.Generate())
		return nil
	})

	return &HTTPClient{Client: client}
}
