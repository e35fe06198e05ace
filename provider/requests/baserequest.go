package requests

import (
	"context"
	"io"
	"maidx/pkg/config"
	"net/http"
	"time"
)

// Shared client so slow providers fail with a timeout instead of hanging.
var client = &http.Client{
	Timeout: 15 * time.Second,
}

// Do a authenticated request to the score provider developer API.
// Return the response.
func AuthRequest(ctx context.Context, url string, method string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	// Add the token from the .env
	req.Header.Set("Developer-Token", config.Provider.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return client.Do(req)
}

// Create a simple request and return it.
func Request(ctx context.Context, url string, method string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return client.Do(req)
}
