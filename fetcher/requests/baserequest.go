package requests

import (
	"fmt"
	"net/http"
	"riftrewind/pkg/config"
	"time"
)

var client = &http.Client{Timeout: 30 * time.Second}

// AuthRequest does a authenticated request to the Riot API.
// Return the response.
func AuthRequest(url string, method string, params map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if config.ApiKey == "" {
		return nil, fmt.Errorf("can't do a authenticated request without the API key")
	}

	// Add the query params if any.
	if len(params) > 0 {
		q := req.URL.Query()
		for key, value := range params {
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	// Add the token from the .env
	req.Header.Set("X-Riot-Token", config.ApiKey)
	return client.Do(req)
}

// Request creates a simple unauthenticated request and returns it.
func Request(url string, method string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	return client.Do(req)
}
