// Package upstream holds the thin HTTP clients for the two backing
// services the gateway proxies to: the user service (credentials, user
// CRUD) and the product service (product CRUD). The gateway adds no logic
// on top of them beyond status mapping.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusError reports a non-success upstream status together with the raw
// response body, so callers can forward upstream semantics.
type StatusError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream responded %d", e.StatusCode)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do sends one JSON request and returns the raw body with its status. Only
// transport and encoding faults surface as errors; status mapping is the
// caller's concern.
func (c *client) do(ctx context.Context, method, path, bearer string, body any) (json.RawMessage, int, error) {
	var payload io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		payload = bytes.NewReader(blob)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return blob, resp.StatusCode, nil
}
