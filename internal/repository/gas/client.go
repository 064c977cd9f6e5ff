package gas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/relay"
)

const plainTextContentType = "text/plain;charset=utf-8"

// Client talks to the Apps Script web app. The base URL is read on every call
// so a missing value fails that call only.
type Client struct {
	baseURL    func() string
	httpClient *http.Client
}

// NewClient creates a client for a fixed base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientFunc(func() string { return baseURL }, &http.Client{Timeout: timeout})
}

// NewClientFunc creates a client that resolves the base URL per request.
func NewClientFunc(baseURL func() string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Do implements relay.Gateway.
func (c *Client) Do(ctx context.Context, req relay.Request) (json.RawMessage, error) {
	base := c.baseURL()
	if base == "" {
		return nil, relay.ErrMissingBackendURL
	}

	target, err := buildURL(base, req)
	if err != nil {
		return nil, &relay.TransportError{Err: err}
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &relay.TransportError{Err: err}
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", plainTextContentType)
	}
	httpReq.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &relay.TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &relay.TransportError{Err: fmt.Errorf("read backend response: %w", err)}
	}

	if !json.Valid(raw) {
		return nil, &relay.UpstreamProtocolError{StatusCode: resp.StatusCode, Raw: string(raw)}
	}
	return json.RawMessage(raw), nil
}

func buildURL(base string, req relay.Request) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid backend url %q", base)
	}

	q := u.Query()
	for key, values := range req.Query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	if req.Action != "" {
		q.Set("action", req.Action)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
