// Package apiclient talks to the brewing controller's HTTP API under /api.
//
// Requests are never retried and status codes are not inspected; the caller's
// context bounds every request. Failures surface as *TransportError when the
// request could not be made, or *DecodeError when a response body does not
// decode into the expected shape.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const BasePath = "/api"

type Client struct {
	root string
	http *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client. The given client is used as is,
// without the tracing transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New returns a client for the controller at baseURL, e.g.
// "http://brewer.local:5000". An empty baseURL yields relative request paths.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		root: strings.TrimRight(baseURL, "/") + BasePath,
		http: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJSON fetches endpoint and decodes the body into T regardless of the
// response status.
func GetJSON[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	var out T
	resp, err := c.do(ctx, http.MethodGet, c.root+endpoint)
	if err != nil {
		return out, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, &DecodeError{Endpoint: endpoint, Err: err}
	}
	return out, nil
}

// PutWithParams sends a body-less PUT with params encoded in the query string
// and discards the response body.
func (c *Client) PutWithParams(ctx context.Context, endpoint string, params QueryParams) error {
	query, err := params.Encode()
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPut, c.root+endpoint+"?"+query)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (c *Client) Delete(ctx context.Context, endpoint string) error {
	resp, err := c.do(ctx, http.MethodDelete, c.root+endpoint)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (c *Client) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	return resp, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
