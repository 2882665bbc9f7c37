package lmv1

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultMaxBodySnippet = 512

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Response struct {
	StatusCode int
	Body       []byte
}

type Client struct {
	baseURL string
	client  HTTPClient
	maxBody int64
}

func NewClient(baseURL string, client HTTPClient, maxBody int) *Client {
	if maxBody <= 0 {
		maxBody = DefaultMaxBodySnippet
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		maxBody: int64(maxBody),
	}
}

// Send dispatches a signed request. A non-nil error means no usable response
// was received.
func (c *Client) Send(ctx context.Context, req *SignedRequest) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header = req.Header()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// BaseURL returns the REST endpoint of a LogicMonitor portal.
func BaseURL(company string) string {
	return "https://" + company + ".logicmonitor.com/santaba/rest"
}

type TransportConfig struct {
	Timeout            time.Duration
	ProxyURL           string
	InsecureSkipVerify bool
}

func NewHTTPClient(cfg TransportConfig) (*http.Client, error) {
	if cfg.Timeout <= 0 {
		return nil, errors.New("request timeout must be positive")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url %q: %w", cfg.ProxyURL, err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}, nil
}
