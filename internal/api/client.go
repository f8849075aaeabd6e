// Package api implements the transport client for the realitypuchyr REST
// API: default headers, bounded retries and uniform error normalization.
// Domain services build on the verb helpers and never see the raw
// net/http error types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxResponseBodySize   = 10 * 1024 * 1024 // 10 MB
	defaultRequestTimeout = 30 * time.Second
)

// HeaderAPIKey carries the environment-configured API key.
const HeaderAPIKey = "X-API-Key"

// Config holds client construction parameters. BaseURL is required,
// everything else has a sensible default.
type Config struct {
	BaseURL string
	APIKey  string
	// Locale is the ambient UI locale sent as Accept-Language unless a
	// request overrides it.
	Locale     string
	Timeout    time.Duration
	Retry      RetryPolicy
	HTTPClient *http.Client
	// Logger enables request/response debug logging when set.
	Logger *log.Logger
}

// Client executes one logical HTTP request per call against the API.
// It holds no per-request mutable state; the embedded http.Client and its
// connection pool are safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	locale     string
	timeout    time.Duration
	retry      RetryPolicy
	httpClient *http.Client
	logger     *log.Logger
}

// New creates a client. The zero RetryPolicy falls back to DefaultRetryPolicy.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	retry := cfg.Retry
	if retry.Delay <= 0 && retry.Retries == 0 && retry.ShouldRetry == nil {
		retry = DefaultRetryPolicy()
	}
	if retry.Delay < 0 {
		retry.Delay = 0
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		locale:     cfg.Locale,
		timeout:    timeout,
		retry:      retry,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// Request is the envelope for one logical call. Constructed fresh per call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-encoded when non-nil. RawBody takes precedence and is
	// sent verbatim with ContentType (multipart uploads).
	Body        any
	RawBody     []byte
	ContentType string
	// Headers are per-call overrides merged over the defaults.
	Headers http.Header
	// Locale overrides the client's ambient locale for Accept-Language.
	Locale string
	// Timeout overrides the configured per-attempt timeout when positive.
	Timeout time.Duration
	// Retries overrides the configured retry count when positive.
	Retries int
}

// Response is the envelope returned on success. Ownership passes to the caller.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
	Header     http.Header
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Do executes the request under the retry policy. It returns exactly one
// Response or one *Error, never both. Retries are strictly sequential and
// only happen for retryable failures before the last allowed attempt.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, newTransportError(err)
	}

	retries := c.retry.Retries
	if req.Retries > 0 {
		retries = req.Retries
	}

	var lastErr *Error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, newTransportError(ctx.Err())
			case <-time.After(c.retry.backoff(attempt)):
			}
			if c.logger != nil {
				c.logger.Printf("retrying %s %s (attempt %d/%d)", req.Method, req.Path, attempt+1, retries+1)
			}
		}

		resp, attemptErr := c.attempt(ctx, req, body, contentType)
		if attemptErr == nil {
			return resp, nil
		}
		lastErr = attemptErr

		if attempt == retries || !c.retry.shouldRetry(attemptErr) {
			break
		}
	}

	return nil, lastErr
}

// attempt runs a single round trip. The body is re-sent verbatim on every
// attempt since it is fully buffered up front.
func (c *Client) attempt(ctx context.Context, req *Request, body []byte, contentType string) (*Response, *Error) {
	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, req.Method, c.requestURL(req), bodyReader)
	if err != nil {
		return nil, newTransportError(err)
	}
	httpReq.Header = c.buildHeaders(req, contentType)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, newTransportError(err)
		}
		// Request went out, nothing came back: connection refused, DNS
		// failure, timeout. All retryable.
		return nil, newNetworkError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(&io.LimitedReader{R: httpResp.Body, N: maxResponseBodySize})
	if err != nil {
		return nil, newNetworkError(err)
	}

	if c.logger != nil {
		c.logger.Printf("%s %s -> %d", req.Method, req.Path, httpResp.StatusCode)
	}

	if httpResp.StatusCode >= 400 {
		return nil, newResponseError(httpResp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Body:       respBody,
		Header:     httpResp.Header,
	}, nil
}

func (c *Client) requestURL(req *Request) string {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	return u
}

// buildHeaders merges per-call overrides over the default set. A forced
// content type (multipart) wins over any caller override.
func (c *Client) buildHeaders(req *Request, contentType string) http.Header {
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		headers.Set(HeaderAPIKey, c.apiKey)
	}

	locale := req.Locale
	if locale == "" {
		locale = c.locale
	}
	if locale != "" {
		headers.Set("Accept-Language", locale)
	}

	for key, values := range req.Headers {
		headers[http.CanonicalHeaderKey(key)] = values
	}

	if contentType != "" {
		headers.Set("Content-Type", contentType)
	}

	return headers
}

func encodeBody(req *Request) ([]byte, string, error) {
	if req.RawBody != nil {
		return req.RawBody, req.ContentType, nil
	}
	if req.Body == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("marshal request body: %w", err)
	}
	return data, "", nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Upload issues a POST with a multipart/form-data body. The multipart
// content type is always forced, regardless of header overrides.
func (c *Client) Upload(ctx context.Context, path string, form *Form) (*Response, error) {
	body, contentType, err := form.Encode()
	if err != nil {
		return nil, newTransportError(err)
	}
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		RawBody:     body,
		ContentType: contentType,
	})
}
