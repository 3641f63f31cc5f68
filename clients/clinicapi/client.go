// Package clinicapi is a client for the clinic REST API that owns doctors,
// schedules, patients and queues.
package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"klinik/models"
	"klinik/utils"

	"go.uber.org/zap"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 4 << 20
)

// Client talks to the clinic API. It performs no retries and no caching; every
// call reflects the upstream state at the time it is made.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *utils.BookingMetrics
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func WithMetrics(m *utils.BookingMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client rooted at baseURL (e.g. "https://api.klinik.id").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends one JSON request and decodes the envelope's data into out (when
// non-nil). The raw body is returned for callers that need fields outside the
// envelope.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) ([]byte, error) {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("clinicapi: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, token, query, contentType, reader, out)
}

// send is do for an already encoded body.
func (c *Client) send(ctx context.Context, method, path, token string, query url.Values, contentType string, body io.Reader, out interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("clinicapi: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(method, "error")
		c.logger.Error("Clinic API request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("clinicapi: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveUpstream(method, strconv.Itoa(resp.StatusCode))
	c.logger.Debug("Clinic API response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("clinicapi: read %s %s: %w", method, path, err)
	}

	var env models.Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return raw, apiErr
	}
	if decodeErr != nil {
		return raw, fmt.Errorf("clinicapi: decode %s %s: %w", method, path, decodeErr)
	}
	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return raw, fmt.Errorf("clinicapi: decode data of %s %s: %w", method, path, err)
		}
	}
	return raw, nil
}

// message extracts the envelope message from a raw response body.
func message(raw []byte) string {
	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Message
}
