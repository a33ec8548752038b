package pin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the hosted pinning API endpoint.
const DefaultBaseURL = "https://api.pinata.cloud"

// ErrNotConfigured is returned when no API token is set.
var ErrNotConfigured = errors.New("pinning service not configured")

// Pinner pins a JSON document to content-addressed storage and returns
// its CID.
type Pinner interface {
	PinJSON(ctx context.Context, name string, content any) (cid string, err error)
}

// Client is a Pinner backed by the Pinata pinning API.
type Client struct {
	baseURL string
	jwt     string
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a pinning client authenticated with a JWT.
func NewClient(jwt string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		jwt:     jwt,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type pinRequest struct {
	PinataContent  any          `json:"pinataContent"`
	PinataMetadata *pinMetadata `json:"pinataMetadata,omitempty"`
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int    `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// PinJSON pins a JSON document and returns its CID.
func (c *Client) PinJSON(ctx context.Context, name string, content any) (string, error) {
	if c.jwt == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(pinRequest{
		PinataContent:  content,
		PinataMetadata: &pinMetadata{Name: name},
	})
	if err != nil {
		return "", fmt.Errorf("marshal pin request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/pinning/pinJSONToIPFS", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build pin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("pin request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("pin request rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", b))
		return "", fmt.Errorf("pin request failed: status %d", resp.StatusCode)
	}

	var pr pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("decode pin response: %w", err)
	}
	if pr.IpfsHash == "" {
		return "", errors.New("pin response missing CID")
	}

	c.log.Info("pinned metadata",
		zap.String("name", name),
		zap.String("cid", pr.IpfsHash),
		zap.Duration("elapsed", time.Since(start)))
	return pr.IpfsHash, nil
}
