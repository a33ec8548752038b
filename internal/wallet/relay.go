package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RelayMinter is a Minter backed by a mint relay service. The relay
// holds the issuer key and submits the transaction; the client only
// names the recipient and the pinned metadata.
type RelayMinter struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

// RelayOption configures a RelayMinter.
type RelayOption func(*RelayMinter)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) RelayOption {
	return func(m *RelayMinter) { m.http = h }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) RelayOption {
	return func(m *RelayMinter) { m.log = l }
}

// NewRelayMinter creates a Minter that calls the relay at baseURL.
func NewRelayMinter(baseURL, apiKey string, opts ...RelayOption) *RelayMinter {
	m := &RelayMinter{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 60 * time.Second},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type mintRequest struct {
	Recipient   string `json:"recipient"`
	MetadataCID string `json:"metadata_cid"`
}

type mintResponse struct {
	TokenID string `json:"token_id"`
	TxHash  string `json:"tx_hash"`
}

// MintBadge submits a mint through the relay and returns the receipt.
func (m *RelayMinter) MintBadge(ctx context.Context, walletAddress, metadataCID string) (MintReceipt, error) {
	if m.baseURL == "" {
		return MintReceipt{}, ErrNotConfigured
	}

	body, err := json.Marshal(mintRequest{Recipient: walletAddress, MetadataCID: metadataCID})
	if err != nil {
		return MintReceipt{}, fmt.Errorf("marshal mint request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.baseURL+"/v1/mint", bytes.NewReader(body))
	if err != nil {
		return MintReceipt{}, fmt.Errorf("build mint request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return MintReceipt{}, fmt.Errorf("mint request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		m.log.Warn("mint rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", b))
		return MintReceipt{}, fmt.Errorf("mint failed: status %d", resp.StatusCode)
	}

	var mr mintResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return MintReceipt{}, fmt.Errorf("decode mint response: %w", err)
	}
	if mr.TxHash == "" {
		return MintReceipt{}, fmt.Errorf("mint response missing tx hash")
	}

	m.log.Info("badge minted",
		zap.String("recipient", walletAddress),
		zap.String("token_id", mr.TokenID),
		zap.String("tx_hash", mr.TxHash))
	return MintReceipt{TokenID: mr.TokenID, TxHash: mr.TxHash}, nil
}
