package wallet

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no mint relay endpoint is set.
var ErrNotConfigured = errors.New("mint relay not configured")

// MintReceipt is the on-chain result of a badge mint.
type MintReceipt struct {
	TokenID string
	TxHash  string
}

// Minter mints a non-transferable skill badge to a wallet. The token
// is bound to the recipient: transfers are rejected by the contract, so
// a badge is evidence the holder personally earned the certification.
type Minter interface {
	MintBadge(ctx context.Context, walletAddress, metadataCID string) (MintReceipt, error)
}
