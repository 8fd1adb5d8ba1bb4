package model

import (
	"context"
	"math/big"
)

// TreasuryStore reads the contract's custodial balance. Credits happen inside
// the tweet creation transaction; there is no withdrawal operation.
type TreasuryStore interface {
	Balance(ctx context.Context) (*big.Int, error)
}
