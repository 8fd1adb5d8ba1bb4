package model

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// RegistryStore persists the single registry root owner.
type RegistryStore interface {
	// Init writes the owner if the registry row does not exist yet and
	// returns the persisted owner either way.
	Init(ctx context.Context, owner common.Address) (common.Address, error)
	Owner(ctx context.Context) (common.Address, error)
}
