package model

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AccountStore defines persistence operations for accounts.
type AccountStore interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByOwner(ctx context.Context, owner common.Address) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)
	UpdateProfile(ctx context.Context, owner common.Address, description, avatarHash string) error
	Exists(ctx context.Context, owner common.Address) (bool, error)
}

// Account represents a registered participant profile.
// Owner and Username are immutable after creation.
type Account struct {
	Owner       common.Address
	Username    string
	Description string
	AvatarHash  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
