package model

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// TweetStore defines persistence operations for tweets.
type TweetStore interface {
	// Create inserts the tweet, credits the treasury by paidWei and appends a
	// TweetAdded event, all in one transaction. The assigned id equals the
	// number of previously created tweets.
	Create(ctx context.Context, tweet Tweet, paidWei *big.Int) (Tweet, error)
	// GetByID returns the tweet whether or not it is deleted.
	GetByID(ctx context.Context, id int64) (Tweet, error)
	List(ctx context.Context, includeDeleted bool) ([]Tweet, error)
	// MarkDeleted flips the deleted flag and appends a TweetDeleted event in
	// one transaction. Returns ErrNotFound when no live tweet matches.
	MarkDeleted(ctx context.Context, id int64) error
}

// Tweet represents a stored post. Deletion is logical: the id stays valid
// for the tweet's entire lifetime.
type Tweet struct {
	ID        int64
	Author    common.Address
	Content   string
	ImageURL  string
	PaidWei   *big.Int
	Deleted   bool
	CreatedAt time.Time
	DeletedAt *time.Time
}
