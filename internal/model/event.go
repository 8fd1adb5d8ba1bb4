package model

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EventStore reads the append-only notification log. Writes happen inside
// the mutating transactions of TweetStore.
type EventStore interface {
	ListAfter(ctx context.Context, afterSeq int64, limit int32) ([]Event, error)
}

// EventKind enumerates notification kinds.
type EventKind string

const (
	// EventTweetAdded is appended when a tweet is created.
	EventTweetAdded EventKind = "TweetAdded"
	// EventTweetDeleted is appended when a tweet is soft-deleted.
	EventTweetDeleted EventKind = "TweetDeleted"
)

// Event is one entry of the append-only output log. Author is set for
// TweetAdded and nil for TweetDeleted.
type Event struct {
	Seq       int64
	Kind      EventKind
	TweetID   int64
	Author    *common.Address
	CreatedAt time.Time
}
