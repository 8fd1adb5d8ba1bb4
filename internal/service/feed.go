package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"

	"github.com/chirpnet/chirper-server/internal/apierrors"
	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
)

// MinimumFeeWei is the fixed fee for posting a tweet: 0.01 native units.
// Equal amounts are accepted, there is no upper bound and no change returned.
var MinimumFeeWei = new(big.Int).Div(big.NewInt(params.Ether), big.NewInt(100))

// OwnerProvider resolves the registry root owner used as the authorization
// anchor for privileged operations.
type OwnerProvider interface {
	Owner(ctx context.Context) (common.Address, error)
}

// Feed implements paid tweet creation, soft deletion and the read surface
// over tweets, the treasury and the event log.
type Feed struct {
	tweetStore    model.TweetStore
	treasuryStore model.TreasuryStore
	eventStore    model.EventStore
	registry      OwnerProvider
	logger        *logger.Logger
}

func NewFeed(
	tweetStore model.TweetStore,
	treasuryStore model.TreasuryStore,
	eventStore model.EventStore,
	registry OwnerProvider,
	logger *logger.Logger,
) *Feed {
	return &Feed{
		tweetStore:    tweetStore,
		treasuryStore: treasuryStore,
		eventStore:    eventStore,
		registry:      registry,
		logger:        logger,
	}
}

// requireFee is the payment gate: the attached value must meet the fixed
// minimum or the whole call aborts with no state change.
func (s *Feed) requireFee(value *big.Int) error {
	if value == nil || value.Cmp(MinimumFeeWei) < 0 {
		return apierrors.NewErrInsufficientFee()
	}
	return nil
}

// AddTweet stores a new tweet for the caller. Account registration is not a
// precondition; only the fee is. The attached value is credited to the
// custodial balance in the same transaction that assigns the tweet id and
// appends the TweetAdded event.
func (s *Feed) AddTweet(ctx context.Context, author common.Address, content, imageURL string, value *big.Int) (model.Tweet, error) {
	s.logger.Debug("Feed service: adding tweet",
		"author", author.Hex())

	if err := s.requireFee(value); err != nil {
		s.logger.Info("Feed service: fee below minimum",
			"author", author.Hex())
		return model.Tweet{}, err
	}

	tweet := model.Tweet{
		Author:   author,
		Content:  content,
		ImageURL: imageURL,
	}

	saved, err := s.tweetStore.Create(ctx, tweet, value)
	if err != nil {
		s.logger.Error("Feed service: failed to create tweet",
			"author", author.Hex(),
			"error", err.Error())
		return model.Tweet{}, fmt.Errorf("failed to create tweet: %w", err)
	}

	s.logger.Info("Feed service: tweet added",
		"id", saved.ID,
		"author", author.Hex(),
		"paid_wei", value.String())

	return saved, nil
}

// DeleteTweet soft-deletes a tweet. Authorization is against the registry
// root owner, not the tweet's author. Precondition failures are reported in
// a fixed order: invalid id, then ownership, then repeated deletion.
func (s *Feed) DeleteTweet(ctx context.Context, caller common.Address, id int64) error {
	s.logger.Debug("Feed service: deleting tweet",
		"id", id,
		"caller", caller.Hex())

	tweet, err := s.tweetStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrInvalidTweetID(id)
	}
	if err != nil {
		return fmt.Errorf("failed to get tweet by id: %w", err)
	}

	owner, err := s.registry.Owner(ctx)
	if err != nil {
		return fmt.Errorf("failed to get registry owner: %w", err)
	}
	if caller != owner {
		s.logger.Info("Feed service: delete rejected for non-owner",
			"id", id,
			"caller", caller.Hex())
		return apierrors.NewErrNotOwner()
	}

	if tweet.Deleted {
		return apierrors.NewErrTweetAlreadyDeleted(id)
	}

	if err := s.tweetStore.MarkDeleted(ctx, id); err != nil {
		s.logger.Error("Feed service: failed to mark tweet deleted",
			"id", id,
			"error", err.Error())
		return fmt.Errorf("failed to mark tweet deleted: %w", err)
	}

	s.logger.Info("Feed service: tweet deleted",
		"id", id)

	return nil
}

// GetTweet returns a tweet by id, deleted or not.
func (s *Feed) GetTweet(ctx context.Context, id int64) (model.Tweet, error) {
	tweet, err := s.tweetStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Tweet{}, apierrors.NewErrInvalidTweetID(id)
	}
	if err != nil {
		return model.Tweet{}, fmt.Errorf("failed to get tweet by id: %w", err)
	}

	return tweet, nil
}

// ListTweets returns tweets in id order, optionally including deleted ones.
func (s *Feed) ListTweets(ctx context.Context, includeDeleted bool) ([]model.Tweet, error) {
	tweets, err := s.tweetStore.List(ctx, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}

	return tweets, nil
}

// TreasuryBalance returns the custodial balance in wei.
func (s *Feed) TreasuryBalance(ctx context.Context) (*big.Int, error) {
	balance, err := s.treasuryStore.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get treasury balance: %w", err)
	}

	return balance, nil
}

// ListEvents returns entries of the append-only notification log.
func (s *Feed) ListEvents(ctx context.Context, afterSeq int64, limit int32) ([]model.Event, error) {
	if limit <= 0 {
		limit = 100
	}

	events, err := s.eventStore.ListAfter(ctx, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}
