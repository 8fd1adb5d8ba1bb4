package handler

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chirpnet/chirper-server/internal/apierrors"
	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
)

// FeedService defines business operations for tweets, the treasury and the
// event log.
type FeedService interface {
	AddTweet(ctx context.Context, author common.Address, content, imageURL string, value *big.Int) (model.Tweet, error)
	DeleteTweet(ctx context.Context, caller common.Address, id int64) error
	GetTweet(ctx context.Context, id int64) (model.Tweet, error)
	ListTweets(ctx context.Context, includeDeleted bool) ([]model.Tweet, error)
	TreasuryBalance(ctx context.Context) (*big.Int, error)
	ListEvents(ctx context.Context, afterSeq int64, limit int32) ([]model.Event, error)
}

// Feed handles JSON-RPC endpoints for tweets.
type Feed struct {
	feedService    FeedService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewFeed creates a new Feed handler.
func NewFeed(feedService FeedService, contextManager model.ContextManager, logger *logger.Logger) *Feed {
	return &Feed{
		feedService:    feedService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type addTweetParams struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	// Value is the attached payment as a decimal wei string.
	Value string `json:"value"`
}

type deleteTweetParams struct {
	ID int64 `json:"id"`
}

type getTweetParams struct {
	ID int64 `json:"id"`
}

type listTweetsParams struct {
	IncludeDeleted bool `json:"includeDeleted"`
}

type listEventsParams struct {
	AfterSeq int64 `json:"afterSeq"`
	Limit    int32 `json:"limit"`
}

type tweetResult struct {
	ID        int64      `json:"id"`
	Author    string     `json:"author"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"imageUrl"`
	PaidWei   string     `json:"paidWei"`
	Deleted   bool       `json:"deleted"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

type addTweetResult struct {
	ID int64 `json:"id"`
}

type balanceResult struct {
	BalanceWei string `json:"balanceWei"`
}

type eventResult struct {
	Seq       int64     `json:"seq"`
	Kind      string    `json:"kind"`
	TweetID   int64     `json:"tweetId"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Routes returns the feed method table.
func (h *Feed) Routes() []Route {
	return []Route{
		{Method: "tweet.add", Handle: h.addTweet},
		{Method: "tweet.delete", Handle: h.deleteTweet},
		{Method: "tweet.get", Public: true, Handle: h.getTweet},
		{Method: "tweet.list", Public: true, Handle: h.listTweets},
		{Method: "treasury.balance", Public: true, Handle: h.treasuryBalance},
		{Method: "events.list", Public: true, Handle: h.listEvents},
	}
}

func (h *Feed) addTweet(ctx context.Context, params json.RawMessage) (any, error) {
	var req addTweetParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	caller, ok := h.contextManager.GetCallerFromContext(ctx)
	if !ok {
		return nil, apierrors.NewErrMissingAuthorizationToken()
	}

	value, err := parseWei(req.Value)
	if err != nil {
		return nil, err
	}

	tweet, err := h.feedService.AddTweet(ctx, caller, req.Content, req.ImageURL, value)
	if err != nil {
		h.logger.Error("Feed handler: add tweet failed",
			"caller", caller.Hex(),
			"error", err.Error())
		return nil, err
	}

	return addTweetResult{ID: tweet.ID}, nil
}

func (h *Feed) deleteTweet(ctx context.Context, params json.RawMessage) (any, error) {
	var req deleteTweetParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	caller, ok := h.contextManager.GetCallerFromContext(ctx)
	if !ok {
		return nil, apierrors.NewErrMissingAuthorizationToken()
	}

	if err := h.feedService.DeleteTweet(ctx, caller, req.ID); err != nil {
		h.logger.Error("Feed handler: delete tweet failed",
			"id", req.ID,
			"caller", caller.Hex(),
			"error", err.Error())
		return nil, err
	}

	return struct{}{}, nil
}

func (h *Feed) getTweet(ctx context.Context, params json.RawMessage) (any, error) {
	var req getTweetParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	tweet, err := h.feedService.GetTweet(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return convertTweet(tweet), nil
}

func (h *Feed) listTweets(ctx context.Context, params json.RawMessage) (any, error) {
	var req listTweetsParams
	if len(params) > 0 {
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
	}

	tweets, err := h.feedService.ListTweets(ctx, req.IncludeDeleted)
	if err != nil {
		return nil, err
	}

	results := make([]tweetResult, 0, len(tweets))
	for _, tweet := range tweets {
		results = append(results, convertTweet(tweet))
	}

	return results, nil
}

func (h *Feed) treasuryBalance(ctx context.Context, _ json.RawMessage) (any, error) {
	balance, err := h.feedService.TreasuryBalance(ctx)
	if err != nil {
		return nil, err
	}

	return balanceResult{BalanceWei: balance.String()}, nil
}

func (h *Feed) listEvents(ctx context.Context, params json.RawMessage) (any, error) {
	var req listEventsParams
	if len(params) > 0 {
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
	}

	events, err := h.feedService.ListEvents(ctx, req.AfterSeq, req.Limit)
	if err != nil {
		return nil, err
	}

	results := make([]eventResult, 0, len(events))
	for _, event := range events {
		result := eventResult{
			Seq:       event.Seq,
			Kind:      string(event.Kind),
			TweetID:   event.TweetID,
			CreatedAt: event.CreatedAt,
		}
		if event.Author != nil {
			result.Author = event.Author.Hex()
		}
		results = append(results, result)
	}

	return results, nil
}

func convertTweet(tweet model.Tweet) tweetResult {
	result := tweetResult{
		ID:        tweet.ID,
		Author:    tweet.Author.Hex(),
		Content:   tweet.Content,
		ImageURL:  tweet.ImageURL,
		Deleted:   tweet.Deleted,
		CreatedAt: tweet.CreatedAt,
		DeletedAt: tweet.DeletedAt,
	}
	if tweet.PaidWei != nil {
		result.PaidWei = tweet.PaidWei.String()
	}
	return result
}
