package handler

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chirpnet/chirper-server/internal/apierrors"
	rpcctx "github.com/chirpnet/chirper-server/internal/api/rpc/context"
	"github.com/chirpnet/chirper-server/internal/mocks"
	"github.com/chirpnet/chirper-server/internal/model"
	"github.com/chirpnet/chirper-server/internal/testutil"
)

func TestFeed_AddTweet(t *testing.T) {
	feedService := &mocks.FeedService{}
	ctxMgr := rpcctx.NewManager()

	value := big.NewInt(10000000000000000)
	feedService.On("AddTweet", mock.Anything, caller, "gm", "", value).
		Return(model.Tweet{ID: 0, Author: caller, Content: "gm", PaidWei: value}, nil)

	h := NewFeed(feedService, ctxMgr, testutil.MakeNoopLogger())

	result, err := h.addTweet(callerContext(ctxMgr),
		json.RawMessage(`{"content":"gm","value":"10000000000000000"}`))
	require.NoError(t, err)
	assert.Equal(t, addTweetResult{ID: 0}, result)
	feedService.AssertExpectations(t)
}

func TestFeed_AddTweet_NoValueDefaultsToZero(t *testing.T) {
	feedService := &mocks.FeedService{}
	ctxMgr := rpcctx.NewManager()

	feedService.On("AddTweet", mock.Anything, caller, "free", "", big.NewInt(0)).
		Return(model.Tweet{}, apierrors.NewErrInsufficientFee())

	h := NewFeed(feedService, ctxMgr, testutil.MakeNoopLogger())

	_, err := h.addTweet(callerContext(ctxMgr), json.RawMessage(`{"content":"free"}`))
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeInsufficientFee, apiErr.RPCCode)
}

func TestFeed_AddTweet_MalformedValue(t *testing.T) {
	feedService := &mocks.FeedService{}
	ctxMgr := rpcctx.NewManager()

	h := NewFeed(feedService, ctxMgr, testutil.MakeNoopLogger())

	_, err := h.addTweet(callerContext(ctxMgr),
		json.RawMessage(`{"content":"gm","value":"0.01"}`))
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeInvalidParams, apiErr.RPCCode)
	feedService.AssertNotCalled(t, "AddTweet")
}

func TestFeed_DeleteTweet(t *testing.T) {
	feedService := &mocks.FeedService{}
	ctxMgr := rpcctx.NewManager()

	feedService.On("DeleteTweet", mock.Anything, caller, int64(3)).Return(nil)

	h := NewFeed(feedService, ctxMgr, testutil.MakeNoopLogger())

	_, err := h.deleteTweet(callerContext(ctxMgr), json.RawMessage(`{"id":3}`))
	require.NoError(t, err)
	feedService.AssertExpectations(t)
}

func TestFeed_GetTweet(t *testing.T) {
	feedService := &mocks.FeedService{}
	ctxMgr := rpcctx.NewManager()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	feedService.On("GetTweet", mock.Anything, int64(0)).
		Return(model.Tweet{
			ID:        0,
			Author:    caller,
			Content:   "gm",
			PaidWei:   big.NewInt(10000000000000000),
			CreatedAt: created,
		}, nil)

	h := NewFeed(feedService, ctxMgr, testutil.MakeNoopLogger())

	result, err := h.getTweet(context.Background(), json.RawMessage(`{"id":0}`))
	require.NoError(t, err)

	tweet, ok := result.(tweetResult)
	require.True(t, ok)
	assert.Equal(t, caller.Hex(), tweet.Author)
	assert.Equal(t, "10000000000000000", tweet.PaidWei)
	assert.False(t, tweet.Deleted)
	assert.Nil(t, tweet.DeletedAt)
}

func TestFeed_ListTweets_EmptyParams(t *testing.T) {
	feedService := &mocks.FeedService{}
	ctxMgr := rpcctx.NewManager()

	feedService.On("ListTweets", mock.Anything, false).
		Return([]model.Tweet{{ID: 0, Author: caller}}, nil)

	h := NewFeed(feedService, ctxMgr, testutil.MakeNoopLogger())

	result, err := h.listTweets(context.Background(), nil)
	require.NoError(t, err)

	tweets, ok := result.([]tweetResult)
	require.True(t, ok)
	require.Len(t, tweets, 1)
}

func TestFeed_ListEvents(t *testing.T) {
	feedService := &mocks.FeedService{}
	ctxMgr := rpcctx.NewManager()

	author := caller
	feedService.On("ListEvents", mock.Anything, int64(0), int32(0)).
		Return([]model.Event{
			{Seq: 1, Kind: model.EventTweetAdded, TweetID: 0, Author: &author},
			{Seq: 2, Kind: model.EventTweetDeleted, TweetID: 0},
		}, nil)

	h := NewFeed(feedService, ctxMgr, testutil.MakeNoopLogger())

	result, err := h.listEvents(context.Background(), nil)
	require.NoError(t, err)

	events, ok := result.([]eventResult)
	require.True(t, ok)
	require.Len(t, events, 2)
	assert.Equal(t, "TweetAdded", events[0].Kind)
	assert.Equal(t, caller.Hex(), events[0].Author)
	assert.Equal(t, "TweetDeleted", events[1].Kind)
	assert.Empty(t, events[1].Author)
}

func TestFeed_TreasuryBalance(t *testing.T) {
	feedService := &mocks.FeedService{}
	ctxMgr := rpcctx.NewManager()

	feedService.On("TreasuryBalance", mock.Anything).Return(big.NewInt(30000000000000000), nil)

	h := NewFeed(feedService, ctxMgr, testutil.MakeNoopLogger())

	result, err := h.treasuryBalance(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, balanceResult{BalanceWei: "30000000000000000"}, result)
}
