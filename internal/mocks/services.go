package mocks

import (
	"context"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/chirpnet/chirper-server/internal/model"
)

// AccountService is a mock of handler.AccountService.
type AccountService struct {
	mock.Mock
}

func (m *AccountService) CreateAccount(ctx context.Context, owner common.Address, username, description string) (model.Account, error) {
	args := m.Called(ctx, owner, username, description)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountService) EditAccount(ctx context.Context, owner common.Address, description, pictureHash string) error {
	args := m.Called(ctx, owner, description, pictureHash)
	return args.Error(0)
}

func (m *AccountService) UserExists(ctx context.Context, owner common.Address) (bool, error) {
	args := m.Called(ctx, owner)
	return args.Bool(0), args.Error(1)
}

func (m *AccountService) GetAccount(ctx context.Context, owner common.Address) (model.Account, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(model.Account), args.Error(1)
}

// FeedService is a mock of handler.FeedService.
type FeedService struct {
	mock.Mock
}

func (m *FeedService) AddTweet(ctx context.Context, author common.Address, content, imageURL string, value *big.Int) (model.Tweet, error) {
	args := m.Called(ctx, author, content, imageURL, value)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *FeedService) DeleteTweet(ctx context.Context, caller common.Address, id int64) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *FeedService) GetTweet(ctx context.Context, id int64) (model.Tweet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *FeedService) ListTweets(ctx context.Context, includeDeleted bool) ([]model.Tweet, error) {
	args := m.Called(ctx, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tweet), args.Error(1)
}

func (m *FeedService) TreasuryBalance(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *FeedService) ListEvents(ctx context.Context, afterSeq int64, limit int32) ([]model.Event, error) {
	args := m.Called(ctx, afterSeq, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

// RegistryService is a mock of handler.RegistryService.
type RegistryService struct {
	mock.Mock
}

func (m *RegistryService) Owner(ctx context.Context) (common.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(common.Address), args.Error(1)
}

// MediaService is a mock of handler.MediaService.
type MediaService struct {
	mock.Mock
}

func (m *MediaService) Upload(ctx context.Context, caller common.Address, filename string, data []byte) (string, error) {
	args := m.Called(ctx, caller, filename, data)
	return args.String(0), args.Error(1)
}

func (m *MediaService) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// Storage is a mock of model.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader) error {
	args := m.Called(ctx, key, reader)
	return args.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// TokenParser is a mock of middleware.TokenParser.
type TokenParser struct {
	mock.Mock
}

func (m *TokenParser) ParseCallerToken(tokenString string) (common.Address, error) {
	args := m.Called(tokenString)
	return args.Get(0).(common.Address), args.Error(1)
}
