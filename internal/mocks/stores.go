// Package mocks holds testify mock implementations of the store and service
// interfaces used across the test suites.
package mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/chirpnet/chirper-server/internal/model"
)

// AccountStore is a mock of model.AccountStore.
type AccountStore struct {
	mock.Mock
}

func (m *AccountStore) Create(ctx context.Context, account model.Account) (model.Account, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) GetByOwner(ctx context.Context, owner common.Address) (model.Account, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) GetByUsername(ctx context.Context, username string) (model.Account, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) UpdateProfile(ctx context.Context, owner common.Address, description, avatarHash string) error {
	args := m.Called(ctx, owner, description, avatarHash)
	return args.Error(0)
}

func (m *AccountStore) Exists(ctx context.Context, owner common.Address) (bool, error) {
	args := m.Called(ctx, owner)
	return args.Bool(0), args.Error(1)
}

// TweetStore is a mock of model.TweetStore.
type TweetStore struct {
	mock.Mock
}

func (m *TweetStore) Create(ctx context.Context, tweet model.Tweet, paidWei *big.Int) (model.Tweet, error) {
	args := m.Called(ctx, tweet, paidWei)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *TweetStore) GetByID(ctx context.Context, id int64) (model.Tweet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *TweetStore) List(ctx context.Context, includeDeleted bool) ([]model.Tweet, error) {
	args := m.Called(ctx, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tweet), args.Error(1)
}

func (m *TweetStore) MarkDeleted(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TreasuryStore is a mock of model.TreasuryStore.
type TreasuryStore struct {
	mock.Mock
}

func (m *TreasuryStore) Balance(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// EventStore is a mock of model.EventStore.
type EventStore struct {
	mock.Mock
}

func (m *EventStore) ListAfter(ctx context.Context, afterSeq int64, limit int32) ([]model.Event, error) {
	args := m.Called(ctx, afterSeq, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

// RegistryStore is a mock of model.RegistryStore.
type RegistryStore struct {
	mock.Mock
}

func (m *RegistryStore) Init(ctx context.Context, owner common.Address) (common.Address, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *RegistryStore) Owner(ctx context.Context) (common.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(common.Address), args.Error(1)
}
