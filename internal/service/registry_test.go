package service

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/mocks"
)

func TestRegistry_Bootstrap_FirstBoot(t *testing.T) {
	ctx := context.Background()
	registryStore := &mocks.RegistryStore{}

	registryStore.On("Init", mock.Anything, alice).Return(alice, nil)

	s := NewRegistry(registryStore, logger.New(0))

	require.NoError(t, s.Bootstrap(ctx, alice))

	owner, err := s.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)
	// Owner is cached; no store lookup after Bootstrap.
	registryStore.AssertNotCalled(t, "Owner")
}

func TestRegistry_Bootstrap_ZeroAddress(t *testing.T) {
	ctx := context.Background()
	registryStore := &mocks.RegistryStore{}

	s := NewRegistry(registryStore, logger.New(0))

	err := s.Bootstrap(ctx, common.Address{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
	registryStore.AssertNotCalled(t, "Init")
}

func TestRegistry_Bootstrap_OwnerMismatch(t *testing.T) {
	ctx := context.Background()
	registryStore := &mocks.RegistryStore{}

	// A different owner is already persisted from a previous deployment.
	registryStore.On("Init", mock.Anything, bob).Return(alice, nil)

	s := NewRegistry(registryStore, logger.New(0))

	err := s.Bootstrap(ctx, bob)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestRegistry_Owner_BeforeBootstrap(t *testing.T) {
	ctx := context.Background()
	registryStore := &mocks.RegistryStore{}

	registryStore.On("Owner", mock.Anything).Return(alice, nil)

	s := NewRegistry(registryStore, logger.New(0))

	owner, err := s.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)
}
