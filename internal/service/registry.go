package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
)

// Registry exposes the root owner identity fixed at deployment.
type Registry struct {
	registryStore model.RegistryStore
	logger        *logger.Logger

	// owner caches the persisted root after Bootstrap; the value is
	// immutable for the process lifetime.
	owner common.Address
}

func NewRegistry(registryStore model.RegistryStore, logger *logger.Logger) *Registry {
	return &Registry{
		registryStore: registryStore,
		logger:        logger,
	}
}

// Bootstrap persists the configured owner on first boot and refuses to start
// when a different owner is already persisted: the registry root is never
// reassigned.
func (s *Registry) Bootstrap(ctx context.Context, configured common.Address) error {
	if configured == (common.Address{}) {
		return fmt.Errorf("registry owner address is not configured")
	}

	persisted, err := s.registryStore.Init(ctx, configured)
	if err != nil {
		return fmt.Errorf("failed to initialize registry: %w", err)
	}

	if persisted != configured {
		return fmt.Errorf("registry owner mismatch: persisted %s, configured %s",
			persisted.Hex(), configured.Hex())
	}

	s.owner = persisted
	s.logger.Info("Registry service: owner fixed",
		"owner", persisted.Hex())

	return nil
}

// Owner returns the registry root owner. Never fails after Bootstrap.
func (s *Registry) Owner(ctx context.Context) (common.Address, error) {
	if s.owner != (common.Address{}) {
		return s.owner, nil
	}

	owner, err := s.registryStore.Owner(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to get registry owner: %w", err)
	}

	return owner, nil
}
