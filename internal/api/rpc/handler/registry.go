package handler

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chirpnet/chirper-server/internal/logger"
)

// RegistryService resolves the registry root owner.
type RegistryService interface {
	Owner(ctx context.Context) (common.Address, error)
}

// Registry handles the registry read endpoint.
type Registry struct {
	registryService RegistryService
	logger          *logger.Logger
}

// NewRegistry creates a new Registry handler.
func NewRegistry(registryService RegistryService, logger *logger.Logger) *Registry {
	return &Registry{
		registryService: registryService,
		logger:          logger,
	}
}

type ownerResult struct {
	Owner string `json:"owner"`
}

// Routes returns the registry method table.
func (h *Registry) Routes() []Route {
	return []Route{
		{Method: "registry.owner", Public: true, Handle: h.owner},
	}
}

func (h *Registry) owner(ctx context.Context, _ json.RawMessage) (any, error) {
	owner, err := h.registryService.Owner(ctx)
	if err != nil {
		h.logger.Error("Registry handler: owner lookup failed",
			"error", err.Error())
		return nil, err
	}

	return ownerResult{Owner: owner.Hex()}, nil
}
