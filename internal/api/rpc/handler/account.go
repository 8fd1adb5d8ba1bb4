package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chirpnet/chirper-server/internal/apierrors"
	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
)

// AccountService defines business operations for account management.
type AccountService interface {
	CreateAccount(ctx context.Context, owner common.Address, username, description string) (model.Account, error)
	EditAccount(ctx context.Context, owner common.Address, description, pictureHash string) error
	UserExists(ctx context.Context, owner common.Address) (bool, error)
	GetAccount(ctx context.Context, owner common.Address) (model.Account, error)
}

// Account handles JSON-RPC endpoints for accounts.
type Account struct {
	accountService AccountService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAccount creates a new Account handler.
func NewAccount(accountService AccountService, contextManager model.ContextManager, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createAccountParams struct {
	Username    string `json:"username"`
	Description string `json:"description"`
}

type editAccountParams struct {
	Description string `json:"description"`
	PictureHash string `json:"pictureHash"`
}

type userExistsParams struct {
	Address string `json:"address"`
}

type getAccountParams struct {
	Address string `json:"address"`
}

type accountResult struct {
	Owner       string    `json:"owner"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	AvatarHash  string    `json:"avatarHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type userExistsResult struct {
	Exists bool `json:"exists"`
}

// Routes returns the account method table.
func (h *Account) Routes() []Route {
	return []Route{
		{Method: "account.create", Handle: h.createAccount},
		{Method: "account.edit", Handle: h.editAccount},
		{Method: "account.get", Public: true, Handle: h.getAccount},
		{Method: "user.exists", Public: true, Handle: h.userExists},
	}
}

func (h *Account) createAccount(ctx context.Context, params json.RawMessage) (any, error) {
	var req createAccountParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	caller, ok := h.contextManager.GetCallerFromContext(ctx)
	if !ok {
		return nil, apierrors.NewErrMissingAuthorizationToken()
	}

	account, err := h.accountService.CreateAccount(ctx, caller, req.Username, req.Description)
	if err != nil {
		h.logger.Error("Account handler: create account failed",
			"caller", caller.Hex(),
			"error", err.Error())
		return nil, err
	}

	return convertAccount(account), nil
}

func (h *Account) editAccount(ctx context.Context, params json.RawMessage) (any, error) {
	var req editAccountParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	caller, ok := h.contextManager.GetCallerFromContext(ctx)
	if !ok {
		return nil, apierrors.NewErrMissingAuthorizationToken()
	}

	if err := h.accountService.EditAccount(ctx, caller, req.Description, req.PictureHash); err != nil {
		h.logger.Error("Account handler: edit account failed",
			"caller", caller.Hex(),
			"error", err.Error())
		return nil, err
	}

	return struct{}{}, nil
}

func (h *Account) userExists(ctx context.Context, params json.RawMessage) (any, error) {
	var req userExistsParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	address, err := parseAddress(req.Address)
	if err != nil {
		return nil, err
	}

	exists, err := h.accountService.UserExists(ctx, address)
	if err != nil {
		h.logger.Error("Account handler: user exists check failed",
			"address", address.Hex(),
			"error", err.Error())
		return nil, err
	}

	return userExistsResult{Exists: exists}, nil
}

func (h *Account) getAccount(ctx context.Context, params json.RawMessage) (any, error) {
	var req getAccountParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	address, err := parseAddress(req.Address)
	if err != nil {
		return nil, err
	}

	account, err := h.accountService.GetAccount(ctx, address)
	if err != nil {
		return nil, err
	}

	return convertAccount(account), nil
}

func convertAccount(account model.Account) accountResult {
	return accountResult{
		Owner:       account.Owner.Hex(),
		Username:    account.Username,
		Description: account.Description,
		AvatarHash:  account.AvatarHash,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}
