package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chirpnet/chirper-server/internal/apierrors"
	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
)

// Account implements account registration and profile edits.
type Account struct {
	accountStore model.AccountStore
	logger       *logger.Logger
}

func NewAccount(accountStore model.AccountStore, logger *logger.Logger) *Account {
	return &Account{
		accountStore: accountStore,
		logger:       logger,
	}
}

// CreateAccount registers the caller with a globally unique username.
func (s *Account) CreateAccount(ctx context.Context, owner common.Address, username, description string) (model.Account, error) {
	s.logger.Debug("Account service: creating account",
		"owner", owner.Hex(),
		"username", username)

	if username == "" {
		return model.Account{}, apierrors.NewErrEmptyUsername()
	}

	// The duplicate-username check runs before the insert so that an identity
	// re-registering its own username is reported as a taken username, not as
	// an existing account.
	_, err := s.accountStore.GetByUsername(ctx, username)
	if err == nil {
		s.logger.Info("Account service: username already registered",
			"username", username)
		return model.Account{}, apierrors.NewErrUsernameTaken(username)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("failed to get account by username: %w", err)
	}

	account := model.Account{
		Owner:       owner,
		Username:    username,
		Description: description,
	}

	saved, err := s.accountStore.Create(ctx, account)
	if errors.Is(err, model.ErrUsernameExists) {
		return model.Account{}, apierrors.NewErrUsernameTaken(username)
	}
	if errors.Is(err, model.ErrAlreadyExists) {
		s.logger.Info("Account service: identity already registered",
			"owner", owner.Hex())
		return model.Account{}, apierrors.NewErrAccountExists(owner.Hex())
	}
	if err != nil {
		s.logger.Error("Account service: failed to create account",
			"owner", owner.Hex(),
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("Account service: account created",
		"owner", owner.Hex(),
		"username", username)

	return saved, nil
}

// EditAccount overwrites the mutable profile fields of the caller's account.
// Username and owner never change.
func (s *Account) EditAccount(ctx context.Context, owner common.Address, description, pictureHash string) error {
	s.logger.Debug("Account service: editing account",
		"owner", owner.Hex())

	err := s.accountStore.UpdateProfile(ctx, owner, description, pictureHash)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNoSuchAccount()
	}
	if err != nil {
		s.logger.Error("Account service: failed to edit account",
			"owner", owner.Hex(),
			"error", err.Error())
		return fmt.Errorf("failed to update account profile: %w", err)
	}

	s.logger.Info("Account service: account updated",
		"owner", owner.Hex())

	return nil
}

// UserExists reports whether the identity has registered an account. Pure
// lookup, no authorization.
func (s *Account) UserExists(ctx context.Context, owner common.Address) (bool, error) {
	exists, err := s.accountStore.Exists(ctx, owner)
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}

	return exists, nil
}

// GetAccount returns the profile registered for the identity.
func (s *Account) GetAccount(ctx context.Context, owner common.Address) (model.Account, error) {
	account, err := s.accountStore.GetByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}
