package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chirpnet/chirper-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

// uniqueViolation is the postgres error code for unique constraint failures.
const uniqueViolation = "23505"

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (owner, username, description, avatar_hash)
			  VALUES ($1, $2, $3, $4)
			  RETURNING created_at, updated_at`

	saved := account
	err := r.db.QueryRow(ctx, query,
		addressKey(account.Owner), account.Username, account.Description, account.AvatarHash,
	).Scan(&saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return model.Account{}, model.ErrUsernameExists
			}
			return model.Account{}, model.ErrAlreadyExists
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return saved, nil
}

func (r *AccountRepository) GetByOwner(ctx context.Context, owner common.Address) (model.Account, error) {
	query := `SELECT owner, username, description, avatar_hash, created_at, updated_at
			  FROM accounts WHERE owner = $1`

	account, err := r.scanAccount(r.db.QueryRow(ctx, query, addressKey(owner)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by owner: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (model.Account, error) {
	query := `SELECT owner, username, description, avatar_hash, created_at, updated_at
			  FROM accounts WHERE username = $1`

	account, err := r.scanAccount(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by username: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, owner common.Address, description, avatarHash string) error {
	query := `UPDATE accounts SET description = $2, avatar_hash = $3, updated_at = NOW()
			  WHERE owner = $1`

	cmd, err := r.db.Exec(ctx, query, addressKey(owner), description, avatarHash)
	if err != nil {
		return fmt.Errorf("failed to update account profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *AccountRepository) Exists(ctx context.Context, owner common.Address) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE owner = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, addressKey(owner)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}

	return exists, nil
}

func (r *AccountRepository) scanAccount(row pgx.Row) (model.Account, error) {
	var account model.Account
	var owner string
	err := row.Scan(&owner, &account.Username, &account.Description, &account.AvatarHash,
		&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return model.Account{}, err
	}
	account.Owner = common.HexToAddress(owner)

	return account, nil
}

// addressKey normalizes an address for use as a store key.
func addressKey(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}
