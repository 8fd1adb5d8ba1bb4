package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/chirpnet/chirper-server/internal/model"
)

var _ model.RegistryStore = (*RegistryRepository)(nil)

type RegistryRepository struct {
	db *Connection
}

func NewRegistryRepository(db *Connection) *RegistryRepository {
	return &RegistryRepository{
		db: db,
	}
}

// Init writes the owner on first boot and returns whatever owner is
// persisted. The single-row constraint makes the write idempotent.
func (r *RegistryRepository) Init(ctx context.Context, owner common.Address) (common.Address, error) {
	insert := `INSERT INTO registry (id, owner) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.Exec(ctx, insert, addressKey(owner)); err != nil {
		return common.Address{}, fmt.Errorf("failed to initialize registry: %w", err)
	}

	return r.Owner(ctx)
}

func (r *RegistryRepository) Owner(ctx context.Context) (common.Address, error) {
	query := `SELECT owner FROM registry WHERE id = 1`

	var owner string
	err := r.db.QueryRow(ctx, query).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.Address{}, model.ErrNotFound
		}
		return common.Address{}, fmt.Errorf("failed to get registry owner: %w", err)
	}

	return common.HexToAddress(owner), nil
}
