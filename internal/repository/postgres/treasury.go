package postgres

import (
	"context"
	"fmt"
	"math/big"

	"github.com/chirpnet/chirper-server/internal/model"
)

var _ model.TreasuryStore = (*TreasuryRepository)(nil)

type TreasuryRepository struct {
	db *Connection
}

func NewTreasuryRepository(db *Connection) *TreasuryRepository {
	return &TreasuryRepository{
		db: db,
	}
}

func (r *TreasuryRepository) Balance(ctx context.Context) (*big.Int, error) {
	query := `SELECT balance_wei::text FROM treasury WHERE id = 1`

	var raw string
	if err := r.db.QueryRow(ctx, query).Scan(&raw); err != nil {
		return nil, fmt.Errorf("failed to get treasury balance: %w", err)
	}

	balance, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("invalid balance value: %q", raw)
	}

	return balance, nil
}
