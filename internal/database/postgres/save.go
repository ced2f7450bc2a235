package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SimpleIG_Go/internal/repository"
)

// SaveRepository implements repository.SaveStore on the save_records table
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a new save repository
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// Get returns the payload stored under key
func (r *SaveRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT payload
		FROM save_records
		WHERE save_key = $1
	`
	var payload []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSaveFailed, key, err)
	}
	return payload, nil
}

// Put inserts or replaces the payload stored under key
func (r *SaveRepository) Put(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO save_records (save_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (save_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, key, string(payload)); err != nil {
		return fmt.Errorf(ErrMsgPutSaveFailed, key, err)
	}
	return nil
}
