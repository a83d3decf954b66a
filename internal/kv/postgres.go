package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgStore struct {
	db *pgxpool.Pool
}

// NewPostgres stores every slice as one row of kv_slices. The table is
// created on first use.
func NewPostgres(ctx context.Context, db *pgxpool.Pool) (Store, error) {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_slices (
		  key        TEXT PRIMARY KEY,
		  value      BYTEA NOT NULL,
		  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return nil, err
	}
	return &pgStore{db: db}, nil
}

func (p *pgStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := p.db.QueryRow(ctx, `SELECT value FROM kv_slices WHERE key=$1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (p *pgStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO kv_slices (key, value)
		VALUES ($1,$2)
		ON CONFLICT (key)
		DO UPDATE SET value=EXCLUDED.value, updated_at=now()
	`, key, value)
	return err
}

func (p *pgStore) Close() error {
	p.db.Close()
	return nil
}
