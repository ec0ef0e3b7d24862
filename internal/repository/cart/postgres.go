package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres stores each cart as one JSONB document. Product pointers are
// dropped on write; callers re-resolve them from Merchandise.ProductID.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, id string) (*domain.Cart, error) {
	const q = `SELECT payload FROM carts WHERE id = $1`
	var payload []byte
	if err := r.pool.QueryRow(ctx, q, id).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var cart domain.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return nil, fmt.Errorf("decode cart %q: %w", id, err)
	}
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	return &cart, nil
}

func (r *postgresRepo) Put(ctx context.Context, cart *domain.Cart) error {
	stored := cart.Clone()
	for i := range stored.Lines {
		stored.Lines[i].Merchandise.Product = nil
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode cart %q: %w", cart.ID, err)
	}
	const q = `
INSERT INTO carts (id, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
`
	_, err = r.pool.Exec(ctx, q, cart.ID, payload)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	return err
}

func (r *postgresRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
