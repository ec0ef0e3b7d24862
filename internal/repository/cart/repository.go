package cart

import (
	"context"

	"storefront/internal/domain"
)

// Repository persists demo carts by id. A missing cart is domain.ErrNotFound.
type Repository interface {
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Put(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, id string) error
}

// Pinger is implemented by stores backed by an external connection.
type Pinger interface {
	Ping(ctx context.Context) error
}
