package backend

import (
	"context"

	"github.com/prashant-tajane/qkart-frontend/internal/domain"
)

// Usecases depend on these interfaces, not the concrete HTTP client.
// This way we get: 1) can swap the transport later without touching usecases
// 2) tests can pass fakes that record whether a network call was made.

// CatalogService fetches the product catalog.
type CatalogService interface {
	// SearchProducts returns the catalog, server-filtered by query when
	// non-empty. An empty query returns the full catalog.
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

// CartService reads and mutates the server-side cart.
type CartService interface {
	FetchCart(ctx context.Context, token string) ([]domain.CartEntry, error)
	// UpdateCart posts a single productId/qty pair and returns the full
	// updated cart as the server now sees it.
	UpdateCart(ctx context.Context, token, productID string, qty int) ([]domain.CartEntry, error)
}

// AuthService registers and logs in users.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	// Login returns the auth token on success.
	Login(ctx context.Context, username, password string) (string, error)
}
