package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prashant-tajane/qkart-frontend/internal/backend"
	"github.com/prashant-tajane/qkart-frontend/internal/domain"
	"github.com/prashant-tajane/qkart-frontend/internal/metrics"
)

// CartMode selects how AddOrUpdate resolves the target quantity.
type CartMode string

const (
	ModeAdd       CartMode = "add"
	ModeIncrement CartMode = "increment"
	ModeDecrement CartMode = "decrement"
)

type CartUsecase struct {
	cart   backend.CartService
	logger *slog.Logger
}

func NewCartUsecase(cart backend.CartService, logger *slog.Logger) *CartUsecase {
	return &CartUsecase{
		cart:   cart,
		logger: logger.With("component", "cart"),
	}
}

// Reconcile joins each cart entry with its catalog product, preserving entry
// order. It is a pure projection: recomputed in full whenever either input
// changes, never patched incrementally. An entry with no catalog match means
// cart and catalog are out of sync; such entries are dropped from display and
// logged, never shown as an error to the user.
func (u *CartUsecase) Reconcile(entries []domain.CartEntry, catalog []domain.Product) []domain.DisplayCartItem {
	index := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		index[p.ID] = p
	}

	items := make([]domain.DisplayCartItem, 0, len(entries))
	for _, e := range entries {
		p, ok := index[e.ProductID]
		if !ok {
			metrics.ReconcileOrphansTotal.Inc()
			u.logger.Warn("cart entry has no catalog product, dropped from display",
				"product_id", e.ProductID, "qty", e.Qty)
			continue
		}
		items = append(items, domain.DisplayCartItem{Product: p, Qty: e.Qty})
	}
	return items
}

// CartTotal recomputes the total cost from scratch on every call. No running
// accumulator, so partial updates can never drift the displayed total.
func CartTotal(items []domain.DisplayCartItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Qty) * item.Product.Cost
	}
	return total
}

// Fetch loads the server-side cart entries for the session.
func (u *CartUsecase) Fetch(ctx context.Context, token string) ([]domain.CartEntry, error) {
	return u.cart.FetchCart(ctx, token)
}

type AddOrUpdateInput struct {
	Token     string
	Entries   []domain.CartEntry // current local cart, used only for the guards and qty resolution
	ProductID string
	Mode      CartMode
}

// AddOrUpdate runs the add-to-cart workflow: guards, quantity resolution,
// then a single commit against the backend. On success the caller must replace
// its entire local entries list with the returned one — the server is the sole
// source of truth. On failure the local list stays untouched.
//
// Two rapid invocations for the same product race at the network layer and the
// last response to arrive wins. Known limitation, kept on purpose: adding
// request sequencing would change observable behavior.
func (u *CartUsecase) AddOrUpdate(ctx context.Context, in AddOrUpdateInput) ([]domain.CartEntry, error) {
	if in.Token == "" {
		metrics.CartMutationsTotal.WithLabelValues(string(in.Mode), "login_required").Inc()
		return nil, domain.ErrLoginRequired
	}

	existing, found := findEntry(in.Entries, in.ProductID)
	if in.Mode == ModeAdd && found {
		metrics.CartMutationsTotal.WithLabelValues(string(in.Mode), "duplicate").Inc()
		return nil, domain.ErrDuplicateItem
	}

	// Increment/decrement are only offered on rendered cart lines, so the
	// entry is present by construction; a missing entry resolves from qty 0.
	var qty int
	switch in.Mode {
	case ModeIncrement:
		qty = existing.Qty + 1
	case ModeDecrement:
		// The server removes the entry when this reaches 0; the client does
		// not special-case zero.
		qty = existing.Qty - 1
	default:
		qty = 1
	}

	updated, err := u.cart.UpdateCart(ctx, in.Token, in.ProductID, qty)
	if err != nil {
		metrics.CartMutationsTotal.WithLabelValues(string(in.Mode), "error").Inc()
		return nil, fmt.Errorf("commit cart update: %w", err)
	}

	metrics.CartMutationsTotal.WithLabelValues(string(in.Mode), "ok").Inc()
	return updated, nil
}

func findEntry(entries []domain.CartEntry, productID string) (domain.CartEntry, bool) {
	for _, e := range entries {
		if e.ProductID == productID {
			return e, true
		}
	}
	return domain.CartEntry{}, false
}
