// Package stubapi is a self-contained development backend speaking the same
// wire contract as the hosted QKart API. It keeps everything in memory and is
// meant for local development and contract tests, not production traffic.
package stubapi

import (
	"sync"

	"github.com/prashant-tajane/qkart-frontend/internal/domain"
)

// Store holds users and their carts in memory. Carts preserve insertion
// order, matching how the hosted API returns them.
type Store struct {
	mu       sync.Mutex
	products []domain.Product
	users    map[string]string // username -> password
	carts    map[string][]domain.CartEntry
}

func NewStore(products []domain.Product) *Store {
	return &Store{
		products: products,
		users:    make(map[string]string),
		carts:    make(map[string][]domain.CartEntry),
	}
}

// Products returns the full catalog.
func (s *Store) Products() []domain.Product {
	return s.products
}

// FindProduct reports whether the catalog contains the given id.
func (s *Store) FindProduct(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// CreateUser registers a new account. Returns false when the username is
// already taken.
func (s *Store) CreateUser(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return false
	}
	s.users[username] = password
	return true
}

// Authenticate checks the credentials.
func (s *Store) Authenticate(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.users[username]
	return exists && stored == password
}

// Cart returns a copy of the user's cart.
func (s *Store) Cart(username string) []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.CartEntry(nil), s.carts[username]...)
}

// SetQty sets the quantity for a product in the user's cart. A quantity of
// zero or less removes the entry. Returns the updated cart.
func (s *Store) SetQty(username, productID string, qty int) []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[username]
	idx := -1
	for i, e := range cart {
		if e.ProductID == productID {
			idx = i
			break
		}
	}

	switch {
	case qty <= 0:
		if idx >= 0 {
			cart = append(cart[:idx], cart[idx+1:]...)
		}
	case idx >= 0:
		cart[idx].Qty = qty
	default:
		cart = append(cart, domain.CartEntry{ProductID: productID, Qty: qty})
	}

	s.carts[username] = cart
	return append([]domain.CartEntry(nil), cart...)
}
