package usecase

import "github.com/prashant-tajane/qkart-frontend/internal/domain"

// CatalogState holds the full unfiltered product list and the currently
// visible (searched) list. The master list feeds cart reconciliation so cart
// lines keep rendering while a narrow search is active.
type CatalogState struct {
	master  []domain.Product
	visible []domain.Product
}

// Apply records the result of a catalog fetch. Results of an empty query
// refresh the master list; any result becomes the visible list.
func (s *CatalogState) Apply(query string, products []domain.Product) {
	if query == "" {
		s.master = products
	}
	s.visible = products
}

// Master returns the full unfiltered catalog.
func (s *CatalogState) Master() []domain.Product { return s.master }

// Visible returns the currently displayed (possibly filtered) products.
func (s *CatalogState) Visible() []domain.Product { return s.visible }
