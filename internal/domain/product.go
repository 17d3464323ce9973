package domain

// Product is a single catalog item as returned by the backend.
// Immutable once fetched; the full set forms the product catalog.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
	Rating   int     `json:"rating"`
	Image    string  `json:"image"`
}

// CartEntry pairs a product ID with a quantity. The server is authoritative:
// the client never fabricates or locally mutates entries, it only replaces the
// whole list with what the server returns. An entry whose qty reaches 0 is
// removed server-side.
type CartEntry struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// DisplayCartItem is a CartEntry joined with its catalog Product. Derived,
// client-only state used for rendering and total computation.
type DisplayCartItem struct {
	Product Product
	Qty     int
}
