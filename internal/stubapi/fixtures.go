package stubapi

import "github.com/prashant-tajane/qkart-frontend/internal/domain"

// Fixtures is the seed catalog served by the stub. IDs are stable so carts
// persisted by the client stay valid across restarts.
func Fixtures() []domain.Product {
	return []domain.Product{
		{ID: "BW0jAAeDJmlZCF8i", Name: "iPhone XR", Category: "Phones", Cost: 100, Rating: 4, Image: "https://i.imgur.com/lulqWzW.jpg"},
		{ID: "KCRwjF7lN97HnEaY", Name: "Basketball", Category: "Sports", Cost: 52, Rating: 5, Image: "https://i.imgur.com/A0rzSm3.jpg"},
		{ID: "PmInA797xJhMIPti", Name: "The Elder Scrolls V", Category: "Games", Cost: 58, Rating: 4, Image: "https://i.imgur.com/VWyUedQ.jpg"},
		{ID: "TwMM4OAhmK0VQ93S", Name: "YONEX Smash Badminton Racquet", Category: "Sports", Cost: 100, Rating: 5, Image: "https://i.imgur.com/sz0mGRX.jpg"},
		{ID: "YGc9v2VXPJ2Ji4nQ", Name: "Tan Leatherette Weekender Duffle", Category: "Fashion", Cost: 150, Rating: 4, Image: "https://i.imgur.com/56gcAN7.jpg"},
		{ID: "a4sLtEcMpzabRyfx", Name: "UNIFACTOR Mens Running Shoes", Category: "Fashion", Cost: 50, Rating: 5, Image: "https://i.imgur.com/MTMDXEg.jpg"},
		{ID: "eJoyE6Dsi3dHnAUX", Name: "OnePlus 6", Category: "Phones", Cost: 100, Rating: 5, Image: "https://i.imgur.com/qeydkZS.jpg"},
		{ID: "pKHu6YDGHvNJ87qm", Name: "Centurion Sunglasses", Category: "Fashion", Cost: 30, Rating: 3, Image: "https://i.imgur.com/qWZ2vSZ.jpg"},
		{ID: "upLK9JbQ4rMhTwt4", Name: "Atomic Habits", Category: "Books", Cost: 15, Rating: 5, Image: "https://i.imgur.com/graKqCz.jpg"},
		{ID: "v4sLtEcMpzabRyfx", Name: "Stylecon 9 Seater RHS Sofa Set", Category: "Furniture", Cost: 180, Rating: 4, Image: "https://i.imgur.com/5b8qQpT.jpg"},
	}
}
