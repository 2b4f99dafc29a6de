// Package pricing derives the server-authoritative total for a cart.
// Both checkout paths (gateway and COD) price through here so the
// amount sent to the gateway and the amount frozen on the order can
// never disagree.
package pricing

import "github.com/vkvijay314/cloud-cart-backend/models"

// Item is one priced cart line with the product name and unit price
// resolved at pricing time.
type Item struct {
	ProductID uint
	Name      string
	Price     float64
	Quantity  int
}

// PriceCart resolves cart lines against their products and returns the
// priced lines plus total = Σ price×quantity. Lines with a dangling
// product reference or a non-positive quantity are dropped. Pure: no
// side effects, no rounding.
func PriceCart(items []models.CartItem) ([]Item, float64) {
	var (
		priced []Item
		total  float64
	)
	for _, it := range items {
		if it.Product == nil || it.Product.ID == 0 || it.Quantity <= 0 {
			continue
		}
		priced = append(priced, Item{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
		})
		total += it.Product.Price * float64(it.Quantity)
	}
	return priced, total
}
