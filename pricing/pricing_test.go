package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vkvijay314/cloud-cart-backend/models"
)

func product(id uint, name string, price float64) *models.Product {
	return &models.Product{ID: id, Name: name, Price: price}
}

func TestPriceCart_Total(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Product: product(1, "keyboard", 10), Quantity: 2},
		{ProductID: 2, Product: product(2, "mouse", 5), Quantity: 1},
	}

	priced, total := PriceCart(items)

	assert.Len(t, priced, 2)
	assert.Equal(t, 25.0, total)
	assert.Equal(t, "keyboard", priced[0].Name)
	assert.Equal(t, 10.0, priced[0].Price)
}

func TestPriceCart_DropsDanglingProduct(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Product: product(1, "keyboard", 10), Quantity: 2},
		{ProductID: 99, Product: nil, Quantity: 3}, // deleted product
	}

	priced, total := PriceCart(items)

	assert.Len(t, priced, 1)
	assert.Equal(t, 20.0, total)
}

func TestPriceCart_DropsNonPositiveQuantity(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Product: product(1, "keyboard", 10), Quantity: 0},
		{ProductID: 2, Product: product(2, "mouse", 5), Quantity: -2},
		{ProductID: 3, Product: product(3, "cable", 3), Quantity: 1},
	}

	priced, total := PriceCart(items)

	assert.Len(t, priced, 1)
	assert.Equal(t, 3.0, total)
}

func TestPriceCart_EmptyAndAllDangling(t *testing.T) {
	priced, total := PriceCart(nil)
	assert.Empty(t, priced)
	assert.Zero(t, total)

	priced, total = PriceCart([]models.CartItem{
		{ProductID: 1, Product: nil, Quantity: 1},
	})
	assert.Empty(t, priced)
	assert.Zero(t, total)
}
