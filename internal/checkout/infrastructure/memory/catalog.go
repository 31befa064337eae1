package memory

import (
	"context"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
)

// DefaultProducts mirrors the rows seeded by the products migration.
var DefaultProducts = []domain.Product{
	{ID: 1, Name: "T-shirt", Price: 5990},
	{ID: 2, Name: "Mug", Price: 2990},
	{ID: 3, Name: "Cap", Price: 3990},
	{ID: 4, Name: "Hoodie", Price: 14990},
}

// Catalog is read-only after construction.
type Catalog struct {
	products map[int64]domain.Product
}

func NewCatalog(products []domain.Product) *Catalog {
	byID := make(map[int64]domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	return &Catalog{
		products: byID,
	}
}

func (c *Catalog) GetProducts(_ context.Context, ids []int64) (map[int64]domain.Product, error) {
	found := make(map[int64]domain.Product, len(ids))
	for _, id := range ids {
		if product, ok := c.products[id]; ok {
			found[id] = product
		}
	}

	return found, nil
}
