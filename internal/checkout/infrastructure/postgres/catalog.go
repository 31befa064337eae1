package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/database"
	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
)

type Catalog struct {
	querier database.Querier
}

func NewCatalog(querier database.Querier) *Catalog {
	return &Catalog{
		querier: querier,
	}
}

func (c *Catalog) GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	products := make(map[int64]domain.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	findProductsSQL := `SELECT id, name, price_cents FROM products WHERE id = ANY($1)`

	rows, err := c.querier.Query(ctx, findProductsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			product domain.Product
			price   int64
		)

		if err := rows.Scan(&product.ID, &product.Name, &price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		product.Price = money.Cents(price)
		products[product.ID] = product
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}
