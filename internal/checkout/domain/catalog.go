package domain

//go:generate mockgen -source=catalog.go -destination=../../../gen/mocks/checkout/catalog.go -package=checkoutmocks

import (
	"context"

	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
)

type Product struct {
	ID    int64
	Name  string
	Price money.Cents
}

type Catalog interface {
	// GetProducts returns the known products among ids. Unknown ids are simply absent from the map.
	GetProducts(ctx context.Context, ids []int64) (map[int64]Product, error)
}
