package inventory

import (
	"context"

	"github.com/selmane/retailpos/internal/model"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)

	// Find matches query as a substring of name, id or barcode. An empty
	// query returns every product in insertion order.
	Find(ctx context.Context, query string) ([]model.Product, error)
	LowStock(ctx context.Context, threshold int) ([]model.Product, error)

	SetStock(ctx context.Context, id string, stock int) error

	// DeleteCascade removes the product and every sale row referencing it
	// in one transaction.
	DeleteCascade(ctx context.Context, id string) error

	IsBarcodeUnique(ctx context.Context, barcode string) (bool, error)
}
