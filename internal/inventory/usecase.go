package inventory

import (
	"context"

	"github.com/selmane/retailpos/internal/inventory/dto"
	"github.com/selmane/retailpos/internal/model"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	SetStock(ctx context.Context, id string, newStock int) error
	DeleteProduct(ctx context.Context, id string) error
	Find(ctx context.Context, query string) ([]model.Product, error)
	LowStock(ctx context.Context, threshold int) ([]model.Product, error)
}

// BarcodeRenderer turns a barcode string into a printable image artifact.
// Rendering happens outside the store; a failure never rolls back the
// product creation, the record stays authoritative without the image.
type BarcodeRenderer interface {
	Render(ctx context.Context, barcode string) error
}
