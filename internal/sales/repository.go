package sales

import (
	"context"
	"time"

	"github.com/selmane/retailpos/internal/model"
	"github.com/selmane/retailpos/internal/sales/dto"
)

type Repository interface {
	// ExecuteCheckout runs the whole checkout as one transaction: re-reads
	// stock for every line, decrements it, and inserts the prepared sale
	// rows stamped with a single commit timestamp. Any shortfall aborts
	// with *apperrors.InsufficientStockError and zero mutation.
	ExecuteCheckout(ctx context.Context, lines []dto.CartLine, rows []model.Sale) (time.Time, error)

	// ReverseSale deletes one sale row and restores its quantity to the
	// referenced product's stock.
	ReverseSale(ctx context.Context, saleID string) error

	List(ctx context.Context, search string) ([]model.Sale, error)
}
