package sales

import (
	"context"

	"github.com/selmane/retailpos/internal/model"
	"github.com/selmane/retailpos/internal/sales/dto"
)

type UseCase interface {
	// Checkout commits a cart atomically: all stock decrements and sale
	// inserts, or none of them.
	Checkout(ctx context.Context, input *dto.CheckoutInput) (*dto.CheckoutResult, error)

	// ReverseSale is a standalone compensating action on a single sale row,
	// not an undo of the original cart: the discount accounting of sibling
	// rows stays as committed.
	ReverseSale(ctx context.Context, saleID string) error

	List(ctx context.Context, search string) ([]model.Sale, error)
}

// ReceiptPrinter renders and stores a receipt for a committed checkout.
// Pure consumer, no feedback into the store.
type ReceiptPrinter interface {
	Print(ctx context.Context, receipt *dto.Receipt) error
}
