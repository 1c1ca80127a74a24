package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/model"
	"github.com/selmane/retailpos/internal/sales"
	"github.com/selmane/retailpos/internal/sales/dto"
)

type salesUseCase struct {
	repo     sales.Repository
	receipts sales.ReceiptPrinter // optional
	logger   *zap.Logger
}

func NewSalesUseCase(repo sales.Repository, receipts sales.ReceiptPrinter, log *zap.Logger) sales.UseCase {
	return &salesUseCase{
		repo:     repo,
		receipts: receipts,
		logger:   log,
	}
}

func (uc *salesUseCase) Checkout(ctx context.Context, input *dto.CheckoutInput) (*dto.CheckoutResult, error) {
	if len(input.Lines) == 0 {
		return nil, apperrors.Validation("cart is empty")
	}
	if input.StaffID == "" {
		return nil, apperrors.Validation("staff id is required")
	}
	if input.PaymentMethod != model.PaymentCash && input.PaymentMethod != model.PaymentCard {
		return nil, apperrors.Validation("unknown payment method %q", input.PaymentMethod)
	}
	if input.Discount < 0 {
		return nil, apperrors.Validation("discount must be non-negative")
	}

	cartTotal := 0.0
	for _, line := range input.Lines {
		if line.ProductID == "" {
			return nil, apperrors.Validation("cart line without product id")
		}
		if line.Quantity <= 0 {
			return nil, apperrors.Validation("quantity must be positive")
		}
		if line.UnitPrice < 0 {
			return nil, apperrors.Validation("unit price must be non-negative")
		}
		cartTotal += line.UnitPrice * float64(line.Quantity)
	}

	netTotal := cartTotal - input.Discount
	lineTotal, lineDiscount := allocate(netTotal, input.Discount, len(input.Lines))

	rows := make([]model.Sale, len(input.Lines))
	for i, line := range input.Lines {
		rows[i] = model.Sale{
			ID:            uuid.New().String(),
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
			Total:         lineTotal,
			Discount:      lineDiscount,
			StaffID:       input.StaffID,
			PaymentMethod: input.PaymentMethod,
			CustomerID:    input.CustomerID,
		}
	}

	committedAt, err := uc.repo.ExecuteCheckout(ctx, input.Lines, rows)
	if err != nil {
		uc.logger.Error("checkout aborted",
			zap.Int("lines", len(input.Lines)),
			zap.String("staff_id", input.StaffID),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("sale recorded",
		zap.Float64("net_total", netTotal),
		zap.Int("lines", len(input.Lines)),
		zap.String("staff_id", input.StaffID),
		zap.String("payment_method", input.PaymentMethod),
		zap.Time("committed_at", committedAt))

	if uc.receipts != nil {
		receipt := &dto.Receipt{
			Lines:         input.Lines,
			CartTotal:     cartTotal,
			Discount:      input.Discount,
			NetTotal:      netTotal,
			StaffID:       input.StaffID,
			CustomerID:    input.CustomerID,
			PaymentMethod: input.PaymentMethod,
			CommittedAt:   committedAt,
		}
		go uc.printReceipt(context.WithoutCancel(ctx), receipt)
	}

	return &dto.CheckoutResult{NetTotal: netTotal, CommittedAt: committedAt}, nil
}

func (uc *salesUseCase) printReceipt(ctx context.Context, receipt *dto.Receipt) {
	if err := uc.receipts.Print(ctx, receipt); err != nil {
		uc.logger.Error("receipt printing failed",
			zap.Time("committed_at", receipt.CommittedAt), zap.Error(err))
	}
}

// allocate splits a cart's net total and discount evenly across its lines,
// ignoring each line's own value. Reporting sums reconcile against exactly
// this split; a future proportional allocation changes only this function.
func allocate(netTotal, discount float64, lines int) (lineTotal, lineDiscount float64) {
	n := float64(lines)
	return netTotal / n, discount / n
}

func (uc *salesUseCase) ReverseSale(ctx context.Context, saleID string) error {
	if err := uc.repo.ReverseSale(ctx, saleID); err != nil {
		return err
	}
	uc.logger.Info("sale reversed", zap.String("sale_id", saleID))
	return nil
}

func (uc *salesUseCase) List(ctx context.Context, search string) ([]model.Sale, error) {
	return uc.repo.List(ctx, search)
}
