package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/inventory"
	"github.com/selmane/retailpos/internal/inventory/dto"
	"github.com/selmane/retailpos/internal/model"
)

const defaultLowStockThreshold = 5

type inventoryUseCase struct {
	repo     inventory.Repository
	barcodes inventory.BarcodeRenderer // optional
	logger   *zap.Logger
	now      func() time.Time
}

func NewInventoryUseCase(repo inventory.Repository, barcodes inventory.BarcodeRenderer, log *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		barcodes: barcodes,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *inventoryUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.Name == "" {
		return nil, apperrors.Validation("product name cannot be empty")
	}
	if input.Price < 0 {
		return nil, apperrors.Validation("price must be non-negative")
	}
	if input.Stock < 0 {
		return nil, apperrors.Validation("stock must be non-negative")
	}

	now := uc.now()
	barcode := generateBarcode(input.Name, input.Price, now)

	unique, err := uc.repo.IsBarcodeUnique(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateBarcode, barcode)
	}

	p := &model.Product{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Price:     input.Price,
		Stock:     input.Stock,
		Category:  input.Category,
		Barcode:   barcode,
		CreatedAt: now.UTC(),
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name),
		zap.String("barcode", p.Barcode))

	// Fire-and-forget: the product record is authoritative even if the
	// image is missing.
	if uc.barcodes != nil {
		go uc.renderBarcode(context.WithoutCancel(ctx), p.Barcode)
	}

	return p, nil
}

func (uc *inventoryUseCase) renderBarcode(ctx context.Context, barcode string) {
	if err := uc.barcodes.Render(ctx, barcode); err != nil {
		uc.logger.Error("barcode rendering failed",
			zap.String("barcode", barcode), zap.Error(err))
	}
}

// generateBarcode derives a barcode from the product name, price and a
// time-based disambiguator. Two creations of the same product within the
// same second collide, which the caller surfaces as a duplicate.
func generateBarcode(name string, price float64, t time.Time) string {
	return fmt.Sprintf("%s_%s_%s", name,
		strconv.FormatFloat(price, 'f', -1, 64), t.Format("150405"))
}

func (uc *inventoryUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, id)
	}
	return p, nil
}

func (uc *inventoryUseCase) SetStock(ctx context.Context, id string, newStock int) error {
	if newStock < 0 {
		return apperrors.Validation("stock must be non-negative")
	}
	if err := uc.repo.SetStock(ctx, id, newStock); err != nil {
		return err
	}
	uc.logger.Info("stock adjusted",
		zap.String("product_id", id), zap.Int("new_stock", newStock))
	return nil
}

func (uc *inventoryUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	uc.logger.Warn("product deleted with sale history",
		zap.String("product_id", id))
	return nil
}

func (uc *inventoryUseCase) Find(ctx context.Context, query string) ([]model.Product, error) {
	return uc.repo.Find(ctx, query)
}

func (uc *inventoryUseCase) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	return uc.repo.LowStock(ctx, threshold)
}
