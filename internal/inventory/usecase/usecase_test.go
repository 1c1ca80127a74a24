package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/database/dbtest"
	"github.com/selmane/retailpos/internal/inventory"
	"github.com/selmane/retailpos/internal/inventory/dto"
	"github.com/selmane/retailpos/internal/inventory/repository"
)

func newUseCase(t *testing.T) (inventory.UseCase, *repository.SQLiteRepository) {
	t.Helper()
	repo := repository.NewSQLiteRepository(dbtest.Open(t))
	return NewInventoryUseCase(repo, nil, zap.NewNop()), repo
}

func TestCreateProduct(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name: "Pen", Price: 5.00, Stock: 10, Category: "Stationery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	assert.Equal(t, "Pen", p.Name)
	assert.Equal(t, 10, p.Stock)
	assert.NotEmpty(t, p.Barcode)

	got, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Barcode, got.Barcode)
	assert.Equal(t, 5.00, got.Price)
}

func TestCreateProductValidation(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	cases := []dto.CreateProductInput{
		{Name: "", Price: 1, Stock: 1},
		{Name: "Pen", Price: -0.01, Stock: 1},
		{Name: "Pen", Price: 1, Stock: -1},
	}
	for _, input := range cases {
		_, err := uc.CreateProduct(ctx, &input)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestCreateProductDuplicateBarcode(t *testing.T) {
	repo := repository.NewSQLiteRepository(dbtest.Open(t))
	fixed := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	uc := &inventoryUseCase{
		repo:   repo,
		logger: zap.NewNop(),
		now:    func() time.Time { return fixed },
	}
	ctx := context.Background()

	input := &dto.CreateProductInput{Name: "Pen", Price: 5.00, Stock: 10}
	first, err := uc.CreateProduct(ctx, input)
	require.NoError(t, err)

	// Same name, price and second: the derived barcode collides. The store
	// must stay intact and the second call must report the duplicate.
	_, err = uc.CreateProduct(ctx, input)
	require.ErrorIs(t, err, apperrors.ErrDuplicateBarcode)

	all, err := uc.Find(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, first.ID, all[0].ID)
}

func TestSetStock(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Pen", Price: 5, Stock: 10})
	require.NoError(t, err)

	require.NoError(t, uc.SetStock(ctx, p.ID, 3))
	got, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	assert.ErrorIs(t, uc.SetStock(ctx, p.ID, -1), apperrors.ErrValidation)
	assert.ErrorIs(t, uc.SetStock(ctx, "missing", 5), apperrors.ErrNotFound)
}

func TestDeleteProductCascadesSales(t *testing.T) {
	db := dbtest.Open(t)
	repo := repository.NewSQLiteRepository(db)
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Pen", Price: 5, Stock: 10})
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO sales (id, product_id, quantity, total, discount, date, staff_id, payment_method)
		VALUES ('s1', ?, 2, 10, 0, '2025-06-01 10:00:00', 'st1', 'cash')
	`, p.ID)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(ctx, p.ID))

	_, err = uc.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var saleCount int
	require.NoError(t, db.Get(&saleCount, `SELECT count(*) FROM sales WHERE product_id = ?`, p.ID))
	assert.Zero(t, saleCount)

	assert.ErrorIs(t, uc.DeleteProduct(ctx, p.ID), apperrors.ErrNotFound)
}

func TestFind(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	pen, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Pen", Price: 5, Stock: 10})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Notebook", Price: 12.5, Stock: 4})
	require.NoError(t, err)

	all, err := uc.Find(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Pen", all[0].Name) // Insertion order

	byName, err := uc.Find(ctx, "note")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Notebook", byName[0].Name)

	byBarcode, err := uc.Find(ctx, pen.Barcode)
	require.NoError(t, err)
	require.Len(t, byBarcode, 1)
	assert.Equal(t, pen.ID, byBarcode[0].ID)

	none, err := uc.Find(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLowStock(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Pen", Price: 5, Stock: 10})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Notebook", Price: 12.5, Stock: 4})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Eraser", Price: 2, Stock: 0})
	require.NoError(t, err)

	// Threshold <= 0 falls back to the default of 5.
	low, err := uc.LowStock(ctx, 0)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Eraser", low[0].Name)

	low, err = uc.LowStock(ctx, 11)
	require.NoError(t, err)
	assert.Len(t, low, 3)
}

type recordingRenderer struct {
	calls chan string
	err   error
}

func (r *recordingRenderer) Render(_ context.Context, barcode string) error {
	r.calls <- barcode
	return r.err
}

func TestBarcodeRenderingDoesNotBlockCreation(t *testing.T) {
	repo := repository.NewSQLiteRepository(dbtest.Open(t))
	renderer := &recordingRenderer{calls: make(chan string, 1), err: errors.New("printer on fire")}
	uc := NewInventoryUseCase(repo, renderer, zap.NewNop())
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Pen", Price: 5, Stock: 10})
	require.NoError(t, err)

	select {
	case barcode := <-renderer.calls:
		assert.Equal(t, p.Barcode, barcode)
	case <-time.After(2 * time.Second):
		t.Fatal("renderer was never invoked")
	}

	// The record survives the render failure.
	got, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}
