package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/selmane/retailpos/config"
	"github.com/selmane/retailpos/internal/apperrors"
	custDTO "github.com/selmane/retailpos/internal/customer/dto"
	custRepoPkg "github.com/selmane/retailpos/internal/customer/repository"
	custUCPkg "github.com/selmane/retailpos/internal/customer/usecase"
	"github.com/selmane/retailpos/internal/database"
	invDTO "github.com/selmane/retailpos/internal/inventory/dto"
	invRepoPkg "github.com/selmane/retailpos/internal/inventory/repository"
	invUCPkg "github.com/selmane/retailpos/internal/inventory/usecase"
	"github.com/selmane/retailpos/internal/logger"
	"github.com/selmane/retailpos/internal/model"
	salesDTO "github.com/selmane/retailpos/internal/sales/dto"
	salesRepoPkg "github.com/selmane/retailpos/internal/sales/repository"
	salesUCPkg "github.com/selmane/retailpos/internal/sales/usecase"
	staffDTO "github.com/selmane/retailpos/internal/staff/dto"
	staffRepoPkg "github.com/selmane/retailpos/internal/staff/repository"
	staffUCPkg "github.com/selmane/retailpos/internal/staff/usecase"
)

// Populates a demo store through the regular use cases so the whole write
// path gets exercised, schema included.
func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer appLogger.Sync()

	db, err := database.Open(&cfg.SQLite)
	if err != nil {
		appLogger.Fatal("could not open store", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		appLogger.Fatal("migration failed", zap.Error(err))
	}

	ctx := context.Background()

	invUC := invUCPkg.NewInventoryUseCase(invRepoPkg.NewSQLiteRepository(db), nil, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepoPkg.NewSQLiteRepository(db), nil, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepoPkg.NewSQLiteRepository(db), appLogger)
	staffUC := staffUCPkg.NewStaffUseCase(staffRepoPkg.NewSQLiteRepository(db), appLogger)

	cashier, err := staffUC.Add(ctx, &staffDTO.AddStaffInput{Name: "Nadia", Pin: "2468"})
	if errors.Is(err, apperrors.ErrDuplicatePin) {
		appLogger.Info("seed data already present, nothing to do")
		return
	}
	if err != nil {
		appLogger.Fatal("seed staff failed", zap.Error(err))
	}

	products := []invDTO.CreateProductInput{
		{Name: "Pen", Price: 5.00, Stock: 120, Category: "Stationery"},
		{Name: "Notebook", Price: 12.50, Stock: 80, Category: "Stationery"},
		{Name: "Coffee 250g", Price: 34.90, Stock: 40, Category: "Grocery"},
		{Name: "USB Cable", Price: 19.00, Stock: 25, Category: "Electronics"},
	}
	created := make([]*model.Product, 0, len(products))
	for _, p := range products {
		prod, err := invUC.CreateProduct(ctx, &p)
		if err != nil {
			appLogger.Fatal("seed product failed", zap.String("name", p.Name), zap.Error(err))
		}
		created = append(created, prod)
	}

	age := 27
	cust, err := custUC.GetOrCreate(ctx, &custDTO.GetOrCreateInput{
		Name: "Yasmine", Email: "yasmine@example.com", Points: 40, Age: &age,
	})
	if err != nil {
		appLogger.Fatal("seed customer failed", zap.Error(err))
	}

	result, err := salesUC.Checkout(ctx, &salesDTO.CheckoutInput{
		Lines: []salesDTO.CartLine{
			{ProductID: created[0].ID, Quantity: 2, UnitPrice: created[0].Price},
			{ProductID: created[1].ID, Quantity: 1, UnitPrice: created[1].Price},
		},
		StaffID:       cashier.ID,
		PaymentMethod: model.PaymentCash,
		CustomerID:    &cust.ID,
		Discount:      2.50,
	})
	if err != nil {
		appLogger.Fatal("seed checkout failed", zap.Error(err))
	}

	appLogger.Info("seed complete",
		zap.Int("products", len(created)),
		zap.Float64("sample_sale_total", result.NetTotal))
}
