package reporting

import (
	"context"

	"github.com/selmane/retailpos/internal/reporting/dto"
)

// UseCase never mutates state; queries may run concurrently with each other
// and with checkout. Empty data yields zero values, never an error.
type UseCase interface {
	SalesSummary(ctx context.Context, window dto.Window) (dto.SalesSummary, error)
	AverageSaleValue(ctx context.Context, window dto.Window) (float64, error)
	SalesTrend(ctx context.Context, days int) ([]dto.TrendPoint, error)
	TopProducts(ctx context.Context, limit int) ([]dto.ProductRank, error)
	CategorySales(ctx context.Context) ([]dto.CategoryTotal, error)
	StaffPerformance(ctx context.Context) ([]dto.StaffPerformance, error)
	TopCustomer(ctx context.Context) (*dto.CustomerSpend, error)
	SalesBySeason(ctx context.Context) ([]dto.BucketTotal, error)
	SalesByMonth(ctx context.Context) ([]dto.BucketTotal, error)
	SalesByAgeGroup(ctx context.Context) ([]dto.BucketTotal, error)
}
