package reporting

import (
	"context"
	"time"

	"github.com/selmane/retailpos/internal/reporting/dto"
)

// Repository is the read-only query surface over the sale log and the
// registries it joins against. A nil since means all-time.
type Repository interface {
	SalesSummary(ctx context.Context, since *time.Time) (dto.SalesSummary, error)
	AverageSaleValue(ctx context.Context, since *time.Time) (float64, error)
	SalesTrend(ctx context.Context, since time.Time) ([]dto.TrendPoint, error)
	TopProducts(ctx context.Context, limit int) ([]dto.ProductRank, error)
	CategorySales(ctx context.Context) ([]dto.CategoryTotal, error)
	StaffPerformance(ctx context.Context) ([]dto.StaffPerformance, error)
	TopCustomer(ctx context.Context) (*dto.CustomerSpend, error)
	SalesBySeason(ctx context.Context) ([]dto.BucketTotal, error)
	SalesByMonth(ctx context.Context) ([]dto.BucketTotal, error)
	SalesByAgeGroup(ctx context.Context) ([]dto.BucketTotal, error)
}
