package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/selmane/retailpos/internal/reporting"
	"github.com/selmane/retailpos/internal/reporting/dto"
)

const (
	defaultTrendDays   = 7
	defaultTopProducts = 5
)

type reportingUseCase struct {
	repo   reporting.Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewReportingUseCase(repo reporting.Repository, log *zap.Logger) reporting.UseCase {
	return &reportingUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *reportingUseCase) since(window dto.Window) *time.Time {
	start, bounded := window.Start(uc.now())
	if !bounded {
		return nil
	}
	return &start
}

func (uc *reportingUseCase) SalesSummary(ctx context.Context, window dto.Window) (dto.SalesSummary, error) {
	return uc.repo.SalesSummary(ctx, uc.since(window))
}

func (uc *reportingUseCase) AverageSaleValue(ctx context.Context, window dto.Window) (float64, error) {
	// Averages over per-line sale rows, not per cart; that is what a "sale"
	// is in this log.
	return uc.repo.AverageSaleValue(ctx, uc.since(window))
}

func (uc *reportingUseCase) SalesTrend(ctx context.Context, days int) ([]dto.TrendPoint, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	since := uc.now().UTC().AddDate(0, 0, -days)
	return uc.repo.SalesTrend(ctx, since)
}

func (uc *reportingUseCase) TopProducts(ctx context.Context, limit int) ([]dto.ProductRank, error) {
	if limit <= 0 {
		limit = defaultTopProducts
	}
	return uc.repo.TopProducts(ctx, limit)
}

func (uc *reportingUseCase) CategorySales(ctx context.Context) ([]dto.CategoryTotal, error) {
	return uc.repo.CategorySales(ctx)
}

func (uc *reportingUseCase) StaffPerformance(ctx context.Context) ([]dto.StaffPerformance, error) {
	return uc.repo.StaffPerformance(ctx)
}

func (uc *reportingUseCase) TopCustomer(ctx context.Context) (*dto.CustomerSpend, error) {
	return uc.repo.TopCustomer(ctx)
}

func (uc *reportingUseCase) SalesBySeason(ctx context.Context) ([]dto.BucketTotal, error) {
	return uc.repo.SalesBySeason(ctx)
}

func (uc *reportingUseCase) SalesByMonth(ctx context.Context) ([]dto.BucketTotal, error) {
	return uc.repo.SalesByMonth(ctx)
}

func (uc *reportingUseCase) SalesByAgeGroup(ctx context.Context) ([]dto.BucketTotal, error) {
	return uc.repo.SalesByAgeGroup(ctx)
}
