package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/model"
	"github.com/selmane/retailpos/internal/reporting/dto"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) SalesSummary(ctx context.Context, since *time.Time) (dto.SalesSummary, error) {
	var summary dto.SalesSummary
	query := `SELECT COALESCE(SUM(total), 0) AS total_revenue,
	                 COALESCE(SUM(quantity), 0) AS total_items
	          FROM sales`
	args := []interface{}{}
	if since != nil {
		query += ` WHERE date >= ?`
		args = append(args, since.UTC().Format(model.TimeLayout))
	}
	if err := r.DB.GetContext(ctx, &summary, query, args...); err != nil {
		return dto.SalesSummary{}, apperrors.Store("sales summary", err)
	}
	return summary, nil
}

func (r *SQLiteRepository) AverageSaleValue(ctx context.Context, since *time.Time) (float64, error) {
	var avg float64
	query := `SELECT COALESCE(AVG(total), 0) FROM sales`
	args := []interface{}{}
	if since != nil {
		query += ` WHERE date >= ?`
		args = append(args, since.UTC().Format(model.TimeLayout))
	}
	if err := r.DB.GetContext(ctx, &avg, query, args...); err != nil {
		return 0, apperrors.Store("average sale value", err)
	}
	return avg, nil
}

func (r *SQLiteRepository) SalesTrend(ctx context.Context, since time.Time) ([]dto.TrendPoint, error) {
	points := []dto.TrendPoint{}
	err := r.DB.SelectContext(ctx, &points, `
        SELECT date(date) AS sale_date, SUM(total) AS daily_total
        FROM sales
        WHERE date >= ?
        GROUP BY sale_date
        ORDER BY sale_date
    `, since.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, apperrors.Store("sales trend", err)
	}
	return points, nil
}

func (r *SQLiteRepository) TopProducts(ctx context.Context, limit int) ([]dto.ProductRank, error) {
	ranks := []dto.ProductRank{}
	err := r.DB.SelectContext(ctx, &ranks, `
        SELECT p.name AS name,
               SUM(s.quantity) AS units_sold,
               SUM(s.total) AS revenue
        FROM sales s
        JOIN products p ON s.product_id = p.id
        GROUP BY p.id, p.name
        ORDER BY units_sold DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, apperrors.Store("top products", err)
	}
	return ranks, nil
}

func (r *SQLiteRepository) CategorySales(ctx context.Context) ([]dto.CategoryTotal, error) {
	totals := []dto.CategoryTotal{}
	err := r.DB.SelectContext(ctx, &totals, `
        SELECT p.category AS category, SUM(s.total) AS total
        FROM sales s
        JOIN products p ON s.product_id = p.id
        GROUP BY p.category
        ORDER BY total DESC
    `)
	if err != nil {
		return nil, apperrors.Store("category sales", err)
	}
	return totals, nil
}

func (r *SQLiteRepository) StaffPerformance(ctx context.Context) ([]dto.StaffPerformance, error) {
	perf := []dto.StaffPerformance{}
	err := r.DB.SelectContext(ctx, &perf, `
        SELECT st.name AS name,
               SUM(s.total) AS revenue,
               SUM(s.quantity) AS items_sold
        FROM sales s
        JOIN staff st ON s.staff_id = st.id
        GROUP BY st.id, st.name
        ORDER BY revenue DESC
    `)
	if err != nil {
		return nil, apperrors.Store("staff performance", err)
	}
	return perf, nil
}

func (r *SQLiteRepository) TopCustomer(ctx context.Context) (*dto.CustomerSpend, error) {
	var spend dto.CustomerSpend
	err := r.DB.GetContext(ctx, &spend, `
        SELECT c.name AS name, SUM(s.total) AS total_spent
        FROM sales s
        JOIN customers c ON s.customer_id = c.id
        GROUP BY c.id, c.name
        ORDER BY total_spent DESC
        LIMIT 1
    `)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Store("top customer", err)
	}
	return &spend, nil
}

func (r *SQLiteRepository) SalesBySeason(ctx context.Context) ([]dto.BucketTotal, error) {
	buckets := []dto.BucketTotal{}
	err := r.DB.SelectContext(ctx, &buckets, `
        SELECT
            CASE
                WHEN strftime('%m', date) IN ('03', '04', '05') THEN 'Spring'
                WHEN strftime('%m', date) IN ('06', '07', '08') THEN 'Summer'
                WHEN strftime('%m', date) IN ('09', '10', '11') THEN 'Fall'
                ELSE 'Winter'
            END AS bucket,
            SUM(total) AS total
        FROM sales
        GROUP BY bucket
        ORDER BY total DESC
    `)
	if err != nil {
		return nil, apperrors.Store("sales by season", err)
	}
	return buckets, nil
}

func (r *SQLiteRepository) SalesByMonth(ctx context.Context) ([]dto.BucketTotal, error) {
	buckets := []dto.BucketTotal{}
	err := r.DB.SelectContext(ctx, &buckets, `
        SELECT strftime('%m', date) AS bucket, SUM(total) AS total
        FROM sales
        GROUP BY bucket
        ORDER BY bucket
    `)
	if err != nil {
		return nil, apperrors.Store("sales by month", err)
	}
	return buckets, nil
}

func (r *SQLiteRepository) SalesByAgeGroup(ctx context.Context) ([]dto.BucketTotal, error) {
	buckets := []dto.BucketTotal{}
	err := r.DB.SelectContext(ctx, &buckets, `
        SELECT
            CASE
                WHEN c.age BETWEEN 0 AND 18 THEN '0-18'
                WHEN c.age BETWEEN 19 AND 30 THEN '19-30'
                WHEN c.age BETWEEN 31 AND 45 THEN '31-45'
                WHEN c.age BETWEEN 46 AND 60 THEN '46-60'
                ELSE '61+'
            END AS bucket,
            SUM(s.total) AS total
        FROM sales s
        JOIN customers c ON s.customer_id = c.id
        WHERE c.age IS NOT NULL
        GROUP BY bucket
        ORDER BY total DESC
    `)
	if err != nil {
		return nil, apperrors.Store("sales by age group", err)
	}
	return buckets, nil
}
