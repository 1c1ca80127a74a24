package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/model"
	"github.com/selmane/retailpos/internal/sales/dto"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) ExecuteCheckout(ctx context.Context, lines []dto.CartLine, rows []model.Sale) (time.Time, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return time.Time{}, apperrors.Store("checkout", err)
	}
	defer tx.Rollback()

	// Availability check inside the same scope that will write. The caller
	// must see the store unchanged when any line falls short.
	for _, line := range lines {
		var stock int
		err := tx.GetContext(ctx, &stock,
			`SELECT stock FROM products WHERE id = ?`, line.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return time.Time{}, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, line.ProductID)
			}
			return time.Time{}, apperrors.Store("checkout stock check", err)
		}
		if stock < line.Quantity {
			return time.Time{}, &apperrors.InsufficientStockError{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Available: stock,
			}
		}
	}

	// Guarded decrement. The stock >= ? predicate serializes racing
	// checkouts that both passed the read above.
	for _, line := range lines {
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`,
			line.Quantity, line.ProductID, line.Quantity)
		if err != nil {
			return time.Time{}, apperrors.Store("checkout decrement", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return time.Time{}, apperrors.Store("checkout decrement", err)
		}
		if affected == 0 {
			var available int
			_ = tx.GetContext(ctx, &available,
				`SELECT stock FROM products WHERE id = ?`, line.ProductID)
			return time.Time{}, &apperrors.InsufficientStockError{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Available: available,
			}
		}
	}

	// One commit timestamp for every row of the transaction.
	committedAt := time.Now().UTC().Truncate(time.Second)
	date := committedAt.Format(model.TimeLayout)

	for i := range rows {
		rows[i].Date = committedAt
		_, err := tx.ExecContext(ctx, `
            INSERT INTO sales (id, product_id, quantity, total, discount, date, staff_id, payment_method, customer_id)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        `, rows[i].ID, rows[i].ProductID, rows[i].Quantity, rows[i].Total,
			rows[i].Discount, date, rows[i].StaffID, rows[i].PaymentMethod, rows[i].CustomerID)
		if err != nil {
			return time.Time{}, apperrors.Store("checkout insert sale", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return time.Time{}, apperrors.Store("checkout commit", err)
	}
	return committedAt, nil
}

func (r *SQLiteRepository) ReverseSale(ctx context.Context, saleID string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Store("reverse sale", err)
	}
	defer tx.Rollback()

	var sale model.Sale
	err = tx.GetContext(ctx, &sale, `SELECT * FROM sales WHERE id = ?`, saleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
		return apperrors.Store("reverse sale", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, saleID); err != nil {
		return apperrors.Store("reverse sale", err)
	}

	// The product may have been deleted since the sale; then only the row
	// deletion applies.
	_, err = tx.ExecContext(ctx,
		`UPDATE products SET stock = stock + ? WHERE id = ?`,
		sale.Quantity, sale.ProductID)
	if err != nil {
		return apperrors.Store("reverse sale restock", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Store("reverse sale", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, search string) ([]model.Sale, error) {
	sales := []model.Sale{}
	var err error
	if search == "" {
		err = r.DB.SelectContext(ctx, &sales, `SELECT * FROM sales ORDER BY rowid`)
	} else {
		pattern := "%" + search + "%"
		err = r.DB.SelectContext(ctx, &sales,
			`SELECT * FROM sales WHERE product_id LIKE ? OR date LIKE ? ORDER BY rowid`,
			pattern, pattern)
	}
	if err != nil {
		return nil, apperrors.Store("list sales", err)
	}
	return sales, nil
}
