package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (id, name, price, stock, category, barcode, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Price, p.Stock, p.Category, p.Barcode,
		p.CreatedAt.UTC().Format(model.TimeLayout))
	if err != nil {
		return apperrors.Store("create product", err)
	}
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Store("find product", err)
	}
	return &product, nil
}

func (r *SQLiteRepository) Find(ctx context.Context, q string) ([]model.Product, error) {
	products := []model.Product{}
	var err error
	if q == "" {
		err = r.DB.SelectContext(ctx, &products,
			`SELECT * FROM products ORDER BY rowid`)
	} else {
		pattern := "%" + q + "%"
		err = r.DB.SelectContext(ctx, &products,
			`SELECT * FROM products
			 WHERE name LIKE ? OR id LIKE ? OR barcode LIKE ?
			 ORDER BY rowid`,
			pattern, pattern, pattern)
	}
	if err != nil {
		return nil, apperrors.Store("find products", err)
	}
	return products, nil
}

func (r *SQLiteRepository) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE stock < ? ORDER BY stock`, threshold)
	if err != nil {
		return nil, apperrors.Store("low stock", err)
	}
	return products, nil
}

func (r *SQLiteRepository) SetStock(ctx context.Context, id string, stock int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE products SET stock = ? WHERE id = ?`, stock, id)
	if err != nil {
		return apperrors.Store("set stock", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.Store("set stock", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Store("delete product", err)
	}
	defer tx.Rollback()

	// Sale rows are owned by the product; the history goes with it.
	if _, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE product_id = ?`, id); err != nil {
		return apperrors.Store("delete product sales", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return apperrors.Store("delete product", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.Store("delete product", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Store("delete product", err)
	}
	return nil
}

func (r *SQLiteRepository) IsBarcodeUnique(ctx context.Context, barcode string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM products WHERE barcode = ?`, barcode)
	if err != nil {
		return false, apperrors.Store("check barcode", err)
	}
	return count == 0, nil
}
