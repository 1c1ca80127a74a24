package repository

import (
	"context"
	"database/sql"
	"errors"

	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (id, name, email, points, age)
        VALUES (:id, :name, :email, :points, :age)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateEmail, c.Email)
		}
		return apperrors.Store("create customer", err)
	}
	return nil
}

func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	err := r.DB.GetContext(ctx, &customer,
		`SELECT * FROM customers WHERE email = ? LIMIT 1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Store("find customer", err)
	}
	return &customer, nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := r.DB.GetContext(ctx, &customer,
		`SELECT * FROM customers WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Store("find customer", err)
	}
	return &customer, nil
}

func (r *SQLiteRepository) List(ctx context.Context, search string) ([]model.Customer, error) {
	customers := []model.Customer{}
	var err error
	if search == "" {
		err = r.DB.SelectContext(ctx, &customers,
			`SELECT * FROM customers ORDER BY name`)
	} else {
		pattern := "%" + search + "%"
		err = r.DB.SelectContext(ctx, &customers,
			`SELECT * FROM customers WHERE name LIKE ? OR email LIKE ? ORDER BY name`,
			pattern, pattern)
	}
	if err != nil {
		return nil, apperrors.Store("list customers", err)
	}
	return customers, nil
}

func (r *SQLiteRepository) History(ctx context.Context, customerID string) ([]model.Sale, error) {
	sales := []model.Sale{}
	err := r.DB.SelectContext(ctx, &sales,
		`SELECT * FROM sales WHERE customer_id = ? ORDER BY rowid`, customerID)
	if err != nil {
		return nil, apperrors.Store("customer history", err)
	}
	return sales, nil
}
