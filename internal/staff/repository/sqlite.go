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

func (r *SQLiteRepository) Create(ctx context.Context, s *model.Staff) error {
	query := `INSERT INTO staff (id, name, pin, role) VALUES (:id, :name, :pin, :role)`
	_, err := r.DB.NamedExecContext(ctx, query, s)
	if err != nil {
		return apperrors.Store("create staff", err)
	}
	return nil
}

func (r *SQLiteRepository) FindByPin(ctx context.Context, pin string) (*model.Staff, error) {
	var staff model.Staff
	err := r.DB.GetContext(ctx, &staff,
		`SELECT * FROM staff WHERE pin = ? LIMIT 1`, pin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Store("find staff", err)
	}
	return &staff, nil
}

func (r *SQLiteRepository) IsPinUnique(ctx context.Context, pin string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM staff WHERE pin = ?`, pin)
	if err != nil {
		return false, apperrors.Store("check pin", err)
	}
	return count == 0, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]model.Staff, error) {
	staff := []model.Staff{}
	err := r.DB.SelectContext(ctx, &staff, `SELECT * FROM staff ORDER BY name`)
	if err != nil {
		return nil, apperrors.Store("list staff", err)
	}
	return staff, nil
}
