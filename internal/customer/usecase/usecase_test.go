package usecase

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/customer"
	"github.com/selmane/retailpos/internal/customer/dto"
	"github.com/selmane/retailpos/internal/customer/repository"
	"github.com/selmane/retailpos/internal/database/dbtest"
	"github.com/selmane/retailpos/internal/model"
)

func newUseCase(t *testing.T) (customer.UseCase, *sqlx.DB) {
	t.Helper()
	db := dbtest.Open(t)
	return NewCustomerUseCase(repository.NewSQLiteRepository(db), zap.NewNop()), db
}

func intPtr(v int) *int { return &v }

func TestGetOrCreate(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	created, err := uc.GetOrCreate(ctx, &dto.GetOrCreateInput{
		Name: "Yasmine", Email: "yasmine@example.com", Points: 10, Age: intPtr(27),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 10, created.Points)
	require.NotNil(t, created.Age)
	assert.Equal(t, 27, *created.Age)

	// Second call with a different name hits the email and leaves the
	// stored record untouched.
	again, err := uc.GetOrCreate(ctx, &dto.GetOrCreateInput{
		Name: "Someone Else", Email: "yasmine@example.com", Points: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Yasmine", again.Name)
	assert.Equal(t, 10, again.Points)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateMapsUniqueEmailViolation(t *testing.T) {
	db := dbtest.Open(t)
	repo := repository.NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Customer{ID: "c1", Name: "Yasmine", Email: "yasmine@example.com"}))
	err := repo.Create(ctx, &model.Customer{ID: "c2", Name: "Other", Email: "yasmine@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestGetOrCreateValidation(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.GetOrCreate(ctx, &dto.GetOrCreateInput{Name: "", Email: "a@b.c"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.GetOrCreate(ctx, &dto.GetOrCreateInput{Name: "A", Email: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListOrdersByName(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	for _, c := range []dto.GetOrCreateInput{
		{Name: "Zina", Email: "zina@example.com"},
		{Name: "Amine", Email: "amine@example.com"},
		{Name: "Mounir", Email: "mounir@example.com"},
	} {
		_, err := uc.GetOrCreate(ctx, &c)
		require.NoError(t, err)
	}

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Amine", all[0].Name)
	assert.Equal(t, "Mounir", all[1].Name)
	assert.Equal(t, "Zina", all[2].Name)

	matched, err := uc.List(ctx, "moun")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Mounir", matched[0].Name)
}

func TestHistory(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	c, err := uc.GetOrCreate(ctx, &dto.GetOrCreateInput{Name: "Yasmine", Email: "yasmine@example.com"})
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO sales (id, product_id, quantity, total, discount, date, staff_id, payment_method, customer_id)
		VALUES ('s1', 'p1', 2, 10, 0, '2025-06-01 10:00:00', 'st1', 'cash', ?),
		       ('s2', 'p2', 1, 12.5, 0, '2025-06-02 11:00:00', 'st1', 'card', ?),
		       ('s3', 'p1', 1, 5, 0, '2025-06-03 12:00:00', 'st1', 'cash', NULL)
	`, c.ID, c.ID)
	require.NoError(t, err)

	history, err := uc.History(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, sale := range history {
		require.NotNil(t, sale.CustomerID)
		assert.Equal(t, c.ID, *sale.CustomerID)
	}

	_, err = uc.History(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
