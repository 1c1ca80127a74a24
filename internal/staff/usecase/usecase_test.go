package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/database/dbtest"
	"github.com/selmane/retailpos/internal/model"
	"github.com/selmane/retailpos/internal/staff"
	"github.com/selmane/retailpos/internal/staff/dto"
	"github.com/selmane/retailpos/internal/staff/repository"
)

func newUseCase(t *testing.T) staff.UseCase {
	t.Helper()
	return NewStaffUseCase(repository.NewSQLiteRepository(dbtest.Open(t)), zap.NewNop())
}

func TestAdd(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	s, err := uc.Add(ctx, &dto.AddStaffInput{Name: "Nadia", Pin: "2468", Role: model.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	assert.Equal(t, model.RoleAdmin, s.Role)

	// Empty role defaults to staff.
	s, err = uc.Add(ctx, &dto.AddStaffInput{Name: "Karim", Pin: "1357"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, s.Role)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAddValidation(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	cases := []dto.AddStaffInput{
		{Name: "", Pin: "1234"},
		{Name: "Nadia", Pin: ""},
		{Name: "Nadia", Pin: "1234", Role: "manager"},
	}
	for _, input := range cases {
		_, err := uc.Add(ctx, &input)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestAddDuplicatePin(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, &dto.AddStaffInput{Name: "Nadia", Pin: "2468"})
	require.NoError(t, err)

	_, err = uc.Add(ctx, &dto.AddStaffInput{Name: "Karim", Pin: "2468"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicatePin)
}

func TestAuthenticate(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	added, err := uc.Add(ctx, &dto.AddStaffInput{Name: "Nadia", Pin: "2468"})
	require.NoError(t, err)

	s, err := uc.Authenticate(ctx, "2468")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, added.ID, s.ID)

	// An unknown pin is a miss, not an error.
	s, err = uc.Authenticate(ctx, "0000")
	require.NoError(t, err)
	assert.Nil(t, s)
}
