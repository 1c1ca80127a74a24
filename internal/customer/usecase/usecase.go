package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/customer"
	"github.com/selmane/retailpos/internal/customer/dto"
	"github.com/selmane/retailpos/internal/model"
)

type customerUseCase struct {
	repo   customer.Repository
	logger *zap.Logger
}

func NewCustomerUseCase(repo customer.Repository, log *zap.Logger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *customerUseCase) GetOrCreate(ctx context.Context, input *dto.GetOrCreateInput) (*model.Customer, error) {
	if input.Name == "" {
		return nil, apperrors.Validation("customer name cannot be empty")
	}
	if input.Email == "" {
		return nil, apperrors.Validation("customer email cannot be empty")
	}

	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	c := &model.Customer{
		ID:     uuid.New().String(),
		Name:   input.Name,
		Email:  input.Email,
		Points: input.Points,
		Age:    input.Age,
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		// A concurrent caller may have won the insert on the same email.
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			if again, ferr := uc.repo.FindByEmail(ctx, input.Email); ferr == nil && again != nil {
				return again, nil
			}
		}
		return nil, err
	}

	uc.logger.Info("customer created",
		zap.String("customer_id", c.ID), zap.String("email", c.Email))
	return c, nil
}

func (uc *customerUseCase) List(ctx context.Context, search string) ([]model.Customer, error) {
	return uc.repo.List(ctx, search)
}

func (uc *customerUseCase) History(ctx context.Context, customerID string) ([]model.Sale, error) {
	c, err := uc.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return uc.repo.History(ctx, customerID)
}
