package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/model"
	"github.com/selmane/retailpos/internal/staff"
	"github.com/selmane/retailpos/internal/staff/dto"
)

type staffUseCase struct {
	repo   staff.Repository
	logger *zap.Logger
}

func NewStaffUseCase(repo staff.Repository, log *zap.Logger) staff.UseCase {
	return &staffUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *staffUseCase) Authenticate(ctx context.Context, pin string) (*model.Staff, error) {
	s, err := uc.repo.FindByPin(ctx, pin)
	if err != nil {
		return nil, err
	}
	if s == nil {
		uc.logger.Warn("staff pin verification failed")
		return nil, nil
	}
	uc.logger.Info("staff authenticated",
		zap.String("staff_id", s.ID), zap.String("name", s.Name))
	return s, nil
}

func (uc *staffUseCase) Add(ctx context.Context, input *dto.AddStaffInput) (*model.Staff, error) {
	if input.Name == "" {
		return nil, apperrors.Validation("staff name cannot be empty")
	}
	if input.Pin == "" {
		return nil, apperrors.Validation("staff pin cannot be empty")
	}

	role := input.Role
	if role == "" {
		role = model.RoleStaff
	}
	if role != model.RoleAdmin && role != model.RoleStaff {
		return nil, apperrors.Validation("unknown role %q", role)
	}

	unique, err := uc.repo.IsPinUnique(ctx, input.Pin)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperrors.ErrDuplicatePin
	}

	s := &model.Staff{
		ID:   uuid.New().String(),
		Name: input.Name,
		Pin:  input.Pin,
		Role: role,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("staff added",
		zap.String("staff_id", s.ID), zap.String("role", s.Role))
	return s, nil
}

func (uc *staffUseCase) List(ctx context.Context) ([]model.Staff, error) {
	return uc.repo.List(ctx)
}
