package staff

import (
	"context"

	"github.com/selmane/retailpos/internal/model"
)

type Repository interface {
	Create(ctx context.Context, staff *model.Staff) error
	FindByPin(ctx context.Context, pin string) (*model.Staff, error)
	IsPinUnique(ctx context.Context, pin string) (bool, error)
	List(ctx context.Context) ([]model.Staff, error)
}
