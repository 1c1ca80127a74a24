package customer

import (
	"context"

	"github.com/selmane/retailpos/internal/model"
)

type Repository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, search string) ([]model.Customer, error)
	History(ctx context.Context, customerID string) ([]model.Sale, error)
}
