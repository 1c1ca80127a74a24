package customer

import (
	"context"

	"github.com/selmane/retailpos/internal/customer/dto"
	"github.com/selmane/retailpos/internal/model"
)

type UseCase interface {
	// GetOrCreate is idempotent by email: on a hit the stored customer is
	// returned unchanged and the supplied name/points/age are ignored.
	GetOrCreate(ctx context.Context, input *dto.GetOrCreateInput) (*model.Customer, error)
	List(ctx context.Context, search string) ([]model.Customer, error)
	History(ctx context.Context, customerID string) ([]model.Sale, error)
}
