package staff

import (
	"context"

	"github.com/selmane/retailpos/internal/model"
	"github.com/selmane/retailpos/internal/staff/dto"
)

type UseCase interface {
	// Authenticate matches a PIN exactly. An unknown PIN returns (nil, nil);
	// a failed login is not an exceptional condition.
	Authenticate(ctx context.Context, pin string) (*model.Staff, error)
	Add(ctx context.Context, input *dto.AddStaffInput) (*model.Staff, error)
	List(ctx context.Context) ([]model.Staff, error)
}
