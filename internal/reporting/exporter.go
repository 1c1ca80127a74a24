package reporting

import (
	"context"

	"github.com/selmane/retailpos/internal/reporting/dto"
)

// Exporter serializes one projected report table (CSV file, spreadsheet,
// whatever the host wires in). Pure consumer, no feedback into the store.
type Exporter interface {
	Export(ctx context.Context, table dto.Table) error
}
