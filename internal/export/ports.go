package export

import (
	"context"

	"tally/internal/core"
)

// RowAppender is the outbound port for the export pipeline: it appends one
// persisted transaction as a row in an external report.
type RowAppender interface {
	AppendTransaction(ctx context.Context, tx core.Transaction) (rowRef string, err error)
}
