package memory

import (
	"context"
	"fmt"
	"sync"

	"tally/internal/core"
)

// Exporter collects appended rows in memory. It stands in for the Sheets
// adapter in tests and local runs without credentials.
type Exporter struct {
	mu   sync.Mutex
	rows []core.Transaction
	fail error
}

func New() *Exporter {
	return &Exporter{}
}

// FailWith makes every subsequent append fail with err.
func (e *Exporter) FailWith(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fail = err
}

// AppendTransaction implements export.RowAppender.
func (e *Exporter) AppendTransaction(_ context.Context, tx core.Transaction) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fail != nil {
		return "", e.fail
	}
	e.rows = append(e.rows, tx)
	return fmt.Sprintf("mem:%d", len(e.rows)), nil
}

// Rows returns a copy of everything appended so far.
func (e *Exporter) Rows() []core.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]core.Transaction, len(e.rows))
	copy(out, e.rows)
	return out
}
