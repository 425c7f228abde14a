package ports

import (
	"context"
	"visa-route-checker/internal/domain"
)

// Port: a write-mostly audit log of completed searches.
// Nothing stored here is read back into route evaluation.
type CheckRecorder interface {
	RecordCheck(ctx context.Context, result domain.CheckResult) error
	// Return the most recent searches, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.CheckSummary, error)
}
