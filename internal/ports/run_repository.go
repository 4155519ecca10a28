package ports

import (
	"context"
	"time"

	"sushitest/internal/domain"
)

// RunRecorder persists case results
type RunRecorder interface {
	Save(ctx context.Context, record domain.RunRecord) error
}

// RunReader reads persisted case results
type RunReader interface {
	Get(ctx context.Context, id string) (*domain.RunRecord, error)
	List(ctx context.Context, filter domain.RunFilter) ([]domain.RunRecord, error)
}

// RunRepository is the composite interface
type RunRepository interface {
	RunRecorder
	RunReader
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
	Close() error
}
