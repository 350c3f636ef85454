package repository

import (
	"context"

	"tiaforge/internal/domain"
)

// Journal defines the interface for run history persistence
type Journal interface {
	// Write operations
	SaveReport(ctx context.Context, report *domain.Report) error
	DeleteRun(ctx context.Context, runID string) error

	// Read operations
	GetReport(ctx context.Context, runID string) (*domain.Report, error)
	ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error)
	ResolveRunID(ctx context.Context, prefix string) (string, error)

	// Close releases resources
	Close() error
}
