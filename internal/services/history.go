package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sushitest/internal/domain"
	"sushitest/internal/logging"
	"sushitest/internal/ports"
)

// DefaultHistoryLimit caps listings when no limit is given
const DefaultHistoryLimit = 50

// HistoryService reads and maintains recorded case results
type HistoryService struct {
	repo ports.RunRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(repo ports.RunRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// List returns recorded runs, newest first
func (s *HistoryService) List(ctx context.Context, filter domain.RunFilter) ([]domain.RunRecord, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultHistoryLimit
	}
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return records, nil
}

// Get returns one recorded run
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.RunRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return record, nil
}

// Prune deletes runs older than the given age and returns how many were removed
func (s *HistoryService) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("prune age must be positive")
	}
	cutoff := time.Now().UTC().Add(-olderThan)
	n, err := s.repo.Prune(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	logging.Logger.Info("Pruned run history", "removed", n, "cutoff", cutoff)
	return n, nil
}
