package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sushitest/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func record(id, suite, name string, status domain.CaseStatus, startedAt time.Time) domain.RunRecord {
	return domain.RunRecord{
		Case:         name,
		Duration:     1500 * time.Millisecond,
		Expected:     domain.ExpectOutput("5"),
		ID:           id,
		Output:       "5",
		SourceDigest: "abc123",
		SourcePath:   "/suites/" + name + ".sushi",
		StartedAt:    startedAt,
		Status:       status,
		Suite:        suite,
	}
}

func TestSaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rec := record("run-1", "Assignments", "+=", domain.CaseError, started)
	rec.Stage = domain.StageLink
	rec.Diagnostics = "undefined reference to `main'"
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "Assignments", got.Suite)
	assert.Equal(t, "+=", got.Case)
	assert.Equal(t, domain.CaseError, got.Status)
	assert.Equal(t, domain.StageLink, got.Stage)
	assert.Equal(t, rec.Diagnostics, got.Diagnostics)
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
	require.NotNil(t, got.Expected)
	assert.Equal(t, "5", *got.Expected)
	assert.True(t, started.Equal(got.StartedAt))
}

func TestSave_AssignsID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, record("", "S", "a", domain.CasePass, time.Now())))

	runs, err := repo.List(ctx, domain.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.NotEmpty(t, runs[0].ID)
}

func TestGet_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestList_FiltersAndOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, record("r1", "Assignments", "+=", domain.CasePass, base)))
	require.NoError(t, repo.Save(ctx, record("r2", "Assignments", "-=", domain.CaseFail, base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, record("r3", "Loops", "for", domain.CasePass, base.Add(2*time.Hour))))
	require.NoError(t, repo.Save(ctx, record("r4", "Assignments", "+=", domain.CasePass, base.Add(3*time.Hour))))

	all, err := repo.List(ctx, domain.RunFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"r4", "r3", "r2", "r1"}, ids(all))

	bySuite, err := repo.List(ctx, domain.RunFilter{Suite: "Assignments"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r4", "r2", "r1"}, ids(bySuite))

	byCase, err := repo.List(ctx, domain.RunFilter{Suite: "Assignments", Case: "+="})
	require.NoError(t, err)
	assert.Equal(t, []string{"r4", "r1"}, ids(byCase))

	byStatus, err := repo.List(ctx, domain.RunFilter{Status: domain.CaseFail})
	require.NoError(t, err)
	assert.Equal(t, []string{"r2"}, ids(byStatus))

	limited, err := repo.List(ctx, domain.RunFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"r4", "r3"}, ids(limited))
}

func TestPrune(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Save(ctx, record("old", "S", "a", domain.CasePass, now.Add(-72*time.Hour))))
	require.NoError(t, repo.Save(ctx, record("older", "S", "b", domain.CasePass, now.Add(-96*time.Hour))))
	require.NoError(t, repo.Save(ctx, record("new", "S", "c", domain.CasePass, now.Add(-time.Hour))))

	removed, err := repo.Prune(ctx, now.Add(-48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	left, err := repo.List(ctx, domain.RunFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, ids(left))
}

func TestSave_Concurrent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Save(ctx, record("", "S", "case", domain.CasePass, time.Now()))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	runs, err := repo.List(ctx, domain.RunFilter{})
	require.NoError(t, err)
	assert.Len(t, runs, 16)
}

func ids(records []domain.RunRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
